package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.UserDuplicateEmail.Code,
		Msg:  errs.UserDuplicateEmail.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
)

type Profile struct {
	Id             int64   `json:"id,omitempty"`
	Email          string  `json:"email"`
	Nickname       string  `json:"nickname"`
	Phone          string  `json:"phone"`
	Avatar         string  `json:"avatar"`
	DefaultAddress Address `json:"defaultAddress"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func newAddress(a domain.Address) Address {
	return Address{
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:             u.ID,
		Email:          u.Email,
		Nickname:       u.Nickname,
		Phone:          u.Phone,
		Avatar:         u.Avatar,
		DefaultAddress: newAddress(u.DefaultAddress),
	}
}
