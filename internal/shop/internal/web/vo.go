package web

import "github.com/ecodeclub/ginx"

var systemErrorResult = ginx.Result{
	Code: 511001,
	Msg:  "系统错误",
}

type Shop struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// SaveShopReq 保存店铺信息
type SaveShopReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Logo    string `json:"logo,omitempty"`
}
