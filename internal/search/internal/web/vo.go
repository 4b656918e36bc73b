package web

import (
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: 506001,
	Msg:  "系统错误",
}

type SearchReq struct {
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Keywords string `json:"keywords"`
}

type SearchResp struct {
	Orders   []Order   `json:"orders,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type Order struct {
	ID          int64  `json:"id"`
	SN          string `json:"sn"`
	BuyerID     int64  `json:"buyerId"`
	BuyerEmail  string `json:"buyerEmail"`
	Status      uint8  `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

type Product struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}
