package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/velours/boutique/internal/product/internal/domain"
)

var systemErrorResult = ginx.Result{
	Code: 502001,
	Msg:  "系统错误",
}

type Product struct {
	Id       int64  `json:"id,omitempty"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Stock    int64  `json:"stock,omitempty"`
	Status   uint8  `json:"status,omitempty"`
}

func newProduct(p domain.Product) Product {
	return Product{
		Id:       p.ID,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Desc,
		Category: p.Category,
		Image:    p.Image,
		Price:    p.Price,
		Stock:    p.Stock,
		Status:   p.Status.ToUint8(),
	}
}

type ProductList struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}
