package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/velours/boutique/internal/cart/internal/domain"
)

var (
	systemErrorResult = ginx.Result{
		Code: 504001,
		Msg:  "系统错误",
	}
	insufficientStockResult = ginx.Result{
		Code: 504002,
		Msg:  "商品库存不足",
	}
)

type Line struct {
	ProductID int64   `json:"productId"`
	SN        string  `json:"sn"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     int64   `json:"price"`
	Quantity  int64   `json:"quantity"`
	OrderIDs  []int64 `json:"orderIds"`
}

type CartResp struct {
	Lines []Line `json:"lines"`
	Total int64  `json:"total"`
}

func newLine(l domain.Line) Line {
	return Line{
		ProductID: l.ProductID,
		SN:        l.SN,
		Name:      l.Name,
		Image:     l.Image,
		Price:     l.Price,
		Quantity:  l.Quantity,
		OrderIDs:  l.OrderIDs,
	}
}
