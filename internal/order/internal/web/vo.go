package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"

	"github.com/velours/boutique/internal/order/internal/domain"
)

var systemErrorResult = ginx.Result{
	Code: 503001,
	Msg:  "系统错误",
}

type Order struct {
	SN               string       `json:"sn"`
	Status           uint8        `json:"status"`
	StatusLabel      string       `json:"statusLabel"`
	Items            []OrderItem  `json:"items"`
	ShippingAddress  Address      `json:"shippingAddress"`
	TotalAmount      int64        `json:"totalAmount"`
	LastStatusUpdate StatusUpdate `json:"lastStatusUpdate"`
	Ctime            int64        `json:"ctime"`
	Utime            int64        `json:"utime"`
}

type OrderItem struct {
	ProductID int64  `json:"productId"`
	SN        string `json:"sn"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type StatusUpdate struct {
	Status uint8 `json:"status"`
	Date   int64 `json:"date"`
}

// OrderGroup 同一买家同一天的订单聚合视图
type OrderGroup struct {
	BuyerID     int64       `json:"buyerId,omitempty"`
	Day         string      `json:"day"`
	OrderIDs    []int64     `json:"orderIds"`
	SNs         []string    `json:"sns"`
	Orders      []Order     `json:"orders"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Status      uint8       `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	Ctime       int64       `json:"ctime"`
}

func toOrderVO(o domain.Order) Order {
	return Order{
		SN:          o.SN,
		Status:      o.Status.ToUint8(),
		StatusLabel: o.Status.Label(),
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return toOrderItemVO(src)
		}),
		ShippingAddress: Address{
			Street:     o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
		},
		TotalAmount: o.TotalAmount,
		LastStatusUpdate: StatusUpdate{
			Status: o.LastStatusUpdate.Status.ToUint8(),
			Date:   o.LastStatusUpdate.Date,
		},
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

func toOrderItemVO(it domain.OrderItem) OrderItem {
	return OrderItem{
		ProductID: it.ProductID,
		SN:        it.SN,
		Name:      it.Name,
		Image:     it.Image,
		Price:     it.Price,
		Quantity:  it.Quantity,
	}
}

func toGroupVO(g domain.OrderGroup) OrderGroup {
	return OrderGroup{
		BuyerID:  g.BuyerID,
		Day:      g.Day,
		OrderIDs: g.OrderIDs,
		SNs:      g.SNs,
		Orders: slice.Map(g.Orders, func(idx int, src domain.Order) Order {
			return toOrderVO(src)
		}),
		Items: slice.Map(g.Items, func(idx int, src domain.OrderItem) OrderItem {
			return toOrderItemVO(src)
		}),
		TotalAmount: g.TotalAmount,
		Status:      g.Status.ToUint8(),
		StatusLabel: g.Status.Label(),
		Ctime:       g.Ctime,
	}
}
