// Copyright 2024 velours
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusCart 购物车阶段, 还不是正式订单
	StatusCart       Status = 1
	StatusPending    Status = 2
	StatusProcessing Status = 3
	StatusShipped    Status = 4
	StatusDelivered  Status = 5
	StatusCanceled   Status = 6
)

// Label 客户可见的状态文案, 品牌面向法语市场
func (s Status) Label() string {
	switch s {
	case StatusCart:
		return "Panier"
	case StatusPending:
		return "En attente"
	case StatusProcessing:
		return "En cours"
	case StatusShipped:
		return "Expédié"
	case StatusDelivered:
		return "Livré"
	case StatusCanceled:
		return "Annulé"
	default:
		return ""
	}
}

func (s Status) Valid() bool {
	return s >= StatusCart && s <= StatusCanceled
}

// IsTerminal 终态订单不再参与活跃状态的优先级比较
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	Items   []OrderItem
	Status  Status
	// ShippingAddress 结账时从客户默认地址盖章写入
	ShippingAddress Address
	// TotalAmount 单位为分, 永远由 Items 重算, 不信任外部传入
	TotalAmount      int64
	LastStatusUpdate StatusUpdate
	Ctime            int64
	Utime            int64
}

type OrderItem struct {
	ProductID int64
	SN        string
	Name      string
	Image     string
	// Price 下单时的快照单价, 单位为分
	Price    int64
	Quantity int64
}

type StatusUpdate struct {
	Status Status `json:"status"`
	Date   int64  `json:"date"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ComputeTotal 重算订单总价
func (o Order) ComputeTotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Price * it.Quantity
	}
	return total
}
