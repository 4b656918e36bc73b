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

// OrderDoc 订单在搜索索引里的形态
type OrderDoc struct {
	ID         int64  `json:"id"`
	SN         string `json:"sn"`
	BuyerID    int64  `json:"buyer_id"`
	BuyerEmail string `json:"buyer_email"`
	Status     uint8  `json:"status"`
}

// ProductDoc 商品在搜索索引里的形态
type ProductDoc struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}

// Result 一次搜索同时命中的两类文档
type Result struct {
	Orders   []OrderDoc
	Products []ProductDoc
}
