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

// Summary 管理端看板的一段时间汇总.
// 营业额只算正式且未取消的订单
type Summary struct {
	// From, To 毫秒时间戳, 左闭右开
	From int64 `json:"from"`
	To   int64 `json:"to"`
	// OrderCount 正式订单数, 不含购物车
	OrderCount int64 `json:"orderCount"`
	// Revenue 单位为分
	Revenue int64 `json:"revenue"`
	// StatusBreakdown 状态值 -> 订单数
	StatusBreakdown map[uint8]int64 `json:"statusBreakdown"`
	TopProducts     []ProductStat   `json:"topProducts"`
}

type ProductStat struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	// Revenue 单位为分
	Revenue int64 `json:"revenue"`
}
