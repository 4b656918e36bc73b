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

import (
	"sort"

	"github.com/velours/boutique/internal/order"
)

// Line 购物车里的一行: 同一商品在多个购物车单里的数量合并后的视图
type Line struct {
	ProductID int64
	SN        string
	Name      string
	Image     string
	// Price 加入购物车时的快照单价, 单位为分
	Price    int64
	Quantity int64
	// OrderIDs 贡献这行的购物车单, 按加入时间排序
	OrderIDs []int64
}

// BuildCart 把买家的购物车单合并成按商品聚合的行.
// 纯函数, 行内数量求和, 行顺序按商品首次加入的先后
func BuildCart(orders []order.Order) []Line {
	sorted := make([]order.Order, len(orders))
	copy(sorted, orders)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Ctime != sorted[j].Ctime {
			return sorted[i].Ctime < sorted[j].Ctime
		}
		return sorted[i].ID < sorted[j].ID
	})

	index := make(map[int64]int)
	res := make([]Line, 0, len(sorted))
	for _, o := range sorted {
		for _, it := range o.Items {
			pos, ok := index[it.ProductID]
			if !ok {
				index[it.ProductID] = len(res)
				res = append(res, Line{
					ProductID: it.ProductID,
					SN:        it.SN,
					Name:      it.Name,
					Image:     it.Image,
					Price:     it.Price,
					Quantity:  it.Quantity,
					OrderIDs:  []int64{o.ID},
				})
				continue
			}
			res[pos].Quantity += it.Quantity
			if !containsID(res[pos].OrderIDs, o.ID) {
				res[pos].OrderIDs = append(res[pos].OrderIDs, o.ID)
			}
		}
	}
	return res
}

// Total 购物车总价
func Total(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * l.Quantity
	}
	return total
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
