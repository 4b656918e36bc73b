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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velours/boutique/internal/order"
)

func TestBuildCart(t *testing.T) {
	testCases := []struct {
		name   string
		orders []order.Order
		want   []Line
	}{
		{
			name:   "空购物车",
			orders: nil,
			want:   []Line{},
		},
		{
			name: "同一商品跨单合并数量",
			orders: []order.Order{
				{
					ID: 1, Ctime: 100,
					Items: []order.OrderItem{
						{ProductID: 10, SN: "PRD10", Name: "Rouge Velours", Price: 1500, Quantity: 1},
					},
				},
				{
					ID: 2, Ctime: 200,
					Items: []order.OrderItem{
						{ProductID: 10, SN: "PRD10", Name: "Rouge Velours", Price: 1500, Quantity: 2},
						{ProductID: 20, SN: "PRD20", Name: "Crème Douce", Price: 2400, Quantity: 1},
					},
				},
			},
			want: []Line{
				{ProductID: 10, SN: "PRD10", Name: "Rouge Velours", Price: 1500, Quantity: 3, OrderIDs: []int64{1, 2}},
				{ProductID: 20, SN: "PRD20", Name: "Crème Douce", Price: 2400, Quantity: 1, OrderIDs: []int64{2}},
			},
		},
		{
			name: "行顺序按商品首次加入的先后",
			orders: []order.Order{
				{
					ID: 2, Ctime: 200,
					Items: []order.OrderItem{
						{ProductID: 20, Name: "Crème Douce", Price: 2400, Quantity: 1},
					},
				},
				{
					ID: 1, Ctime: 100,
					Items: []order.OrderItem{
						{ProductID: 10, Name: "Rouge Velours", Price: 1500, Quantity: 1},
					},
				},
			},
			want: []Line{
				{ProductID: 10, Name: "Rouge Velours", Price: 1500, Quantity: 1, OrderIDs: []int64{1}},
				{ProductID: 20, Name: "Crème Douce", Price: 2400, Quantity: 1, OrderIDs: []int64{2}},
			},
		},
		{
			name: "同一时刻按ID排序",
			orders: []order.Order{
				{ID: 9, Ctime: 100, Items: []order.OrderItem{{ProductID: 90, Quantity: 1}}},
				{ID: 3, Ctime: 100, Items: []order.OrderItem{{ProductID: 30, Quantity: 1}}},
			},
			want: []Line{
				{ProductID: 30, Quantity: 1, OrderIDs: []int64{3}},
				{ProductID: 90, Quantity: 1, OrderIDs: []int64{9}},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildCart(tc.orders)
			assert.Equal(t, len(tc.want), len(got))
			for i := range tc.want {
				assert.Equal(t, tc.want[i], got[i])
			}
		})
	}
}

func TestTotal(t *testing.T) {
	lines := []Line{
		{Price: 1500, Quantity: 3},
		{Price: 2400, Quantity: 1},
	}
	assert.Equal(t, int64(6900), Total(lines))
	assert.Equal(t, int64(0), Total(nil))
}

// 输入不被改写: 聚合前后订单切片保持原样
func TestBuildCart_InputUntouched(t *testing.T) {
	orders := []order.Order{
		{ID: 2, Ctime: 200, Items: []order.OrderItem{{ProductID: 20, Quantity: 1}}},
		{ID: 1, Ctime: 100, Items: []order.OrderItem{{ProductID: 10, Quantity: 1}}},
	}
	BuildCart(orders)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(1), orders[1].ID)
}
