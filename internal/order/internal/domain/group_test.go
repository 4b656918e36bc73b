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
	"time"

	"github.com/stretchr/testify/assert"
)

// day 当天某个时刻的毫秒时间戳
func day(d string, hour int) int64 {
	t, _ := time.ParseInLocation("2006-01-02", d, time.Local)
	return t.Add(time.Duration(hour) * time.Hour).UnixMilli()
}

func TestGroup(t *testing.T) {
	testCases := []struct {
		name   string
		orders []Order
		want   []OrderGroup
	}{
		{
			name:   "空输入",
			orders: nil,
			want:   []OrderGroup{},
		},
		{
			name: "同买家同天合为一组",
			orders: []Order{
				{ID: 2, SN: "ORD2", BuyerID: 7, Status: StatusPending, TotalAmount: 300, Ctime: day("2024-03-01", 15)},
				{ID: 1, SN: "ORD1", BuyerID: 7, Status: StatusPending, TotalAmount: 200, Ctime: day("2024-03-01", 9)},
			},
			want: []OrderGroup{
				{
					BuyerID:     7,
					Day:         "2024-03-01",
					OrderIDs:    []int64{1, 2},
					SNs:         []string{"ORD1", "ORD2"},
					TotalAmount: 500,
					Status:      StatusPending,
					Ctime:       day("2024-03-01", 9),
				},
			},
		},
		{
			name: "同买家不同天分组, 新的在前",
			orders: []Order{
				{ID: 1, SN: "ORD1", BuyerID: 7, Status: StatusDelivered, TotalAmount: 100, Ctime: day("2024-03-01", 9)},
				{ID: 2, SN: "ORD2", BuyerID: 7, Status: StatusPending, TotalAmount: 100, Ctime: day("2024-03-02", 9)},
			},
			want: []OrderGroup{
				{
					BuyerID:     7,
					Day:         "2024-03-02",
					OrderIDs:    []int64{2},
					SNs:         []string{"ORD2"},
					TotalAmount: 100,
					Status:      StatusPending,
					Ctime:       day("2024-03-02", 9),
				},
				{
					BuyerID:     7,
					Day:         "2024-03-01",
					OrderIDs:    []int64{1},
					SNs:         []string{"ORD1"},
					TotalAmount: 100,
					Status:      StatusDelivered,
					Ctime:       day("2024-03-01", 9),
				},
			},
		},
		{
			name: "同一天不同买家分组, 按买家排序",
			orders: []Order{
				{ID: 2, SN: "ORD2", BuyerID: 9, Status: StatusShipped, TotalAmount: 100, Ctime: day("2024-03-01", 10)},
				{ID: 1, SN: "ORD1", BuyerID: 7, Status: StatusShipped, TotalAmount: 100, Ctime: day("2024-03-01", 11)},
			},
			want: []OrderGroup{
				{
					BuyerID:     7,
					Day:         "2024-03-01",
					OrderIDs:    []int64{1},
					SNs:         []string{"ORD1"},
					TotalAmount: 100,
					Status:      StatusShipped,
					Ctime:       day("2024-03-01", 11),
				},
				{
					BuyerID:     9,
					Day:         "2024-03-01",
					OrderIDs:    []int64{2},
					SNs:         []string{"ORD2"},
					TotalAmount: 100,
					Status:      StatusShipped,
					Ctime:       day("2024-03-01", 10),
				},
			},
		},
		{
			name: "同一毫秒创建按ID排序",
			orders: []Order{
				{ID: 5, SN: "ORD5", BuyerID: 7, Status: StatusPending, Ctime: day("2024-03-01", 9)},
				{ID: 3, SN: "ORD3", BuyerID: 7, Status: StatusPending, Ctime: day("2024-03-01", 9)},
			},
			want: []OrderGroup{
				{
					BuyerID:  7,
					Day:      "2024-03-01",
					OrderIDs: []int64{3, 5},
					SNs:      []string{"ORD3", "ORD5"},
					Status:   StatusPending,
					Ctime:    day("2024-03-01", 9),
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Group(tc.orders)
			assert.Equal(t, len(tc.want), len(got))
			for i, wg := range tc.want {
				assert.Equal(t, wg.BuyerID, got[i].BuyerID)
				assert.Equal(t, wg.Day, got[i].Day)
				assert.Equal(t, wg.OrderIDs, got[i].OrderIDs)
				assert.Equal(t, wg.SNs, got[i].SNs)
				assert.Equal(t, wg.TotalAmount, got[i].TotalAmount)
				assert.Equal(t, wg.Status, got[i].Status)
				assert.Equal(t, wg.Ctime, got[i].Ctime)
			}
		})
	}
}

// 每个订单恰好落入一个组, 组内成员数之和等于输入数
func TestGroup_Conservation(t *testing.T) {
	orders := []Order{
		{ID: 1, BuyerID: 7, Status: StatusPending, Ctime: day("2024-03-01", 9)},
		{ID: 2, BuyerID: 7, Status: StatusShipped, Ctime: day("2024-03-02", 9)},
		{ID: 3, BuyerID: 9, Status: StatusPending, Ctime: day("2024-03-01", 9)},
		{ID: 4, BuyerID: 9, Status: StatusCanceled, Ctime: day("2024-03-01", 23)},
		{ID: 5, BuyerID: 8, Status: StatusDelivered, Ctime: day("2024-02-29", 1)},
	}
	groups := Group(orders)
	var total int
	seen := make(map[int64]bool)
	for _, g := range groups {
		total += len(g.Orders)
		for _, o := range g.Orders {
			assert.False(t, seen[o.ID], "订单 %d 出现在多个组里", o.ID)
			seen[o.ID] = true
			assert.Equal(t, g.BuyerID, o.BuyerID)
			assert.Equal(t, g.Day, DayOf(o.Ctime))
		}
	}
	assert.Equal(t, len(orders), total)
}

// 纯函数: 同样的输入重复聚合, 结果完全一致
func TestGroup_Deterministic(t *testing.T) {
	orders := []Order{
		{ID: 1, BuyerID: 7, Status: StatusPending, Ctime: day("2024-03-01", 9)},
		{ID: 2, BuyerID: 9, Status: StatusShipped, Ctime: day("2024-03-01", 10)},
		{ID: 3, BuyerID: 7, Status: StatusDelivered, Ctime: day("2024-03-02", 9)},
	}
	first := Group(orders)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Group(orders))
	}
}

func TestGroupStatus(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{
			name:     "全部一致原样返回",
			statuses: []Status{StatusShipped, StatusShipped},
			want:     StatusShipped,
		},
		{
			name:     "混合时待处理优先",
			statuses: []Status{StatusShipped, StatusPending, StatusProcessing},
			want:     StatusPending,
		},
		{
			name:     "混合时处理中优先于已发货",
			statuses: []Status{StatusShipped, StatusProcessing, StatusDelivered},
			want:     StatusProcessing,
		},
		{
			name:     "只剩已发货和终态",
			statuses: []Status{StatusDelivered, StatusShipped, StatusCanceled},
			want:     StatusShipped,
		},
		{
			name:     "全终态送达多于取消",
			statuses: []Status{StatusDelivered, StatusDelivered, StatusCanceled},
			want:     StatusDelivered,
		},
		{
			name:     "全终态送达等于取消算送达",
			statuses: []Status{StatusDelivered, StatusCanceled},
			want:     StatusDelivered,
		},
		{
			name:     "全终态取消占多数",
			statuses: []Status{StatusDelivered, StatusCanceled, StatusCanceled},
			want:     StatusCanceled,
		},
		{
			name:     "单订单",
			statuses: []Status{StatusCanceled},
			want:     StatusCanceled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GroupStatus(tc.statuses))
		})
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Panier", StatusCart.Label())
	assert.Equal(t, "En attente", StatusPending.Label())
	assert.Equal(t, "En cours", StatusProcessing.Label())
	assert.Equal(t, "Expédié", StatusShipped.Label())
	assert.Equal(t, "Livré", StatusDelivered.Label())
	assert.Equal(t, "Annulé", StatusCanceled.Label())
}

func TestOrder_ComputeTotal(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{Price: 1500, Quantity: 2},
			{Price: 890, Quantity: 1},
		},
	}
	assert.Equal(t, int64(3890), o.ComputeTotal())
}
