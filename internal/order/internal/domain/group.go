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
	"time"
)

// OrderGroup 同一买家同一天的订单聚合, 管理端和店面都按组展示
type OrderGroup struct {
	BuyerID int64
	// Day 订单创建日, 格式 2006-01-02
	Day      string
	Orders   []Order
	OrderIDs []int64
	SNs      []string
	Items    []OrderItem
	// TotalAmount 组内订单总价之和
	TotalAmount int64
	Status      Status
	// Ctime 组内最早一单的创建时间
	Ctime int64
}

// Group 按 (买家, 创建日) 聚合订单. 纯函数, 同样的输入永远给出同样的输出,
// 每个订单恰好落入一个组
func Group(orders []Order) []OrderGroup {
	type key struct {
		buyerID int64
		day     string
	}
	groups := make(map[key][]Order, len(orders))
	for _, o := range orders {
		k := key{buyerID: o.BuyerID, day: DayOf(o.Ctime)}
		groups[k] = append(groups[k], o)
	}
	res := make([]OrderGroup, 0, len(groups))
	for k, members := range groups {
		sort.Slice(members, func(i, j int) bool {
			if members[i].Ctime != members[j].Ctime {
				return members[i].Ctime < members[j].Ctime
			}
			return members[i].ID < members[j].ID
		})
		g := OrderGroup{
			BuyerID: k.buyerID,
			Day:     k.day,
			Orders:  members,
			Ctime:   members[0].Ctime,
		}
		statuses := make([]Status, 0, len(members))
		for _, o := range members {
			g.OrderIDs = append(g.OrderIDs, o.ID)
			g.SNs = append(g.SNs, o.SN)
			g.Items = append(g.Items, o.Items...)
			g.TotalAmount += o.TotalAmount
			statuses = append(statuses, o.Status)
		}
		g.Status = GroupStatus(statuses)
		res = append(res, g)
	}
	// 新的在前, 同一天按买家稳定排序
	sort.Slice(res, func(i, j int) bool {
		if res[i].Day != res[j].Day {
			return res[i].Day > res[j].Day
		}
		return res[i].BuyerID < res[j].BuyerID
	})
	return res
}

// GroupStatus 聚合组的展示状态.
// 只要有活跃订单, 按 En attente > En cours > Expédié 的优先级取最靠前的;
// 全部终态时, 已送达的不少于已取消的就算 Livré, 否则算 Annulé
func GroupStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return 0
	}
	uniform := true
	for _, s := range statuses[1:] {
		if s != statuses[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return statuses[0]
	}
	for _, active := range []Status{StatusPending, StatusProcessing, StatusShipped} {
		for _, s := range statuses {
			if s == active {
				return active
			}
		}
	}
	var delivered, canceled int
	for _, s := range statuses {
		switch s {
		case StatusDelivered:
			delivered++
		case StatusCanceled:
			canceled++
		}
	}
	if delivered >= canceled {
		return StatusDelivered
	}
	return StatusCanceled
}

// DayOf 毫秒时间戳所在的本地日历日
func DayOf(ctime int64) string {
	return time.UnixMilli(ctime).Format("2006-01-02")
}
