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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// 购物车和取消态, 和 order 模块的枚举保持一致
const (
	statusCart     uint8 = 1
	statusCanceled uint8 = 6
)

type AnalyticsDAO interface {
	// CountOrders 区间内正式订单数, 左闭右开
	CountOrders(ctx context.Context, from, to int64) (int64, error)
	// SumRevenue 区间内营业额, 不算购物车和已取消
	SumRevenue(ctx context.Context, from, to int64) (int64, error)
	StatusCounts(ctx context.Context, from, to int64) ([]StatusCount, error)
	// ListOrderRows 取区间内计算商品榜要用的行
	ListOrderRows(ctx context.Context, from, to int64) ([]OrderRow, error)
}

type AnalyticsGORMDAO struct {
	db *egorm.Component
}

func NewAnalyticsGORMDAO(db *egorm.Component) AnalyticsDAO {
	return &AnalyticsGORMDAO{db: db}
}

func (d *AnalyticsGORMDAO) CountOrders(ctx context.Context, from, to int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&OrderRow{}).
		Where("ctime >= ? AND ctime < ? AND status <> ?", from, to, statusCart).
		Count(&count).Error
	return count, err
}

func (d *AnalyticsGORMDAO) SumRevenue(ctx context.Context, from, to int64) (int64, error) {
	var revenue int64
	err := d.db.WithContext(ctx).Model(&OrderRow{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("ctime >= ? AND ctime < ? AND status NOT IN ?", from, to,
			[]uint8{statusCart, statusCanceled}).
		Scan(&revenue).Error
	return revenue, err
}

func (d *AnalyticsGORMDAO) StatusCounts(ctx context.Context, from, to int64) ([]StatusCount, error) {
	var res []StatusCount
	err := d.db.WithContext(ctx).Model(&OrderRow{}).
		Select("status, COUNT(*) AS count").
		Where("ctime >= ? AND ctime < ? AND status <> ?", from, to, statusCart).
		Group("status").
		Scan(&res).Error
	return res, err
}

func (d *AnalyticsGORMDAO) ListOrderRows(ctx context.Context, from, to int64) ([]OrderRow, error) {
	var res []OrderRow
	err := d.db.WithContext(ctx).
		Where("ctime >= ? AND ctime < ? AND status NOT IN ?", from, to,
			[]uint8{statusCart, statusCanceled}).
		Find(&res).Error
	return res, err
}

type StatusCount struct {
	Status uint8
	Count  int64
}

// OrderRow 只读映射, 表结构归 order 模块管
type OrderRow struct {
	Id          int64
	Items       string
	Status      uint8
	TotalAmount int64
	Ctime       int64
}

func (OrderRow) TableName() string {
	return "orders"
}
