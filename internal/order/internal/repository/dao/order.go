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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"

	"github.com/velours/boutique/internal/order/internal/domain"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	// Update 重写订单项, 总价和地址, 购物车编辑用
	Update(ctx context.Context, o Order) error
	Delete(ctx context.Context, buyerID, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (Order, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	// ListByBuyerID 买家的正式订单, 不含购物车
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	// List 管理端的正式订单, 不含购物车
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	FindCartByBuyerID(ctx context.Context, buyerID int64) ([]Order, error)
	// MarkPending 结账: 购物车单转为待处理并盖上收货地址, WHERE 条件保证单向
	MarkPending(ctx context.Context, ids []int64, address sqlx.JsonColumn[domain.Address]) error
	// UpdateStatuses 批量状态写入, 全部成功或全部不动
	UpdateStatuses(ctx context.Context, ids []int64, status uint8) error
	// UpdateStatusesAndDeductStock 状态写入和库存扣减在同一个事务里,
	// 库存扣到 0 为止, 永远不会为负
	UpdateStatusesAndDeductStock(ctx context.Context, ids []int64, status uint8, deductions map[int64]int64) error
	ListCartBefore(ctx context.Context, utime int64, limit int) ([]Order, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Create(&o).Error
	return o.Id, err
}

func (d *OrderGORMDAO) Update(ctx context.Context, o Order) error {
	o.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", o.Id).
		Updates(map[string]any{
			"items":            o.Items,
			"total_amount":     o.TotalAmount,
			"shipping_address": o.ShippingAddress,
			"utime":            o.Utime,
		}).Error
}

func (d *OrderGORMDAO) Delete(ctx context.Context, buyerID, id int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		Delete(&Order{}).Error
}

func (d *OrderGORMDAO) DeleteByID(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Order{}).Error
}

func (d *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND status <> ?", buyerID, domain.StatusCart.ToUint8()).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND status <> ?", buyerID, domain.StatusCart.ToUint8()).
		Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status <> ?", domain.StatusCart.ToUint8()).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status <> ?", domain.StatusCart.ToUint8()).
		Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) FindCartByBuyerID(ctx context.Context, buyerID int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", buyerID, domain.StatusCart.ToUint8()).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) MarkPending(ctx context.Context, ids []int64, address sqlx.JsonColumn[domain.Address]) error {
	now := time.Now().UnixMilli()
	last, err := lastStatusUpdate(domain.StatusPending, now)
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&Order{}).
			Where("id IN ? AND status = ?", ids, domain.StatusCart.ToUint8()).
			Updates(map[string]any{
				"status":             domain.StatusPending.ToUint8(),
				"shipping_address":   address,
				"last_status_update": last,
				"utime":              now,
			}).Error
	})
}

func (d *OrderGORMDAO) UpdateStatuses(ctx context.Context, ids []int64, status uint8) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return d.updateStatuses(tx, ids, status)
	})
}

func (d *OrderGORMDAO) UpdateStatusesAndDeductStock(ctx context.Context, ids []int64, status uint8, deductions map[int64]int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for productID, quantity := range deductions {
			err := tx.Model(&Product{}).
				Where("id = ?", productID).
				Updates(map[string]any{
					"stock": gorm.Expr("GREATEST(stock - ?, 0)", quantity),
					"utime": time.Now().UnixMilli(),
				}).Error
			if err != nil {
				return fmt.Errorf("扣减商品库存失败: id=%d: %w", productID, err)
			}
		}
		return d.updateStatuses(tx, ids, status)
	})
}

func (d *OrderGORMDAO) updateStatuses(tx *gorm.DB, ids []int64, status uint8) error {
	now := time.Now().UnixMilli()
	last, err := lastStatusUpdate(domain.Status(status), now)
	if err != nil {
		return err
	}
	res := tx.Model(&Order{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":             status,
			"last_status_update": last,
			"utime":              now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(ids)) {
		return fmt.Errorf("部分订单不存在: 期望%d, 实际%d: %w",
			len(ids), res.RowsAffected, ErrDataNotFound)
	}
	return nil
}

func (d *OrderGORMDAO) ListCartBefore(ctx context.Context, utime int64, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND utime < ?", domain.StatusCart.ToUint8(), utime).
		Order("utime ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) DeleteByIDs(ctx context.Context, ids []int64) error {
	return d.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Order{}).Error
}

func lastStatusUpdate(status domain.Status, date int64) (string, error) {
	data, err := json.Marshal(domain.StatusUpdate{Status: status, Date: date})
	if err != nil {
		return "", fmt.Errorf("序列化状态变更记录失败: %w", err)
	}
	return string(data), nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{})
}

type Order struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN      string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId int64  `gorm:"not null;index:idx_order_buyer_id;comment:买家ID"`
	// 订单项以 JSON 整体存储, 和订单同生共死
	Items           sqlx.JsonColumn[[]domain.OrderItem] `gorm:"type:text;not null;comment:订单项,JSON格式"`
	Status          uint8                               `gorm:"type:tinyint unsigned;not null;default:1;index:idx_order_status;comment:状态 1=panier 2=en attente 3=en cours 4=expédié 5=livré 6=annulé"`
	ShippingAddress sqlx.JsonColumn[domain.Address]     `gorm:"type:text;comment:收货地址,JSON格式,结账时写入"`
	TotalAmount     int64                               `gorm:"not null;comment:订单总价;单位为分"`
	// 最近一次状态变更, JSON {status, date}
	LastStatusUpdate string `gorm:"type:varchar(255);column:last_status_update;comment:最近一次状态变更,JSON格式"`
	Ctime            int64  `gorm:"index:idx_order_ctime"`
	Utime            int64
}

// Product 库存扣减要和订单状态落在同一个事务里, 这里只映射需要的列,
// 表结构归 product 模块管
type Product struct {
	Id    int64
	Stock int64
	Utime int64
}

func (Product) TableName() string {
	return "products"
}
