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

package repository

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"

	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/repository/dao"
)

var ErrOrderNotFound = dao.ErrDataNotFound

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Update(ctx context.Context, order domain.Order) error
	Delete(ctx context.Context, buyerID, id int64) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Total(ctx context.Context) (int64, error)
	CartOrders(ctx context.Context, buyerID int64) ([]domain.Order, error)
	MarkPending(ctx context.Context, ids []int64, address domain.Address) error
	Transition(ctx context.Context, ids []int64, status domain.Status) error
	TransitionWithStock(ctx context.Context, ids []int64, status domain.Status, deductions map[int64]int64) error
	ListStaleCarts(ctx context.Context, before int64, limit int) ([]domain.Order, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.TotalAmount = order.ComputeTotal()
	oid, err := o.d.Create(ctx, o.toEntity(order))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) Update(ctx context.Context, order domain.Order) error {
	order.TotalAmount = order.ComputeTotal()
	return o.d.Update(ctx, o.toEntity(order))
}

func (o *orderRepository) Delete(ctx context.Context, buyerID, id int64) error {
	return o.d.Delete(ctx, buyerID, id)
}

func (o *orderRepository) DeleteByID(ctx context.Context, id int64) error {
	return o.d.DeleteByID(ctx, id)
}

func (o *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := o.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Order, error) {
	orders, err := o.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(order), nil
}

func (o *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListByBuyerID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) Total(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) CartOrders(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	orders, err := o.d.FindCartByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) MarkPending(ctx context.Context, ids []int64, address domain.Address) error {
	return o.d.MarkPending(ctx, ids, sqlx.JsonColumn[domain.Address]{
		Val:   address,
		Valid: true,
	})
}

func (o *orderRepository) Transition(ctx context.Context, ids []int64, status domain.Status) error {
	return o.d.UpdateStatuses(ctx, ids, status.ToUint8())
}

func (o *orderRepository) TransitionWithStock(ctx context.Context, ids []int64, status domain.Status, deductions map[int64]int64) error {
	return o.d.UpdateStatusesAndDeductStock(ctx, ids, status.ToUint8(), deductions)
}

func (o *orderRepository) ListStaleCarts(ctx context.Context, before int64, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListCartBefore(ctx, before, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomains(orders), nil
}

func (o *orderRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	return o.d.DeleteByIDs(ctx, ids)
}

func (o *orderRepository) toDomains(orders []dao.Order) []domain.Order {
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	})
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:      order.ID,
		SN:      order.SN,
		BuyerId: order.BuyerID,
		Items: sqlx.JsonColumn[[]domain.OrderItem]{
			Val:   order.Items,
			Valid: len(order.Items) > 0,
		},
		Status: order.Status.ToUint8(),
		ShippingAddress: sqlx.JsonColumn[domain.Address]{
			Val:   order.ShippingAddress,
			Valid: order.ShippingAddress != domain.Address{},
		},
		TotalAmount: order.TotalAmount,
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	var last domain.StatusUpdate
	if order.LastStatusUpdate != "" {
		// 老数据可能没有这个字段, 解析失败当没有
		_ = json.Unmarshal([]byte(order.LastStatusUpdate), &last)
	}
	return domain.Order{
		ID:               order.Id,
		SN:               order.SN,
		BuyerID:          order.BuyerId,
		Items:            order.Items.Val,
		Status:           domain.Status(order.Status),
		ShippingAddress:  order.ShippingAddress.Val,
		TotalAmount:      order.TotalAmount,
		LastStatusUpdate: last,
		Ctime:            order.Ctime,
		Utime:            order.Utime,
	}
}
