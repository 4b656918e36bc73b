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

package service

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/velours/boutique/internal/email"
	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/event"
	"github.com/velours/boutique/internal/order/internal/repository"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) error
	// DeleteOrder 买家删除自己的购物车单
	DeleteOrder(ctx context.Context, buyerID, id int64) error
	// RemoveOrder 管理端删除任意订单
	RemoveOrder(ctx context.Context, id int64) error
	FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindOrdersByIDs(ctx context.Context, ids []int64) ([]domain.Order, error)
	// FindGroupsByUID 买家的订单按日聚合
	FindGroupsByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.OrderGroup, int64, error)
	// ListGroups 管理端: 取一页正式订单再聚合
	ListGroups(ctx context.Context, offset, limit int) ([]domain.OrderGroup, int64, error)
	// CancelOrder 买家取消, 只允许取消待处理的订单
	CancelOrder(ctx context.Context, buyerID, id int64) error
	// TransitionGroup 把一组订单一起推进到目标状态.
	// 状态写入全部成功或全部不动; 进入"En cours"时库存扣减也在同一事务里.
	// 成功后整组只发一封通知邮件, 邮件失败不回滚
	TransitionGroup(ctx context.Context, orderIDs []int64, target domain.Status) error

	// 购物车模块的支撑能力
	CartOrders(ctx context.Context, buyerID int64) ([]domain.Order, error)
	Checkout(ctx context.Context, buyerID int64, address domain.Address) error

	FindStaleCarts(ctx context.Context, before int64, limit int) ([]domain.Order, error)
	PurgeOrders(ctx context.Context, ids []int64) error
}

func NewService(repo repository.OrderRepository,
	shopSvc shop.Service,
	userSvc user.UserService,
	emailSvc email.Service,
	producer event.OrderStatusEventProducer) Service {
	return &service{
		repo:     repo,
		shopSvc:  shopSvc,
		userSvc:  userSvc,
		emailSvc: emailSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.OrderRepository
	shopSvc  shop.Service
	userSvc  user.UserService
	emailSvc email.Service
	producer event.OrderStatusEventProducer
	logger   *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("订单没有商品")
	}
	return s.repo.Create(ctx, order)
}

func (s *service) UpdateOrder(ctx context.Context, order domain.Order) error {
	// 空订单不允许存在, 清空即删除
	if len(order.Items) == 0 {
		return s.repo.Delete(ctx, order.BuyerID, order.ID)
	}
	return s.repo.Update(ctx, order)
}

func (s *service) DeleteOrder(ctx context.Context, buyerID, id int64) error {
	return s.repo.Delete(ctx, buyerID, id)
}

func (s *service) RemoveOrder(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *service) FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) FindOrdersByIDs(ctx context.Context, ids []int64) ([]domain.Order, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) FindGroupsByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.OrderGroup, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListByBuyerID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByBuyerID(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return domain.Group(orders), total, nil
}

func (s *service) ListGroups(ctx context.Context, offset, limit int) ([]domain.OrderGroup, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return domain.Group(orders), total, nil
}

func (s *service) CancelOrder(ctx context.Context, buyerID, id int64) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}
	if order.BuyerID != buyerID {
		return fmt.Errorf("订单不属于当前买家")
	}
	if order.Status != domain.StatusPending {
		return fmt.Errorf("订单状态非法: 只能取消待处理的订单")
	}
	return s.TransitionGroup(ctx, []int64{id}, domain.StatusCanceled)
}

func (s *service) TransitionGroup(ctx context.Context, orderIDs []int64, target domain.Status) error {
	if len(orderIDs) == 0 {
		return fmt.Errorf("订单ID列表为空")
	}
	if !target.Valid() || target == domain.StatusCart {
		return fmt.Errorf("目标状态非法: %d", target)
	}

	orders, err := s.repo.FindByIDs(ctx, orderIDs)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}
	if len(orders) != len(orderIDs) {
		return fmt.Errorf("部分订单不存在: 期望%d, 实际%d", len(orderIDs), len(orders))
	}

	// 预读店铺和客户身份, 缺了哪个都不落任何写
	sh, err := s.shopSvc.Info(ctx)
	if err != nil {
		return fmt.Errorf("店铺信息缺失, 变更中止: %w", err)
	}
	buyer, err := s.userSvc.Profile(ctx, orders[0].BuyerID)
	if err != nil {
		return fmt.Errorf("客户信息缺失, 变更中止: %w", err)
	}

	if target == domain.StatusProcessing {
		err = s.repo.TransitionWithStock(ctx, orderIDs, target, deductions(orders))
	} else {
		err = s.repo.Transition(ctx, orderIDs, target)
	}
	if err != nil {
		return fmt.Errorf("批量变更订单状态失败: %w", err)
	}

	s.notify(ctx, sh, buyer, orders, target)

	evt := event.OrderStatusEvent{
		OrderIDs: orderIDs,
		SNs: slice.Map(orders, func(idx int, src domain.Order) string {
			return src.SN
		}),
		BuyerID:    orders[0].BuyerID,
		BuyerEmail: buyer.Email,
		Status:     target.ToUint8(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送订单状态变更消息失败",
			elog.FieldErr(er),
			elog.Any("event", evt))
	}
	return nil
}

// deductions 整组订单按商品汇总要扣的数量
func deductions(orders []domain.Order) map[int64]int64 {
	res := make(map[int64]int64)
	for _, o := range orders {
		for _, it := range o.Items {
			res[it.ProductID] += it.Quantity
		}
	}
	return res
}

// notify 整组只发一封邮件, 发送失败只记告警, 状态变更已经生效
func (s *service) notify(ctx context.Context, sh shop.Shop, buyer user.User, orders []domain.Order, target domain.Status) {
	mail, err := statusMail(sh, buyer, orders, target)
	if err != nil {
		s.logger.Warn("渲染订单状态通知邮件失败", elog.FieldErr(err))
		return
	}
	if err := s.emailSvc.SendMail(ctx, mail); err != nil {
		s.logger.Warn("发送订单状态通知邮件失败",
			elog.FieldErr(err),
			elog.String("to", buyer.Email),
			elog.String("status", target.Label()))
	}
}

func (s *service) CartOrders(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	return s.repo.CartOrders(ctx, buyerID)
}

func (s *service) Checkout(ctx context.Context, buyerID int64, address domain.Address) error {
	orders, err := s.repo.CartOrders(ctx, buyerID)
	if err != nil {
		return fmt.Errorf("查找购物车订单失败: %w", err)
	}
	if len(orders) == 0 {
		return fmt.Errorf("购物车为空")
	}
	ids := slice.Map(orders, func(idx int, src domain.Order) int64 {
		return src.ID
	})
	if err := s.repo.MarkPending(ctx, ids, address); err != nil {
		return fmt.Errorf("结账失败: %w", err)
	}
	var buyerEmail string
	if buyer, er := s.userSvc.Profile(ctx, buyerID); er == nil {
		buyerEmail = buyer.Email
	}
	evt := event.OrderStatusEvent{
		OrderIDs: ids,
		SNs: slice.Map(orders, func(idx int, src domain.Order) string {
			return src.SN
		}),
		BuyerID:    buyerID,
		BuyerEmail: buyerEmail,
		Status:     domain.StatusPending.ToUint8(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送结账消息失败", elog.FieldErr(er))
	}
	return nil
}

func (s *service) FindStaleCarts(ctx context.Context, before int64, limit int) ([]domain.Order, error) {
	return s.repo.ListStaleCarts(ctx, before, limit)
}

func (s *service) PurgeOrders(ctx context.Context, ids []int64) error {
	return s.repo.DeleteByIDs(ctx, ids)
}
