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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"

	"github.com/velours/boutique/internal/cart/internal/domain"
	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/pkg/sequencenumber"
	"github.com/velours/boutique/internal/product"
)

var (
	ErrInsufficientStock = errors.New("商品库存不足")
	ErrLineNotFound      = errors.New("购物车里没有这个商品")
)

type Service interface {
	Cart(ctx context.Context, uid int64) ([]domain.Line, error)
	// Add 已有的行在原单上加量, 新商品起一张购物车单
	Add(ctx context.Context, uid, productID, quantity int64) error
	// UpdateQuantity 数量小于 1 等价于删除; 超过现有库存时整个操作不落地
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error
	// Remove 把商品从购物车里拿掉: 独占的单整单删除, 混装的单改写订单项
	Remove(ctx context.Context, uid, productID int64) error
	// Checkout 把全部购物车单一次性转为正式订单并盖上收货地址.
	// requestID 用来挡重复提交
	Checkout(ctx context.Context, uid int64, requestID string, address order.Address) error
}

func NewService(orderSvc order.Service,
	productSvc product.Service,
	snGen *sequencenumber.Generator,
	cache ecache.Cache) Service {
	return &service{
		orderSvc:   orderSvc,
		productSvc: productSvc,
		snGen:      snGen,
		cache:      cache,
	}
}

type service struct {
	orderSvc   order.Service
	productSvc product.Service
	snGen      *sequencenumber.Generator
	cache      ecache.Cache
}

func (s *service) Cart(ctx context.Context, uid int64) ([]domain.Line, error) {
	orders, err := s.orderSvc.CartOrders(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("查找购物车订单失败: %w", err)
	}
	return domain.BuildCart(orders), nil
}

func (s *service) Add(ctx context.Context, uid, productID, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("商品数量非法")
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("商品不存在: %w", err)
	}
	if p.Status != product.StatusOnShelf {
		return fmt.Errorf("商品已下架")
	}

	orders, err := s.orderSvc.CartOrders(ctx, uid)
	if err != nil {
		return fmt.Errorf("查找购物车订单失败: %w", err)
	}

	var owned int64
	for _, l := range domain.BuildCart(orders) {
		if l.ProductID == productID {
			owned = l.Quantity
			break
		}
	}
	if owned+quantity > p.Stock {
		return ErrInsufficientStock
	}

	// 已有的行: 在最早持有这个商品的单上加量
	for _, o := range orders {
		for i, it := range o.Items {
			if it.ProductID == productID {
				o.Items[i].Quantity += quantity
				return s.orderSvc.UpdateOrder(ctx, o)
			}
		}
	}

	sn, err := s.snGen.Generate(uid)
	if err != nil {
		return fmt.Errorf("生成订单序列号失败: %w", err)
	}
	_, err = s.orderSvc.CreateOrder(ctx, order.Order{
		SN:      sn,
		BuyerID: uid,
		Status:  order.StatusCart,
		Items: []order.OrderItem{{
			ProductID: p.ID,
			SN:        p.SN,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  quantity,
		}},
	})
	return err
}

func (s *service) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error {
	if quantity < 1 {
		return s.Remove(ctx, uid, productID)
	}
	p, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("商品不存在: %w", err)
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	orders, err := s.orderSvc.CartOrders(ctx, uid)
	if err != nil {
		return fmt.Errorf("查找购物车订单失败: %w", err)
	}
	owners := ownersOf(orders, productID)
	if len(owners) == 0 {
		return ErrLineNotFound
	}

	// 新数量整体落在最早的那张单上, 其余单里的这个商品拿掉
	for idx, o := range owners {
		items := make([]order.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			if it.ProductID != productID {
				items = append(items, it)
				continue
			}
			if idx == 0 {
				it.Quantity = quantity
				items = append(items, it)
			}
		}
		o.Items = items
		if err := s.orderSvc.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("改写购物车订单失败: %w", err)
		}
	}
	return nil
}

func (s *service) Remove(ctx context.Context, uid, productID int64) error {
	orders, err := s.orderSvc.CartOrders(ctx, uid)
	if err != nil {
		return fmt.Errorf("查找购物车订单失败: %w", err)
	}
	owners := ownersOf(orders, productID)
	if len(owners) == 0 {
		return ErrLineNotFound
	}

	for _, o := range owners {
		if len(o.Items) == 1 {
			// 单里只有这一个商品, 整单删除
			if err := s.orderSvc.DeleteOrder(ctx, uid, o.ID); err != nil {
				return fmt.Errorf("删除购物车订单失败: %w", err)
			}
			continue
		}
		items := make([]order.OrderItem, 0, len(o.Items)-1)
		for _, it := range o.Items {
			if it.ProductID != productID {
				items = append(items, it)
			}
		}
		o.Items = items
		if err := s.orderSvc.UpdateOrder(ctx, o); err != nil {
			return fmt.Errorf("改写购物车订单失败: %w", err)
		}
	}
	return nil
}

func (s *service) Checkout(ctx context.Context, uid int64, requestID string, address order.Address) error {
	if err := s.checkRequestID(ctx, requestID); err != nil {
		return fmt.Errorf("请求ID错误: %w", err)
	}
	return s.orderSvc.Checkout(ctx, uid, address)
}

func (s *service) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("cart:checkout:%s", requestID)
	ok, err := s.cache.SetNX(ctx, key, requestID, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	if !ok {
		return fmt.Errorf("重复请求")
	}
	return nil
}

// ownersOf 持有这个商品的购物车单, 按加入时间排序
func ownersOf(orders []order.Order, productID int64) []order.Order {
	res := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		for _, it := range o.Items {
			if it.ProductID == productID {
				res = append(res, o)
				break
			}
		}
	}
	return res
}
