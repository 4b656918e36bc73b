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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"

	"github.com/velours/boutique/internal/search/internal/domain"
	"github.com/velours/boutique/internal/search/internal/repository/dao"
	"github.com/velours/boutique/internal/search/internal/service"
)

const (
	productEventName     = "product_events"
	orderStatusEventName = "order_status_events"
)

// productEvent 商品模块发出的消息, 这里只认自己要的字段
type productEvent struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}

// orderStatusEvent 订单模块发出的消息
type orderStatusEvent struct {
	OrderIDs   []int64  `json:"orderIDs"`
	SNs        []string `json:"sns"`
	BuyerID    int64    `json:"buyerID"`
	BuyerEmail string   `json:"buyerEmail"`
	Status     uint8    `json:"status"`
}

// ProductSyncConsumer 把商品变更写进搜索索引
type ProductSyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewProductSyncConsumer(svc service.SyncService, q mq.MQ) (*ProductSyncConsumer, error) {
	const groupID = "search_sync"
	consumer, err := q.Consumer(productEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ProductSyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ProductSyncConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("同步商品到搜索索引失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ProductSyncConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt productEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	doc := domain.ProductDoc{
		ID:       evt.ID,
		SN:       evt.SN,
		Name:     evt.Name,
		Desc:     evt.Desc,
		Category: evt.Category,
		Price:    evt.Price,
		Status:   evt.Status,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("序列化商品文档失败: %w", err)
	}
	return c.svc.Input(ctx, dao.ProductIndexName, strconv.FormatInt(doc.ID, 10), string(data))
}

func (c *ProductSyncConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

// OrderSyncConsumer 把订单状态变更写进搜索索引, 一条消息覆盖整组订单
type OrderSyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderSyncConsumer(svc service.SyncService, q mq.MQ) (*OrderSyncConsumer, error) {
	const groupID = "search_sync"
	consumer, err := q.Consumer(orderStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderSyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderSyncConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("同步订单到搜索索引失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderSyncConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt orderStatusEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if len(evt.OrderIDs) != len(evt.SNs) {
		return fmt.Errorf("消息不完整: %d个ID, %d个SN", len(evt.OrderIDs), len(evt.SNs))
	}

	for i, id := range evt.OrderIDs {
		doc := domain.OrderDoc{
			ID:         id,
			SN:         evt.SNs[i],
			BuyerID:    evt.BuyerID,
			BuyerEmail: evt.BuyerEmail,
			Status:     evt.Status,
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("序列化订单文档失败: %w", err)
		}
		if err := c.svc.Input(ctx, dao.OrderIndexName, strconv.FormatInt(id, 10), string(data)); err != nil {
			return fmt.Errorf("写入订单文档失败: %w", err)
		}
	}
	return nil
}

func (c *OrderSyncConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
