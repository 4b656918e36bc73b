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

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"

	"github.com/velours/boutique/internal/order/internal/domain"
)

// FeedPublisher 把完整快照推给在线的管理端
type FeedPublisher interface {
	Publish(groups []domain.OrderGroup, total int64)
}

// GroupLister 消费侧只依赖重查快照这一个方法, 避免 event 与 service 互相引用
type GroupLister interface {
	ListGroups(ctx context.Context, offset, limit int) ([]domain.OrderGroup, int64, error)
}

// OrderFeedConsumer 订阅订单状态变更, 每条消息都重查完整集合再整体推送.
// 推的是快照不是增量, 漏一条消息最多晚一拍, 不会漂移
type OrderFeedConsumer struct {
	svc      GroupLister
	consumer mq.Consumer
	feed     FeedPublisher
	limit    int
	logger   *elog.Component
}

func NewOrderFeedConsumer(svc GroupLister, q mq.MQ, feed FeedPublisher) (*OrderFeedConsumer, error) {
	const groupID = "order_feed"
	consumer, err := q.Consumer(OrderStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderFeedConsumer{
		svc:      svc,
		consumer: consumer,
		feed:     feed,
		limit:    200,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderFeedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if er := c.Consume(ctx); er != nil {
				c.logger.Error("消费订单状态变更事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderFeedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderStatusEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	groups, total, err := c.svc.ListGroups(ctx, 0, c.limit)
	if err != nil {
		return fmt.Errorf("重查订单快照失败: %w", err)
	}
	c.feed.Publish(groups, total)
	return nil
}
