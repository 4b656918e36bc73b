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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"

	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/service"
)

// PurgeStaleCartsJob 清理长期没动静的购物车单
type PurgeStaleCartsJob struct {
	svc     service.Service
	limit   int
	maxAge  time.Duration
	timeout time.Duration
}

func NewPurgeStaleCartsJob(svc service.Service, limit int, maxAge, timeout time.Duration) *PurgeStaleCartsJob {
	return &PurgeStaleCartsJob{svc: svc, limit: limit, maxAge: maxAge, timeout: timeout}
}

func (j *PurgeStaleCartsJob) Name() string {
	return "PurgeStaleCartsJob"
}

func (j *PurgeStaleCartsJob) Run(_ context.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	before := time.Now().Add(-j.maxAge).UnixMilli()

	for {
		orders, err := j.svc.FindStaleCarts(ctx, before, j.limit)
		if err != nil {
			return fmt.Errorf("查找过期购物车失败: %w", err)
		}
		if len(orders) == 0 {
			return nil
		}
		ids := slice.Map(orders, func(idx int, src domain.Order) int64 {
			return src.ID
		})
		if err := j.svc.PurgeOrders(ctx, ids); err != nil {
			return fmt.Errorf("清理过期购物车失败: %w", err)
		}
		if len(orders) < j.limit {
			return nil
		}
	}
}
