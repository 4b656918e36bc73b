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
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"

	"github.com/velours/boutique/internal/analytics/internal/domain"
	"github.com/velours/boutique/internal/analytics/internal/repository/dao"
)

const (
	cacheExpiration = 5 * time.Minute
	topProductCount = 10
)

type Service interface {
	// Summary 一段时间的汇总, 毫秒时间戳, 左闭右开
	Summary(ctx context.Context, from, to int64) (domain.Summary, error)
}

func NewService(d dao.AnalyticsDAO, ec ecache.Cache) Service {
	return &service{
		dao: d,
		cache: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "analytics:",
		},
		logger: elog.DefaultLogger,
	}
}

type service struct {
	dao    dao.AnalyticsDAO
	cache  ecache.Cache
	logger *elog.Component
}

func (s *service) Summary(ctx context.Context, from, to int64) (domain.Summary, error) {
	key := fmt.Sprintf("summary:%d-%d", from, to)
	var cached domain.Summary
	if err := s.cache.Get(ctx, key).JSONScan(&cached); err == nil {
		return cached, nil
	}

	var (
		eg      errgroup.Group
		count   int64
		revenue int64
		counts  []dao.StatusCount
		rows    []dao.OrderRow
	)
	eg.Go(func() error {
		var err error
		count, err = s.dao.CountOrders(ctx, from, to)
		return err
	})
	eg.Go(func() error {
		var err error
		revenue, err = s.dao.SumRevenue(ctx, from, to)
		return err
	})
	eg.Go(func() error {
		var err error
		counts, err = s.dao.StatusCounts(ctx, from, to)
		return err
	})
	eg.Go(func() error {
		var err error
		rows, err = s.dao.ListOrderRows(ctx, from, to)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Summary{}, fmt.Errorf("统计订单失败: %w", err)
	}

	breakdown := make(map[uint8]int64, len(counts))
	for _, c := range counts {
		breakdown[c.Status] = c.Count
	}

	res := domain.Summary{
		From:            from,
		To:              to,
		OrderCount:      count,
		Revenue:         revenue,
		StatusBreakdown: breakdown,
		TopProducts:     topProducts(rows),
	}

	data, err := json.Marshal(res)
	if err == nil {
		if er := s.cache.Set(ctx, key, data, cacheExpiration); er != nil {
			s.logger.Warn("回填统计缓存失败", elog.FieldErr(er))
		}
	}
	return res, nil
}

type itemRow struct {
	ProductID int64  `json:"ProductID"`
	Name      string `json:"Name"`
	Price     int64  `json:"Price"`
	Quantity  int64  `json:"Quantity"`
}

// topProducts 订单项存的是 JSON, 榜单在内存里算
func topProducts(rows []dao.OrderRow) []domain.ProductStat {
	stats := make(map[int64]*domain.ProductStat)
	for _, row := range rows {
		if row.Items == "" {
			continue
		}
		var items []itemRow
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			continue
		}
		for _, it := range items {
			st, ok := stats[it.ProductID]
			if !ok {
				st = &domain.ProductStat{ProductID: it.ProductID, Name: it.Name}
				stats[it.ProductID] = st
			}
			st.Quantity += it.Quantity
			st.Revenue += it.Price * it.Quantity
		}
	}
	res := make([]domain.ProductStat, 0, len(stats))
	for _, st := range stats {
		res = append(res, *st)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Revenue != res[j].Revenue {
			return res[i].Revenue > res[j].Revenue
		}
		return res[i].ProductID < res[j].ProductID
	})
	if len(res) > topProductCount {
		res = res[:topProductCount]
	}
	return res
}
