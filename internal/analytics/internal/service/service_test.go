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
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velours/boutique/internal/analytics/internal/domain"
	"github.com/velours/boutique/internal/analytics/internal/repository/dao"
)

type fakeDAO struct {
	calls   int
	count   int64
	revenue int64
	counts  []dao.StatusCount
	rows    []dao.OrderRow
	err     error
}

func (f *fakeDAO) CountOrders(_ context.Context, _, _ int64) (int64, error) {
	f.calls++
	return f.count, f.err
}

func (f *fakeDAO) SumRevenue(_ context.Context, _, _ int64) (int64, error) {
	return f.revenue, f.err
}

func (f *fakeDAO) StatusCounts(_ context.Context, _, _ int64) ([]dao.StatusCount, error) {
	return f.counts, f.err
}

func (f *fakeDAO) ListOrderRows(_ context.Context, _, _ int64) ([]dao.OrderRow, error) {
	return f.rows, f.err
}

type fakeCache struct {
	ecache.Cache
	vals map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{vals: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) ecache.Value {
	v, ok := f.vals[key]
	if !ok {
		return ecache.Value{AnyValue: ekit.AnyValue{Err: errors.New("键不存在")}}
	}
	return ecache.Value{AnyValue: ekit.AnyValue{Val: v}}
}

func (f *fakeCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	data, _ := val.([]byte)
	f.vals[key] = string(data)
	return nil
}

func TestService_Summary(t *testing.T) {
	d := &fakeDAO{
		count:   3,
		revenue: 7800,
		counts: []dao.StatusCount{
			{Status: 2, Count: 2},
			{Status: 6, Count: 1},
		},
		rows: []dao.OrderRow{
			{Id: 1, Items: `[{"ProductID":10,"Name":"Rouge Velours","Price":1500,"Quantity":2}]`},
			{Id: 2, Items: `[{"ProductID":10,"Name":"Rouge Velours","Price":1500,"Quantity":1},` +
				`{"ProductID":20,"Name":"Crème Douce","Price":2400,"Quantity":1}]`},
		},
	}
	svc := NewService(d, newFakeCache())

	res, err := svc.Summary(context.Background(), 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.OrderCount)
	assert.Equal(t, int64(7800), res.Revenue)
	assert.Equal(t, map[uint8]int64{2: 2, 6: 1}, res.StatusBreakdown)
	// 榜单按营业额降序
	assert.Equal(t, []domain.ProductStat{
		{ProductID: 10, Name: "Rouge Velours", Quantity: 3, Revenue: 4500},
		{ProductID: 20, Name: "Crème Douce", Quantity: 1, Revenue: 2400},
	}, res.TopProducts)
}

func TestService_Summary_Cache(t *testing.T) {
	d := &fakeDAO{count: 5}
	svc := NewService(d, newFakeCache())

	first, err := svc.Summary(context.Background(), 0, 1000)
	require.NoError(t, err)
	second, err := svc.Summary(context.Background(), 0, 1000)
	require.NoError(t, err)

	assert.Equal(t, first.OrderCount, second.OrderCount)
	// 第二次读缓存, 不再查库
	assert.Equal(t, 1, d.calls)

	// 区间不同不共享缓存
	_, err = svc.Summary(context.Background(), 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, 2, d.calls)
}

func TestService_Summary_DAOError(t *testing.T) {
	d := &fakeDAO{err: errors.New("数据库挂了")}
	svc := NewService(d, newFakeCache())

	_, err := svc.Summary(context.Background(), 0, 1000)
	assert.Error(t, err)
}

func TestTopProducts(t *testing.T) {
	testCases := []struct {
		name string
		rows []dao.OrderRow
		want []domain.ProductStat
	}{
		{
			name: "无订单",
			rows: nil,
			want: []domain.ProductStat{},
		},
		{
			name: "营业额相同按商品ID升序",
			rows: []dao.OrderRow{
				{Items: `[{"ProductID":20,"Name":"B","Price":100,"Quantity":1},` +
					`{"ProductID":10,"Name":"A","Price":100,"Quantity":1}]`},
			},
			want: []domain.ProductStat{
				{ProductID: 10, Name: "A", Quantity: 1, Revenue: 100},
				{ProductID: 20, Name: "B", Quantity: 1, Revenue: 100},
			},
		},
		{
			name: "脏数据行跳过",
			rows: []dao.OrderRow{
				{Items: ""},
				{Items: "pas du json"},
				{Items: `[{"ProductID":10,"Name":"A","Price":100,"Quantity":2}]`},
			},
			want: []domain.ProductStat{
				{ProductID: 10, Name: "A", Quantity: 2, Revenue: 200},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, topProducts(tc.rows))
		})
	}
}

// 榜单最多 10 个商品
func TestTopProducts_Truncated(t *testing.T) {
	rows := make([]dao.OrderRow, 0, 15)
	for i := 1; i <= 15; i++ {
		rows = append(rows, dao.OrderRow{
			Items: fmt.Sprintf(`[{"ProductID":%d,"Name":"P%d","Price":100,"Quantity":1}]`, i, i),
		})
	}
	assert.Len(t, topProducts(rows), 10)
}
