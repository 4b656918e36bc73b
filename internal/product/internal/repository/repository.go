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

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"github.com/velours/boutique/internal/product/internal/domain"
	"github.com/velours/boutique/internal/product/internal/repository/cache"
	"github.com/velours/boutique/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, error)
	TotalOnShelf(ctx context.Context, category string) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdateStock(ctx context.Context, id int64, stock int64) error
}

type CachedProductRepository struct {
	dao    dao.ProductDAO
	cache  cache.ProductCache
	logger *elog.Component
}

func NewCachedProductRepository(d dao.ProductDAO, c cache.ProductCache) ProductRepository {
	return &CachedProductRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *CachedProductRepository) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *CachedProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	ps, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

// ListOnShelf 只有首页(offset=0)走缓存, 翻页流量很小, 直接落库
func (r *CachedProductRepository) ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, error) {
	if offset == 0 {
		if res, err := r.cache.GetList(ctx, category); err == nil {
			if len(res) > limit {
				res = res[:limit]
			}
			return res, nil
		}
	}
	ps, err := r.dao.FindOnShelf(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}
	res := slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	})
	if offset == 0 {
		if err := r.cache.SetList(ctx, category, res); err != nil {
			r.logger.Warn("回填商品列表缓存失败", elog.FieldErr(err))
		}
	}
	return res, nil
}

func (r *CachedProductRepository) TotalOnShelf(ctx context.Context, category string) (int64, error) {
	return r.dao.CountOnShelf(ctx, category)
}

func (r *CachedProductRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *CachedProductRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *CachedProductRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(p))
	if err != nil {
		return 0, err
	}
	r.evict(ctx, p.Category)
	return id, nil
}

func (r *CachedProductRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if err != nil {
		return err
	}
	r.evictByID(ctx, id)
	return nil
}

func (r *CachedProductRepository) UpdateStock(ctx context.Context, id int64, stock int64) error {
	err := r.dao.UpdateStock(ctx, id, stock)
	if err != nil {
		return err
	}
	r.evictByID(ctx, id)
	return nil
}

func (r *CachedProductRepository) evictByID(ctx context.Context, id int64) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return
	}
	r.evict(ctx, p.Category)
}

func (r *CachedProductRepository) evict(ctx context.Context, category string) {
	if err := r.cache.Evict(ctx, category); err != nil {
		r.logger.Warn("清理商品列表缓存失败",
			elog.FieldErr(err),
			elog.String("category", category))
	}
	// 全分类列表也要作废
	if category != "" {
		_ = r.cache.Evict(ctx, "")
	}
}

func (r *CachedProductRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:       p.Id,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Description,
		Category: p.Category,
		Image:    p.Image,
		Price:    p.Price,
		Stock:    p.Stock,
		Status:   domain.Status(p.Status),
		Ctime:    p.Ctime,
		Utime:    p.Utime,
	}
}

func (r *CachedProductRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		SN:          p.SN,
		Name:        p.Name,
		Description: p.Desc,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price,
		Stock:       p.Stock,
		Status:      p.Status.ToUint8(),
	}
}
