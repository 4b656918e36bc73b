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

	"github.com/velours/boutique/internal/search/internal/domain"
	"github.com/velours/boutique/internal/search/internal/repository/dao"
)

type OrderRepo interface {
	SearchOrders(ctx context.Context, offset, limit int, keywords string) ([]domain.OrderDoc, error)
}

type ProductRepo interface {
	SearchProducts(ctx context.Context, offset, limit int, keywords string) ([]domain.ProductDoc, error)
}

type AnyRepo interface {
	Input(ctx context.Context, index, docID, data string) error
}

type orderRepository struct {
	dao *dao.OrderElasticDAO
}

func NewOrderRepo(d *dao.OrderElasticDAO) OrderRepo {
	return &orderRepository{dao: d}
}

func (o *orderRepository) SearchOrders(ctx context.Context, offset, limit int, keywords string) ([]domain.OrderDoc, error) {
	orders, err := o.dao.Search(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.OrderDoc {
		return domain.OrderDoc{
			ID:         src.Id,
			SN:         src.SN,
			BuyerID:    src.BuyerId,
			BuyerEmail: src.BuyerEmail,
			Status:     src.Status,
		}
	}), nil
}

type productRepository struct {
	dao *dao.ProductElasticDAO
}

func NewProductRepo(d *dao.ProductElasticDAO) ProductRepo {
	return &productRepository{dao: d}
}

func (p *productRepository) SearchProducts(ctx context.Context, offset, limit int, keywords string) ([]domain.ProductDoc, error) {
	products, err := p.dao.Search(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.ProductDoc {
		return domain.ProductDoc{
			ID:       src.Id,
			SN:       src.SN,
			Name:     src.Name,
			Desc:     src.Desc,
			Category: src.Category,
			Price:    src.Price,
			Status:   src.Status,
		}
	}), nil
}

type anyRepo struct {
	dao dao.AnyDAO
}

func NewAnyRepo(d dao.AnyDAO) AnyRepo {
	return &anyRepo{dao: d}
}

func (a *anyRepo) Input(ctx context.Context, index, docID, data string) error {
	return a.dao.Input(ctx, index, docID, data)
}
