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

	"golang.org/x/sync/errgroup"

	"github.com/velours/boutique/internal/search/internal/domain"
	"github.com/velours/boutique/internal/search/internal/repository"
)

type SearchService interface {
	// Search 同一个关键字同时查订单和商品
	Search(ctx context.Context, offset, limit int, keywords string) (domain.Result, error)
}

type searchService struct {
	orderRepo   repository.OrderRepo
	productRepo repository.ProductRepo
}

func NewSearchService(orderRepo repository.OrderRepo, productRepo repository.ProductRepo) SearchService {
	return &searchService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *searchService) Search(ctx context.Context, offset, limit int, keywords string) (domain.Result, error) {
	var (
		eg  errgroup.Group
		res domain.Result
	)
	eg.Go(func() error {
		orders, err := s.orderRepo.SearchOrders(ctx, offset, limit, keywords)
		res.Orders = orders
		return err
	})
	eg.Go(func() error {
		products, err := s.productRepo.SearchProducts(ctx, offset, limit, keywords)
		res.Products = products
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Result{}, err
	}
	return res, nil
}
