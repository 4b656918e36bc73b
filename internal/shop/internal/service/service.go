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

	"github.com/velours/boutique/internal/shop/internal/domain"
	"github.com/velours/boutique/internal/shop/internal/repository"
)

type Service interface {
	// Info 读取店铺身份信息, 未配置时返回错误
	Info(ctx context.Context) (domain.Shop, error)
	Save(ctx context.Context, shop domain.Shop) error
}

func NewService(repo repository.ShopRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ShopRepository
}

func (s *service) Info(ctx context.Context) (domain.Shop, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, shop domain.Shop) error {
	return s.repo.Save(ctx, shop)
}
