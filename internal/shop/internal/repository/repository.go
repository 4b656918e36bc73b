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

	"github.com/velours/boutique/internal/shop/internal/domain"
	"github.com/velours/boutique/internal/shop/internal/repository/dao"
)

type ShopRepository interface {
	Get(ctx context.Context) (domain.Shop, error)
	Save(ctx context.Context, shop domain.Shop) error
}

func NewRepository(d dao.ShopDAO) ShopRepository {
	return &shopRepository{d: d}
}

type shopRepository struct {
	d dao.ShopDAO
}

func (r *shopRepository) Get(ctx context.Context) (domain.Shop, error) {
	shop, err := r.d.Get(ctx)
	if err != nil {
		return domain.Shop{}, err
	}
	return domain.Shop{
		ID:      shop.Id,
		Name:    shop.Name,
		Email:   shop.Email,
		Phone:   shop.Phone,
		Address: shop.Address,
		Logo:    shop.Logo,
		Utime:   shop.Utime,
	}, nil
}

func (r *shopRepository) Save(ctx context.Context, shop domain.Shop) error {
	return r.d.Save(ctx, dao.Shop{
		Name:    shop.Name,
		Email:   shop.Email,
		Phone:   shop.Phone,
		Address: shop.Address,
		Logo:    shop.Logo,
	})
}
