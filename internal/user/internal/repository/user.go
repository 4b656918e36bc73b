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
	"github.com/ecodeclub/ekit/sqlx"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/repository/cache"
	"github.com/velours/boutique/internal/user/internal/repository/dao"
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 只更新非零字段
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
}

// CachedUserRepository 带缓存的实现, 点查走缓存
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.ID)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(u), nil
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 回填缓存失败不影响主流程
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) Total(ctx context.Context) (int64, error) {
	return ur.dao.Count(ctx)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.ID,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Phone:    u.Phone,
		Avatar:   u.Avatar,
		DefaultAddress: sqlx.JsonColumn[domain.Address]{
			Val:   u.DefaultAddress,
			Valid: u.DefaultAddress != domain.Address{},
		},
	}
}

func (ur *CachedUserRepository) entityToDomain(u dao.User) domain.User {
	return domain.User{
		ID:             u.Id,
		Email:          u.Email,
		Password:       u.Password,
		Nickname:       u.Nickname,
		Phone:          u.Phone,
		Avatar:         u.Avatar,
		DefaultAddress: u.DefaultAddress.Val,
		Ctime:          u.Ctime,
		Utime:          u.Utime,
	}
}
