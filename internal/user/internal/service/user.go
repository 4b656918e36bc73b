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

	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/event"
	"github.com/velours/boutique/internal/user/internal/repository"
	"github.com/velours/boutique/internal/user/internal/repository/dao"
)

var (
	ErrDuplicateEmail        = dao.ErrUserDuplicate
	ErrInvalidUserOrPassword = errors.New("邮箱或密码不正确")
)

type UserService interface {
	// Register 邮箱注册, 成功后发送注册事件
	Register(ctx context.Context, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据, 密码和邮箱不走这里
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// List 管理端客户列表, 按注册时间倒序
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

type userService struct {
	repo     repository.UserRepository
	producer *event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p *event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Email:    email,
		Password: string(hash),
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.ID = id

	// 注册事件发送失败只记日志, 不影响注册本身
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.Int64("uid", id),
		)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.Email = ""
	user.Password = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	us, err := svc.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := svc.repo.Total(ctx)
	return us, total, err
}
