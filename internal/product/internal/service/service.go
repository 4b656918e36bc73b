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

	"github.com/gotomicro/ego/core/elog"

	"github.com/velours/boutique/internal/pkg/sequencenumber"
	"github.com/velours/boutique/internal/product/internal/domain"
	"github.com/velours/boutique/internal/product/internal/event"
	"github.com/velours/boutique/internal/product/internal/repository"
)

type Service interface {
	// FindBySN 详情页, 只返回上架商品
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, int64, error)

	// 管理端
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	Publish(ctx context.Context, id int64) error
	TakeDown(ctx context.Context, id int64) error
	SetStock(ctx context.Context, id int64, stock int64) error
}

type service struct {
	repo     repository.ProductRepository
	snGen    *sequencenumber.Generator
	producer event.ProductEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ProductRepository,
	snGen *sequencenumber.Generator,
	producer event.ProductEventProducer) Service {
	return &service{
		repo:     repo,
		snGen:    snGen,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, int64, error) {
	ps, err := s.repo.ListOnShelf(ctx, category, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.TotalOnShelf(ctx, category)
	return ps, total, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	ps, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Total(ctx)
	return ps, total, err
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	if p.ID == 0 {
		sn, err := s.snGen.Generate(0)
		if err != nil {
			return 0, err
		}
		p.SN = sn
		// 新建商品默认下架, 上架是显式动作
		p.Status = domain.StatusOffShelf
	}
	id, err := s.repo.Save(ctx, p)
	if err != nil {
		return 0, err
	}
	p.ID = id
	s.notify(ctx, p)
	return id, nil
}

func (s *service) Publish(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.StatusOnShelf)
}

func (s *service) TakeDown(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.StatusOffShelf)
}

func (s *service) SetStock(ctx context.Context, id int64, stock int64) error {
	return s.repo.UpdateStock(ctx, id, stock)
}

func (s *service) updateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err == nil {
		s.notify(ctx, p)
	}
	return nil
}

// notify 失败只记日志, 搜索同步允许落后
func (s *service) notify(ctx context.Context, p domain.Product) {
	evt := event.ProductEvent{
		ID:       p.ID,
		SN:       p.SN,
		Name:     p.Name,
		Desc:     p.Desc,
		Category: p.Category,
		Price:    p.Price,
		Status:   p.Status.ToUint8(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送商品变更消息失败",
			elog.FieldErr(err),
			elog.Int64("id", p.ID))
	}
}
