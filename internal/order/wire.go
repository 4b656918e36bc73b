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

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/velours/boutique/internal/email"
	"github.com/velours/boutique/internal/order/internal/event"
	"github.com/velours/boutique/internal/order/internal/job"
	"github.com/velours/boutique/internal/order/internal/repository"
	"github.com/velours/boutique/internal/order/internal/repository/dao"
	"github.com/velours/boutique/internal/order/internal/service"
	"github.com/velours/boutique/internal/order/internal/web"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	web.NewFeedHandler,
	wire.Bind(new(event.FeedPublisher), new(*web.FeedHandler)),
	event.NewOrderStatusEventProducer,
	event.NewOrderFeedConsumer,
	service.NewService,
	repository.NewRepository,
	NewPurgeStaleCartsJob,
	InitTablesOnce)

func InitModule(db *egorm.Component, q mq.MQ,
	userSvc user.UserService, shopSvc shop.Service, emailSvc email.Service) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func NewPurgeStaleCartsJob(svc service.Service) *job.PurgeStaleCartsJob {
	// 购物车 30 天没动静就算废弃
	return job.NewPurgeStaleCartsJob(svc, 100, 30*24*time.Hour, time.Minute)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
