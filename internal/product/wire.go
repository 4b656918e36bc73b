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

package product

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"

	"github.com/velours/boutique/internal/pkg/sequencenumber"
	"github.com/velours/boutique/internal/product/internal/event"
	"github.com/velours/boutique/internal/product/internal/repository"
	"github.com/velours/boutique/internal/product/internal/repository/cache"
	"github.com/velours/boutique/internal/product/internal/repository/dao"
	"github.com/velours/boutique/internal/product/internal/service"
	"github.com/velours/boutique/internal/product/internal/web"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	cache.NewProductCache,
	event.NewProductEventProducer,
	service.NewService,
	repository.NewCachedProductRepository,
	NewGenerator,
	InitTablesOnce)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func NewGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("PRD")
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
