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

package search

import (
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"

	"github.com/velours/boutique/internal/search/internal/event"
	"github.com/velours/boutique/internal/search/internal/repository"
	"github.com/velours/boutique/internal/search/internal/repository/dao"
	"github.com/velours/boutique/internal/search/internal/service"
	"github.com/velours/boutique/internal/search/internal/web"
)

var ProviderSet = wire.NewSet(
	web.NewAdminHandler,
	service.NewSearchService,
	service.NewSyncService,
	event.NewProductSyncConsumer,
	event.NewOrderSyncConsumer,
	repository.NewOrderRepo,
	repository.NewProductRepo,
	repository.NewAnyRepo,
	dao.NewOrderElasticDAO,
	dao.NewProductElasticDAO,
	dao.NewAnyESDAO)

func InitModule(q mq.MQ, es *elastic.Client) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
