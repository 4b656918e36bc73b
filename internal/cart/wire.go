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

package cart

import (
	"github.com/ecodeclub/ecache"
	"github.com/google/wire"

	"github.com/velours/boutique/internal/cart/internal/service"
	"github.com/velours/boutique/internal/cart/internal/web"
	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/pkg/sequencenumber"
	"github.com/velours/boutique/internal/product"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	service.NewService,
	NewGenerator)

func InitModule(orderSvc order.Service, productSvc product.Service, ec ecache.Cache) (*Module, error) {
	wire.Build(
		ProviderSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func NewGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("CMD")
}
