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

package order

import (
	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/event"
	"github.com/velours/boutique/internal/order/internal/job"
	"github.com/velours/boutique/internal/order/internal/service"
	"github.com/velours/boutique/internal/order/internal/web"
)

type Module struct {
	Hdl          *web.Handler
	AdminHdl     *web.AdminHandler
	FeedHdl      *web.FeedHandler
	Svc          Service
	FeedConsumer *event.OrderFeedConsumer
	PurgeJob     *job.PurgeStaleCartsJob
}

type Service = service.Service

type PurgeStaleCartsJob = job.PurgeStaleCartsJob

type Order = domain.Order

type OrderItem = domain.OrderItem

type OrderGroup = domain.OrderGroup

type Address = domain.Address

type Status = domain.Status

const (
	StatusCart       = domain.StatusCart
	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusShipped    = domain.StatusShipped
	StatusDelivered  = domain.StatusDelivered
	StatusCanceled   = domain.StatusCanceled
)
