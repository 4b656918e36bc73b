//go:build wireinject

package ioc

import (
	"github.com/google/wire"

	"github.com/velours/boutique/internal/analytics"
	"github.com/velours/boutique/internal/cart"
	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/product"
	"github.com/velours/boutique/internal/search"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitES, InitSession, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		shop.InitModule,
		wire.FieldsOf(new(*shop.Module), "Svc"),
		InitUserModule,
		wire.FieldsOf(new(*user.Module), "Svc"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Svc", "PurgeJob"),
		cart.InitModule,
		analytics.InitModule,
		search.InitModule,
		InitCOSHandler,
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		initCronJobs)
	return new(App), nil
}
