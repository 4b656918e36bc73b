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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"github.com/velours/boutique/internal/analytics"
	"github.com/velours/boutique/internal/cos"
	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/pkg/middleware"
	"github.com/velours/boutique/internal/product"
	"github.com/velours/boutique/internal/search"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

type AdminServer *egin.Component

// InitAdminServer 后台管理服务, 全部接口都要登录且带 creator 标记
func InitAdminServer(
	shopModule *shop.Module,
	userModule *user.Module,
	productModule *product.Module,
	orderModule *order.Module,
	analyticsModule *analytics.Module,
	searchModule *search.Module,
	cosHdl *cos.Handler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "velours-cosmetiques.fr")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckCreatorMiddlewareBuilder().Build())
	shopModule.AdminHdl.PrivateRoutes(res.Engine)
	userModule.AdminHdl.PrivateRoutes(res.Engine)
	productModule.AdminHdl.PrivateRoutes(res.Engine)
	orderModule.AdminHdl.PrivateRoutes(res.Engine)
	orderModule.FeedHdl.PrivateRoutes(res.Engine)
	analyticsModule.AdminHdl.PrivateRoutes(res.Engine)
	searchModule.AdminHdl.PrivateRoutes(res.Engine)
	cosHdl.PrivateRoutes(res.Engine)
	return res
}
