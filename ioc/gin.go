package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"

	"github.com/velours/boutique/internal/cart"
	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/pkg/middleware"
	"github.com/velours/boutique/internal/product"
	"github.com/velours/boutique/internal/user"
)

// initGinxServer 面向顾客的店面服务
func initGinxServer(sp session.Provider,
	userModule *user.Module,
	productModule *product.Module,
	orderModule *order.Module,
	cartModule *cart.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "velours-cosmetiques.fr")
		},
	}))
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userModule.Hdl.PublicRoutes(res.Engine)
	productModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userModule.Hdl.PrivateRoutes(res.Engine)
	orderModule.Hdl.PrivateRoutes(res.Engine)
	cartModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
