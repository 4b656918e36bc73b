package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/velours/boutique/internal/shop/internal/domain"
	"github.com/velours/boutique/internal/shop/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/shop")
	g.POST("/detail", ginx.W(h.Detail))
	g.POST("/save", ginx.B[SaveShopReq](h.Save))
}

func (h *AdminHandler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	shop, err := h.svc.Info(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Shop{
			Name:    shop.Name,
			Email:   shop.Email,
			Phone:   shop.Phone,
			Address: shop.Address,
			Logo:    shop.Logo,
		},
	}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveShopReq) (ginx.Result, error) {
	err := h.svc.Save(ctx.Request.Context(), domain.Shop{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Logo:    req.Logo,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
