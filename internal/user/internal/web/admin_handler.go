package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/service"
)

// AdminHandler 管理端的客户接口
type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	customers := server.Group("/customers")
	customers.POST("/list", ginx.B[ListReq](h.List))
	customers.POST("/detail", ginx.B[DetailReq](h.Detail))
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type ListResp struct {
	Total     int64     `json:"total"`
	Customers []Profile `json:"customers"`
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	us, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Customers: slice.Map(us, func(idx int, src domain.User) Profile {
				return newProfile(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}
