package web

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/service"
)

// AdminHandler 管理端订单接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListGroupsReq](h.List))
	g.POST("/detail", ginx.B[GroupDetailReq](h.Detail))
	g.POST("/transition", ginx.B[TransitionReq](h.Transition))
	g.POST("/delete", ginx.B[DeleteOrderReq](h.Delete))
}

type ListGroupsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListGroupsResp struct {
	Total  int64        `json:"total,omitempty"`
	Groups []OrderGroup `json:"groups,omitempty"`
}

type GroupDetailReq struct {
	OrderIDs []int64 `json:"orderIds"`
}

type TransitionReq struct {
	OrderIDs []int64 `json:"orderIds"`
	Status   uint8   `json:"status"`
}

type DeleteOrderReq struct {
	OrderID int64 `json:"orderId"`
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListGroupsReq) (ginx.Result, error) {
	groups, total, err := h.svc.ListGroups(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListGroupsResp{
			Total: total,
			Groups: slice.Map(groups, func(idx int, src domain.OrderGroup) OrderGroup {
				return toGroupVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req GroupDetailReq) (ginx.Result, error) {
	if len(req.OrderIDs) == 0 {
		return systemErrorResult, fmt.Errorf("订单ID列表为空")
	}
	orders, err := h.svc.FindOrdersByIDs(ctx, req.OrderIDs)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	groups := domain.Group(orders)
	return ginx.Result{
		Data: ListGroupsResp{
			Total: int64(len(groups)),
			Groups: slice.Map(groups, func(idx int, src domain.OrderGroup) OrderGroup {
				return toGroupVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Transition(ctx *ginx.Context, req TransitionReq) (ginx.Result, error) {
	err := h.svc.TransitionGroup(ctx.Request.Context(), req.OrderIDs, domain.Status(req.Status))
	if err != nil {
		return systemErrorResult, fmt.Errorf("变更订单状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteOrderReq) (ginx.Result, error) {
	if err := h.svc.RemoveOrder(ctx.Request.Context(), req.OrderID); err != nil {
		return systemErrorResult, fmt.Errorf("删除订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
