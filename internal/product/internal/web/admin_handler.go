package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/product/internal/domain"
	"github.com/velours/boutique/internal/product/internal/service"
)

// AdminHandler 管理端商品维护
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	products := server.Group("/products")
	products.POST("/list", ginx.B[PageReq](h.List))
	products.POST("/detail", ginx.B[IdReq](h.Detail))
	products.POST("/save", ginx.B[SaveReq](h.Save))
	products.POST("/publish", ginx.B[IdReq](h.Publish))
	products.POST("/take-down", ginx.B[IdReq](h.TakeDown))
	products.POST("/stock", ginx.B[StockReq](h.SetStock))
}

type PageReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type SaveReq struct {
	Product Product `json:"product"`
}

type StockReq struct {
	Id    int64 `json:"id"`
	Stock int64 `json:"stock"`
}

func (h *AdminHandler) List(ctx *ginx.Context, req PageReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.FindByID(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Product{
		ID:       req.Product.Id,
		Name:     req.Product.Name,
		Desc:     req.Product.Desc,
		Category: req.Product.Category,
		Image:    req.Product.Image,
		Price:    req.Product.Price,
		Stock:    req.Product.Stock,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Publish(ctx, req.Id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) TakeDown(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.TakeDown(ctx, req.Id); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SetStock(ctx *ginx.Context, req StockReq) (ginx.Result, error) {
	if err := h.svc.SetStock(ctx, req.Id, req.Stock); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
