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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/product/internal/domain"
	"github.com/velours/boutique/internal/product/internal/service"
)

// Handler 店面的商品接口, 无需登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	products := server.Group("/products")
	products.POST("/list", ginx.B[ListReq](h.List))
	products.POST("/detail", ginx.B[SNReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

type ListReq struct {
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type SNReq struct {
	SN string `json:"sn"`
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListOnShelf(ctx, req.Category, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				vo := newProduct(src)
				// 店面不暴露库存和状态
				vo.Stock = 0
				vo.Status = 0
				return vo
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq) (ginx.Result, error) {
	p, err := h.svc.FindBySN(ctx, req.SN)
	if err != nil {
		return systemErrorResult, err
	}
	vo := newProduct(p)
	vo.Stock = 0
	vo.Status = 0
	return ginx.Result{Data: vo}, nil
}
