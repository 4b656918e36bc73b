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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/order"
	"github.com/velours/boutique/internal/search/internal/domain"
	"github.com/velours/boutique/internal/search/internal/service"
)

type AdminHandler struct {
	svc service.SearchService
}

func NewAdminHandler(svc service.SearchService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/search", ginx.B[SearchReq](h.Search))
}

func (h *AdminHandler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	if req.Keywords == "" {
		return systemErrorResult, fmt.Errorf("关键字为空")
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	res, err := h.svc.Search(ctx, req.Offset, req.Limit, req.Keywords)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchResp{
			Orders: slice.Map(res.Orders, func(idx int, src domain.OrderDoc) Order {
				return Order{
					ID:          src.ID,
					SN:          src.SN,
					BuyerID:     src.BuyerID,
					BuyerEmail:  src.BuyerEmail,
					Status:      src.Status,
					StatusLabel: order.Status(src.Status).Label(),
				}
			}),
			Products: slice.Map(res.Products, func(idx int, src domain.ProductDoc) Product {
				return Product{
					ID:       src.ID,
					SN:       src.SN,
					Name:     src.Name,
					Desc:     src.Desc,
					Category: src.Category,
					Price:    src.Price,
					Status:   src.Status,
				}
			}),
		},
	}, nil
}
