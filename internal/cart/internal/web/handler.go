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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/cart/internal/domain"
	"github.com/velours/boutique/internal/cart/internal/service"
	"github.com/velours/boutique/internal/order"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.GET("/detail", ginx.S(h.Cart))
	g.POST("/add", ginx.BS[AddReq](h.Add))
	g.POST("/quantity", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveReq](h.Remove))
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

type AddReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateQuantityReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type RemoveReq struct {
	ProductID int64 `json:"productId"`
}

type CheckoutReq struct {
	RequestID string  `json:"requestID"`
	Address   Address `json:"address"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (h *Handler) Cart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	lines, err := h.svc.Cart(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CartResp{
			Lines: slice.Map(lines, func(idx int, src domain.Line) Line {
				return newLine(src)
			}),
			Total: domain.Total(lines),
		},
	}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req AddReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	if errors.Is(err, service.ErrInsufficientStock) {
		return insufficientStockResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	if errors.Is(err, service.ErrInsufficientStock) {
		return insufficientStockResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req RemoveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx, sess.Claims().Uid, req.ProductID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Checkout(ctx, sess.Claims().Uid, req.RequestID, order.Address{
		Street:     req.Address.Street,
		City:       req.Address.City,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
