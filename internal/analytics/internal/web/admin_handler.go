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

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/analytics/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: 505001,
	Msg:  "系统错误",
}

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/analytics")
	g.POST("/summary", ginx.B[SummaryReq](h.Summary))
}

type SummaryReq struct {
	// From, To 毫秒时间戳, 左闭右开
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

func (h *AdminHandler) Summary(ctx *ginx.Context, req SummaryReq) (ginx.Result, error) {
	if req.From >= req.To {
		return systemErrorResult, fmt.Errorf("时间区间非法: [%d, %d)", req.From, req.To)
	}
	summary, err := h.svc.Summary(ctx, req.From, req.To)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: summary}, nil
}
