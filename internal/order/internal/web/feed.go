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
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"

	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/service"
)

// FeedHandler 管理端的订单实时看板.
// 每次订单变更都推送完整的聚合快照, 前端整体替换, 不做增量
type FeedHandler struct {
	svc      service.Service
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	logger   *elog.Component
}

func NewFeedHandler(svc service.Service) *FeedHandler {
	return &FeedHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// 管理端和接口不同源
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
		logger:  elog.DefaultLogger,
	}
}

func (h *FeedHandler) PrivateRoutes(server *gin.Engine) {
	server.GET("/order/feed", h.Feed)
}

func (h *FeedHandler) Feed(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("升级websocket失败", elog.FieldErr(err))
		return
	}

	// 新连接先拿一份当前快照
	groups, total, err := h.svc.ListGroups(ctx.Request.Context(), 0, snapshotLimit)
	if err != nil {
		h.logger.Error("读取订单快照失败", elog.FieldErr(err))
		_ = conn.Close()
		return
	}
	if err := conn.WriteJSON(h.toSnapshot(groups, total)); err != nil {
		_ = conn.Close()
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// 只推不收, 读循环只用来发现断连
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

const snapshotLimit = 200

type Snapshot struct {
	Total  int64        `json:"total"`
	Groups []OrderGroup `json:"groups"`
}

// Publish 向所有在线的管理端推送完整快照
func (h *FeedHandler) Publish(groups []domain.OrderGroup, total int64) {
	data, err := json.Marshal(h.toSnapshot(groups, total))
	if err != nil {
		h.logger.Error("序列化订单快照失败", elog.FieldErr(err))
		return
	}
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.drop(conn)
		}
	}
}

func (h *FeedHandler) toSnapshot(groups []domain.OrderGroup, total int64) Snapshot {
	return Snapshot{
		Total: total,
		Groups: slice.Map(groups, func(idx int, src domain.OrderGroup) OrderGroup {
			return toGroupVO(src)
		}),
	}
}

func (h *FeedHandler) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}
