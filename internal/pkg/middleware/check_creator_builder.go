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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckCreatorMiddlewareBuilder 校验后台权限.
// 运营人员在登录时拿到 creator 标记, 普通买家没有
type CheckCreatorMiddlewareBuilder struct {
	logger *elog.Component
	sp     session.Provider
}

func NewCheckCreatorMiddlewareBuilder() *CheckCreatorMiddlewareBuilder {
	return &CheckCreatorMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckCreatorMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusInternalServerError)
			c.logger.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("creator").StringOrDefault("") != "true" {
			gctx.AbortWithStatus(http.StatusInternalServerError)
			c.logger.Error("非法访问 admin 接口, 没有 creator 标记",
				elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
