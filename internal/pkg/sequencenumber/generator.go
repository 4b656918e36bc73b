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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// TimestampFunc 生成时间戳
type TimestampFunc func(time.Time) int64

// UUIDFunc 生成随机后缀
type UUIDFunc func() string

// Generator 生成对外暴露的序列号, 订单和商品都用它, 通过前缀区分
// 序列号是不透明标识, 不暴露自增主键
type Generator struct {
	prefix        string
	timestampFunc TimestampFunc
	uuidFunc      UUIDFunc
}

func NewGeneratorWith(prefix string, timestampFunc TimestampFunc, uuidFunc UUIDFunc) *Generator {
	return &Generator{
		prefix:        prefix,
		timestampFunc: timestampFunc,
		uuidFunc:      uuidFunc,
	}
}

func NewGenerator(prefix string) *Generator {
	return NewGeneratorWith(prefix,
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate 前缀 + 毫秒时间戳 + 所有者ID后四位 + shortuuid 凑足位数, 前缀后固定 32 位
func (g *Generator) Generate(ownerID int64) (string, error) {
	timestamp := g.timestampFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", ownerID%10000)
	body := fmt.Sprintf("%d%s%s", timestamp, lastFour, g.uuidFunc())
	return g.prefix + body[:32], nil
}
