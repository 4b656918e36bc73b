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

//go:build e2e

package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/velours/boutique/internal/product"
	"github.com/velours/boutique/internal/product/internal/repository/dao"
	"github.com/velours/boutique/internal/product/internal/web"
	"github.com/velours/boutique/internal/test"
	testioc "github.com/velours/boutique/internal/test/ioc"
)

const uid = int64(2051)

type AdminHandlerTestSuite struct {
	suite.Suite
	admin *egin.Component
	store *egin.Component
	db    *egorm.Component
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := product.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	admin := egin.Load("server").Build()
	admin.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"creator": "true"},
		}))
	})
	m.AdminHdl.PrivateRoutes(admin.Engine)
	s.admin = admin

	store := egin.Load("server").Build()
	m.Hdl.PublicRoutes(store.Engine)
	s.store = store
}

func (s *AdminHandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestSave() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/products/save", iox.NewJSONReader(web.SaveReq{
			Product: web.Product{
				Name:     "Rouge Velours",
				Desc:     "Rouge à lèvres longue tenue",
				Category: "maquillage",
				Price:    1500,
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)

	var p dao.Product
	require.NoError(t, s.db.Where("id = ?", id).First(&p).Error)
	// 新商品默认下架, 序列号由服务端生成
	assert.True(t, strings.HasPrefix(p.SN, "PRD"))
	assert.Equal(t, uint8(1), p.Status)
	assert.Equal(t, int64(1500), p.Price)
	assert.True(t, p.Ctime > 0)
}

func (s *AdminHandlerTestSuite) TestPublishTakeDown() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Product{
		Id: 10, SN: "PRD10", Name: "Crème Douce", Category: "soin",
		Price: 2400, Stock: 5, Status: 1,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/products/publish", iox.NewJSONReader(web.IdReq{Id: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	var p dao.Product
	require.NoError(t, s.db.Where("id = ?", 10).First(&p).Error)
	assert.Equal(t, uint8(2), p.Status)

	req, err = http.NewRequest(http.MethodPost,
		"/products/take-down", iox.NewJSONReader(web.IdReq{Id: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	require.NoError(t, s.db.Where("id = ?", 10).First(&p).Error)
	assert.Equal(t, uint8(1), p.Status)
}

func (s *AdminHandlerTestSuite) TestSetStock() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Product{
		Id: 11, SN: "PRD11", Name: "Parfum Nuit", Category: "parfum",
		Price: 8900, Stock: 2, Status: 2,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/products/stock", iox.NewJSONReader(web.StockReq{Id: 11, Stock: 50}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	var p dao.Product
	require.NoError(t, s.db.Where("id = ?", 11).First(&p).Error)
	assert.Equal(t, int64(50), p.Stock)
}

// 店面列表只露上架商品, 且不暴露库存和状态
func (s *AdminHandlerTestSuite) TestStorefrontList() {
	t := s.T()
	require.NoError(t, s.db.Create(&[]dao.Product{
		{Id: 20, SN: "PRD20", Name: "Rouge Velours", Category: "maquillage",
			Price: 1500, Stock: 5, Status: 2, Ctime: 100},
		{Id: 21, SN: "PRD21", Name: "Masque Secret", Category: "soin",
			Price: 3200, Stock: 3, Status: 1, Ctime: 200},
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/products/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ProductList]()
	s.store.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan().Data
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "PRD20", res.Products[0].SN)
	assert.Zero(t, res.Products[0].Stock)
	assert.Zero(t, res.Products[0].Status)
}

func (s *AdminHandlerTestSuite) TestStorefrontDetail() {
	t := s.T()
	require.NoError(t, s.db.Create(&[]dao.Product{
		{Id: 30, SN: "PRD30", Name: "Rouge Velours", Category: "maquillage",
			Price: 1500, Stock: 5, Status: 2},
		{Id: 31, SN: "PRD31", Name: "Masque Secret", Category: "soin",
			Price: 3200, Stock: 3, Status: 1},
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/products/detail", iox.NewJSONReader(web.SNReq{SN: "PRD30"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Product]()
	s.store.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "Rouge Velours", recorder.MustScan().Data.Name)

	// 下架商品在店面不可见
	req, err = http.NewRequest(http.MethodPost,
		"/products/detail", iox.NewJSONReader(web.SNReq{SN: "PRD31"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Product]()
	s.store.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
