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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrShopNotFound = gorm.ErrRecordNotFound

// 店铺信息固定使用这个主键
const shopID = 1

type ShopDAO interface {
	Get(ctx context.Context) (Shop, error)
	Save(ctx context.Context, shop Shop) error
}

type GORMShopDAO struct {
	db *egorm.Component
}

func NewGORMShopDAO(db *egorm.Component) ShopDAO {
	return &GORMShopDAO{db: db}
}

func (d *GORMShopDAO) Get(ctx context.Context) (Shop, error) {
	var res Shop
	err := d.db.WithContext(ctx).Where("id = ?", shopID).First(&res).Error
	return res, err
}

func (d *GORMShopDAO) Save(ctx context.Context, shop Shop) error {
	now := time.Now().UnixMilli()
	shop.Id = shopID
	shop.Utime = now
	shop.Ctime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "phone", "address", "logo", "utime",
		}),
	}).Create(&shop).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Shop{})
}

type Shop struct {
	Id      int64  `gorm:"primaryKey;comment:店铺ID,固定为1"`
	Name    string `gorm:"type:varchar(255);not null;comment:店铺名称"`
	Email   string `gorm:"type:varchar(255);not null;comment:联系邮箱,作为通知邮件发件人"`
	Phone   string `gorm:"type:varchar(32);comment:联系电话"`
	Address string `gorm:"type:varchar(512);comment:店铺地址"`
	Logo    string `gorm:"type:varchar(512);comment:Logo图片,CDN绝对路径"`
	Ctime   int64
	Utime   int64
}
