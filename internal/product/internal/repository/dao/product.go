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

	"github.com/velours/boutique/internal/product/internal/domain"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	FindBySN(ctx context.Context, sn string) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	// FindOnShelf 只返回上架商品
	FindOnShelf(ctx context.Context, category string, offset, limit int) ([]Product, error)
	CountOnShelf(ctx context.Context, category string) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Product) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	UpdateStock(ctx context.Context, id int64, stock int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) FindOnShelf(ctx context.Context, category string, offset, limit int) ([]Product, error) {
	var res []Product
	query := d.db.WithContext(ctx).Where("status = ?", domain.StatusOnShelf.ToUint8())
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountOnShelf(ctx context.Context, category string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8())
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Order("ctime DESC").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	p.Ctime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "image", "price", "utime"}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *ProductGORMDAO) UpdateStock(ctx context.Context, id int64, stock int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": stock,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{})
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Category    string `gorm:"type:varchar(128);not null;index:idx_product_category;comment:产品线"`
	Image       string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99"`
	Stock       int64  `gorm:"not null;comment:库存数量"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}
