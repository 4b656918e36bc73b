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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/velours/boutique/internal/user/internal/domain"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrUserDuplicate 邮箱已经注册过
	ErrUserDuplicate = errors.New("用户已经注册")
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{db: db}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me := new(mysql.MySQLError); errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&User{})
}

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:用户自增ID"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_email;comment:登录邮箱"`
	Password string `gorm:"type:varchar(255);not null;comment:bcrypt口令摘要"`
	Nickname string `gorm:"type:varchar(128);comment:昵称"`
	Phone    string `gorm:"type:varchar(32);comment:电话"`
	Avatar   string `gorm:"type:varchar(512);comment:头像,CDN绝对路径"`
	// 默认收货地址, 结构松散所以存JSON
	DefaultAddress sqlx.JsonColumn[domain.Address] `gorm:"type:text;comment:默认收货地址,JSON格式"`
	Ctime          int64
	Utime          int64
}
