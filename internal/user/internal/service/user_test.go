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

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/event"
	"github.com/velours/boutique/internal/user/internal/repository/dao"
)

type fakeRepo struct {
	nextID int64
	users  map[int64]domain.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]domain.User)}
}

func (f *fakeRepo) Create(_ context.Context, u domain.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, dao.ErrUserDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeRepo) Update(_ context.Context, u domain.User) error {
	old, ok := f.users[u.ID]
	if !ok {
		return dao.ErrDataNotFound
	}
	// 只更新非零字段
	if u.Nickname != "" {
		old.Nickname = u.Nickname
	}
	if u.Phone != "" {
		old.Phone = u.Phone
	}
	if u.Avatar != "" {
		old.Avatar = u.Avatar
	}
	if u.Email != "" {
		old.Email = u.Email
	}
	if u.Password != "" {
		old.Password = u.Password
	}
	if (u.DefaultAddress != domain.Address{}) {
		old.DefaultAddress = u.DefaultAddress
	}
	f.users[u.ID] = old
	return nil
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, dao.ErrDataNotFound
}

func (f *fakeRepo) FindById(_ context.Context, id int64) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, dao.ErrDataNotFound
	}
	return u, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	var res []domain.User
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, nil
}

func (f *fakeRepo) Total(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func newTestService(t *testing.T) (UserService, *fakeRepo, func(t *testing.T) event.RegistrationEvent) {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.RegistrationEventName, 1))
	producer, err := event.NewRegistrationEventProducer(q)
	require.NoError(t, err)
	consumer, err := q.Consumer(event.RegistrationEventName, "test")
	require.NoError(t, err)

	repo := newFakeRepo()
	svc := NewUserService(repo, producer)

	nextEvent := func(t *testing.T) event.RegistrationEvent {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		msg, err := consumer.Consume(ctx)
		require.NoError(t, err)
		var evt event.RegistrationEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		return evt
	}
	return svc, repo, nextEvent
}

func TestUserService_Register(t *testing.T) {
	svc, repo, nextEvent := newTestService(t)

	u, err := svc.Register(context.Background(), "camille@example.fr", "motdepasse123")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	// 密码落库是 bcrypt 哈希
	stored := repo.users[u.ID]
	assert.NotEqual(t, "motdepasse123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("motdepasse123")))

	// 注册事件
	evt := nextEvent(t)
	assert.Equal(t, u.ID, evt.Uid)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), "camille@example.fr", "motdepasse123")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "camille@example.fr", "autremotdepasse")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserService_Login(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Register(context.Background(), "camille@example.fr", "motdepasse123")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "登录成功",
			email:    "camille@example.fr",
			password: "motdepasse123",
		},
		{
			name:     "密码错误",
			email:    "camille@example.fr",
			password: "mauvais",
			wantErr:  ErrInvalidUserOrPassword,
		},
		{
			name:     "邮箱不存在",
			email:    "inconnu@example.fr",
			password: "motdepasse123",
			wantErr:  ErrInvalidUserOrPassword,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.email, u.Email)
		})
	}
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	svc, repo, _ := newTestService(t)
	u, err := svc.Register(context.Background(), "camille@example.fr", "motdepasse123")
	require.NoError(t, err)
	oldPassword := repo.users[u.ID].Password

	err = svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		ID:       u.ID,
		Nickname: "Camille",
		Email:    "pirate@example.fr",
		Password: "piraté",
		DefaultAddress: domain.Address{
			Street: "12 rue des Lilas", City: "Lyon", PostalCode: "69003", Country: "France",
		},
	})
	require.NoError(t, err)

	stored := repo.users[u.ID]
	assert.Equal(t, "Camille", stored.Nickname)
	assert.Equal(t, "Lyon", stored.DefaultAddress.City)
	// 邮箱和密码不走这条路
	assert.Equal(t, "camille@example.fr", stored.Email)
	assert.Equal(t, oldPassword, stored.Password)
}
