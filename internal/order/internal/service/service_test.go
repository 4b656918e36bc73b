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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velours/boutique/internal/email"
	"github.com/velours/boutique/internal/order/internal/domain"
	"github.com/velours/boutique/internal/order/internal/event"
	"github.com/velours/boutique/internal/shop"
	"github.com/velours/boutique/internal/user"
)

type fakeRepo struct {
	orders map[int64]domain.Order

	transitionErr error
	// 记录写操作
	transitioned    []int64
	transitionedTo  domain.Status
	stockDeductions map[int64]int64
	markedPending   []int64
	deleted         []int64
}

func newFakeRepo(orders ...domain.Order) *fakeRepo {
	m := make(map[int64]domain.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeRepo{orders: m}
}

func (f *fakeRepo) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = int64(len(f.orders) + 1)
	order.TotalAmount = order.ComputeTotal()
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeRepo) Update(_ context.Context, order domain.Order) error {
	order.TotalAmount = order.ComputeTotal()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _, id int64) error {
	delete(f.orders, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) DeleteByID(_ context.Context, id int64) error {
	delete(f.orders, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, errors.New("订单不存在")
	}
	return o, nil
}

func (f *fakeRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := f.orders[id]; ok {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepo) FindBySNAndBuyerID(_ context.Context, sn string, buyerID int64) (domain.Order, error) {
	for _, o := range f.orders {
		if o.SN == sn && o.BuyerID == buyerID {
			return o, nil
		}
	}
	return domain.Order{}, errors.New("订单不存在")
}

func (f *fakeRepo) ListByBuyerID(_ context.Context, buyerID int64, _, _ int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status != domain.StatusCart {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepo) TotalByBuyerID(_ context.Context, buyerID int64) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status != domain.StatusCart {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.Status != domain.StatusCart {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepo) Total(_ context.Context) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.Status != domain.StatusCart {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CartOrders(_ context.Context, buyerID int64) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.BuyerID == buyerID && o.Status == domain.StatusCart {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepo) MarkPending(_ context.Context, ids []int64, _ domain.Address) error {
	for _, id := range ids {
		o := f.orders[id]
		o.Status = domain.StatusPending
		f.orders[id] = o
	}
	f.markedPending = append(f.markedPending, ids...)
	return nil
}

func (f *fakeRepo) Transition(_ context.Context, ids []int64, status domain.Status) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	for _, id := range ids {
		o := f.orders[id]
		o.Status = status
		f.orders[id] = o
	}
	f.transitioned = append(f.transitioned, ids...)
	f.transitionedTo = status
	return nil
}

func (f *fakeRepo) TransitionWithStock(ctx context.Context, ids []int64, status domain.Status, deductions map[int64]int64) error {
	if f.transitionErr != nil {
		return f.transitionErr
	}
	f.stockDeductions = deductions
	return f.Transition(ctx, ids, status)
}

func (f *fakeRepo) ListStaleCarts(_ context.Context, before int64, _ int) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range f.orders {
		if o.Status == domain.StatusCart && o.Utime < before {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(f.orders, id)
	}
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeShopSvc struct {
	err error
}

func (f *fakeShopSvc) Info(_ context.Context) (shop.Shop, error) {
	if f.err != nil {
		return shop.Shop{}, f.err
	}
	return shop.Shop{
		Name:  "Velours Cosmétiques",
		Email: "commandes@mail.velours-cosmetiques.fr",
	}, nil
}

func (f *fakeShopSvc) Save(_ context.Context, _ shop.Shop) error {
	return nil
}

type fakeUserSvc struct {
	err   error
	users map[int64]user.User
}

func (f *fakeUserSvc) Register(_ context.Context, _, _ string) (user.User, error) {
	return user.User{}, errors.New("未实现")
}

func (f *fakeUserSvc) Login(_ context.Context, _, _ string) (user.User, error) {
	return user.User{}, errors.New("未实现")
}

func (f *fakeUserSvc) Profile(_ context.Context, id int64) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, errors.New("用户不存在")
}

func (f *fakeUserSvc) UpdateNonSensitiveInfo(_ context.Context, _ user.User) error {
	return nil
}

func (f *fakeUserSvc) List(_ context.Context, _, _ int) ([]user.User, int64, error) {
	return nil, 0, nil
}

type fakeEmailSvc struct {
	err   error
	mails []email.Mail
}

func (f *fakeEmailSvc) SendMail(_ context.Context, mail email.Mail) error {
	if f.err != nil {
		return f.err
	}
	f.mails = append(f.mails, mail)
	return nil
}

type fakeProducer struct {
	err    error
	events []event.OrderStatusEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderStatusEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func newTestService(repo *fakeRepo) (Service, *fakeEmailSvc, *fakeProducer) {
	emailSvc := &fakeEmailSvc{}
	producer := &fakeProducer{}
	userSvc := &fakeUserSvc{users: map[int64]user.User{
		7: {ID: 7, Email: "camille@example.fr", Nickname: "Camille"},
	}}
	svc := NewService(repo, &fakeShopSvc{}, userSvc, emailSvc, producer)
	return svc, emailSvc, producer
}

func pendingOrders() []domain.Order {
	return []domain.Order{
		{
			ID: 1, SN: "ORD1", BuyerID: 7, Status: domain.StatusPending,
			Items: []domain.OrderItem{
				{ProductID: 100, Name: "Rouge Velours", Price: 1500, Quantity: 2},
			},
			TotalAmount: 3000,
		},
		{
			ID: 2, SN: "ORD2", BuyerID: 7, Status: domain.StatusPending,
			Items: []domain.OrderItem{
				{ProductID: 100, Name: "Rouge Velours", Price: 1500, Quantity: 1},
				{ProductID: 200, Name: "Crème Douce", Price: 2400, Quantity: 1},
			},
			TotalAmount: 3900,
		},
	}
}

func TestService_TransitionGroup(t *testing.T) {
	t.Run("整组推进并只发一封邮件", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, emailSvc, producer := newTestService(repo)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusShipped)
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 2}, repo.transitioned)
		assert.Equal(t, domain.StatusShipped, repo.transitionedTo)
		// 两个订单一封邮件
		require.Len(t, emailSvc.mails, 1)
		assert.Equal(t, "camille@example.fr", emailSvc.mails[0].To)
		assert.Contains(t, string(emailSvc.mails[0].Body), "Expédié")
		// 发出一条状态变更事件
		require.Len(t, producer.events, 1)
		assert.Equal(t, []int64{1, 2}, producer.events[0].OrderIDs)
		assert.Equal(t, "camille@example.fr", producer.events[0].BuyerEmail)
		assert.Equal(t, domain.StatusShipped.ToUint8(), producer.events[0].Status)
	})

	t.Run("进入处理中时扣减库存", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, _, _ := newTestService(repo)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusProcessing)
		require.NoError(t, err)

		// 同一商品跨订单汇总
		assert.Equal(t, map[int64]int64{100: 3, 200: 1}, repo.stockDeductions)
		assert.Equal(t, domain.StatusProcessing, repo.transitionedTo)
	})

	t.Run("店铺信息缺失中止且不落任何写", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		emailSvc := &fakeEmailSvc{}
		producer := &fakeProducer{}
		svc := NewService(repo, &fakeShopSvc{err: errors.New("没配置")},
			&fakeUserSvc{users: map[int64]user.User{7: {ID: 7, Email: "camille@example.fr"}}},
			emailSvc, producer)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusShipped)
		require.Error(t, err)

		assert.Empty(t, repo.transitioned)
		assert.Empty(t, emailSvc.mails)
		assert.Empty(t, producer.events)
		// 状态原样
		o, _ := repo.FindByID(context.Background(), 1)
		assert.Equal(t, domain.StatusPending, o.Status)
	})

	t.Run("客户信息缺失中止且不落任何写", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		emailSvc := &fakeEmailSvc{}
		producer := &fakeProducer{}
		svc := NewService(repo, &fakeShopSvc{},
			&fakeUserSvc{err: errors.New("查库失败")}, emailSvc, producer)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusShipped)
		require.Error(t, err)

		assert.Empty(t, repo.transitioned)
		assert.Empty(t, emailSvc.mails)
		assert.Empty(t, producer.events)
	})

	t.Run("状态写入失败不发邮件不发事件", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		repo.transitionErr = errors.New("数据库挂了")
		svc, emailSvc, producer := newTestService(repo)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusShipped)
		require.Error(t, err)

		assert.Empty(t, emailSvc.mails)
		assert.Empty(t, producer.events)
	})

	t.Run("邮件失败不影响状态变更", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		producer := &fakeProducer{}
		emailSvc := &fakeEmailSvc{err: errors.New("SMTP 超时")}
		svc := NewService(repo, &fakeShopSvc{},
			&fakeUserSvc{users: map[int64]user.User{7: {ID: 7, Email: "camille@example.fr"}}},
			emailSvc, producer)

		err := svc.TransitionGroup(context.Background(), []int64{1, 2}, domain.StatusDelivered)
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 2}, repo.transitioned)
		require.Len(t, producer.events, 1)
	})

	t.Run("目标状态非法", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, _, _ := newTestService(repo)

		assert.Error(t, svc.TransitionGroup(context.Background(), []int64{1}, domain.StatusCart))
		assert.Error(t, svc.TransitionGroup(context.Background(), []int64{1}, domain.Status(9)))
		assert.Error(t, svc.TransitionGroup(context.Background(), nil, domain.StatusShipped))
	})

	t.Run("部分订单不存在", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, emailSvc, _ := newTestService(repo)

		err := svc.TransitionGroup(context.Background(), []int64{1, 999}, domain.StatusShipped)
		require.Error(t, err)
		assert.Empty(t, repo.transitioned)
		assert.Empty(t, emailSvc.mails)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Run("待处理订单可以取消", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, _, producer := newTestService(repo)

		err := svc.CancelOrder(context.Background(), 7, 1)
		require.NoError(t, err)

		o, _ := repo.FindByID(context.Background(), 1)
		assert.Equal(t, domain.StatusCanceled, o.Status)
		require.Len(t, producer.events, 1)
	})

	t.Run("别人的订单不能取消", func(t *testing.T) {
		repo := newFakeRepo(pendingOrders()...)
		svc, _, _ := newTestService(repo)

		err := svc.CancelOrder(context.Background(), 8, 1)
		require.Error(t, err)
		o, _ := repo.FindByID(context.Background(), 1)
		assert.Equal(t, domain.StatusPending, o.Status)
	})

	t.Run("已发货的订单不能取消", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: 3, BuyerID: 7, Status: domain.StatusShipped})
		svc, _, _ := newTestService(repo)

		err := svc.CancelOrder(context.Background(), 7, 3)
		require.Error(t, err)
	})
}

func TestService_UpdateOrder(t *testing.T) {
	t.Run("清空商品即删除订单", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{
			ID: 1, BuyerID: 7, Status: domain.StatusCart,
			Items: []domain.OrderItem{{ProductID: 100, Price: 1500, Quantity: 1}},
		})
		svc, _, _ := newTestService(repo)

		err := svc.UpdateOrder(context.Background(), domain.Order{ID: 1, BuyerID: 7})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.deleted)
		_, err = repo.FindByID(context.Background(), 1)
		assert.Error(t, err)
	})

	t.Run("没有商品的订单不能创建", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _, _ := newTestService(repo)
		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 7})
		require.Error(t, err)
	})
}

func TestService_Checkout(t *testing.T) {
	t.Run("购物车订单整体转待处理", func(t *testing.T) {
		repo := newFakeRepo(
			domain.Order{ID: 1, SN: "CMD1", BuyerID: 7, Status: domain.StatusCart,
				Items: []domain.OrderItem{{ProductID: 100, Price: 1500, Quantity: 1}}},
			domain.Order{ID: 2, SN: "CMD2", BuyerID: 7, Status: domain.StatusCart,
				Items: []domain.OrderItem{{ProductID: 200, Price: 2400, Quantity: 2}}},
			domain.Order{ID: 3, SN: "ORD3", BuyerID: 8, Status: domain.StatusCart},
		)
		svc, _, producer := newTestService(repo)

		err := svc.Checkout(context.Background(), 7, domain.Address{
			Street: "12 rue des Lilas", City: "Lyon", PostalCode: "69003", Country: "France",
		})
		require.NoError(t, err)

		assert.ElementsMatch(t, []int64{1, 2}, repo.markedPending)
		o1, _ := repo.FindByID(context.Background(), 1)
		assert.Equal(t, domain.StatusPending, o1.Status)
		// 别的买家的购物车不受影响
		o3, _ := repo.FindByID(context.Background(), 3)
		assert.Equal(t, domain.StatusCart, o3.Status)
		require.Len(t, producer.events, 1)
		assert.Equal(t, domain.StatusPending.ToUint8(), producer.events[0].Status)
		assert.Equal(t, "camille@example.fr", producer.events[0].BuyerEmail)
	})

	t.Run("空购物车不能结账", func(t *testing.T) {
		repo := newFakeRepo()
		svc, _, _ := newTestService(repo)
		err := svc.Checkout(context.Background(), 7, domain.Address{})
		require.Error(t, err)
	})
}
