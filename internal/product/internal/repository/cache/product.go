package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"

	"github.com/velours/boutique/internal/product/internal/domain"
)

const expiration = 10 * time.Minute

var ErrProductNotFound = errors.New("商品缓存没找到")

type ProductCache interface {
	SetList(ctx context.Context, category string, products []domain.Product) error
	GetList(ctx context.Context, category string) ([]domain.Product, error)
	// Evict 商品有变动时整个分类的列表都作废
	Evict(ctx context.Context, category string) error
}

type productCache struct {
	ec ecache.Cache
}

func NewProductCache(ec ecache.Cache) ProductCache {
	return &productCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "product:",
		},
	}
}

func (c *productCache) SetList(ctx context.Context, category string, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return errors.Wrap(err, "序列化商品列表失败")
	}
	return c.ec.Set(ctx, c.listKey(category), string(data), expiration)
}

func (c *productCache) GetList(ctx context.Context, category string) ([]domain.Product, error) {
	val := c.ec.Get(ctx, c.listKey(category))
	if val.KeyNotFound() {
		return nil, ErrProductNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var res []domain.Product
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化商品列表失败")
}

func (c *productCache) Evict(ctx context.Context, category string) error {
	_, err := c.ec.Delete(ctx, c.listKey(category))
	return err
}

func (c *productCache) listKey(category string) string {
	return fmt.Sprintf("list:%s", category)
}
