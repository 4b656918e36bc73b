package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const OrderIndexName = "order_index"

type Order struct {
	Id         int64  `json:"id"`
	SN         string `json:"sn"`
	BuyerId    int64  `json:"buyer_id"`
	BuyerEmail string `json:"buyer_email"`
	Status     uint8  `json:"status"`
}

type OrderElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewOrderElasticDAO(client *elastic.Client) *OrderElasticDAO {
	return &OrderElasticDAO{client: client, index: OrderIndexName}
}

// Search 按订单序列号或买家邮箱找
func (d *OrderElasticDAO) Search(ctx context.Context, offset, limit int, keywords string) ([]Order, error) {
	query := elastic.NewBoolQuery().Should(
		elastic.NewTermQuery("sn.keyword", keywords),
		elastic.NewMatchQuery("sn", keywords),
		elastic.NewMatchQuery("buyer_email", keywords))
	resp, err := d.client.Search(d.index).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Order, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Order
		if err := json.Unmarshal(hit.Source, &ele); err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
