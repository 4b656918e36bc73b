package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const ProductIndexName = "product_index"

type Product struct {
	Id       int64  `json:"id"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}

type ProductElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewProductElasticDAO(client *elastic.Client) *ProductElasticDAO {
	return &ProductElasticDAO{client: client, index: ProductIndexName}
}

func (d *ProductElasticDAO) Search(ctx context.Context, offset, limit int, keywords string) ([]Product, error) {
	query := elastic.NewBoolQuery().Should(
		elastic.NewTermQuery("sn.keyword", keywords),
		elastic.NewMatchQuery("name", keywords),
		elastic.NewMatchQuery("desc", keywords),
		elastic.NewMatchQuery("category", keywords))
	resp, err := d.client.Search(d.index).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Product, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Product
		if err := json.Unmarshal(hit.Source, &ele); err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
