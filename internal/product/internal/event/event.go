package event

const ProductEventName = "product_events"

// ProductEvent 商品有变动就发一条, 搜索同步消费
type ProductEvent struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Status   uint8  `json:"status"`
}
