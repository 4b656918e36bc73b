package event

const OrderStatusEventName = "order_status_events"

// OrderStatusEvent 一组订单完成一次状态变更就发一条
type OrderStatusEvent struct {
	OrderIDs []int64  `json:"orderIDs"`
	SNs      []string `json:"sns"`
	BuyerID  int64    `json:"buyerID"`
	// BuyerEmail 给搜索同步用, 拿不到时为空
	BuyerEmail string `json:"buyerEmail"`
	Status     uint8  `json:"status"`
}
