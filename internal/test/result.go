package test

// Result 和 ginx.Result 同构, 测试里用来反序列化响应
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
