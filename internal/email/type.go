package email

import "context"

type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From    string
	To      string
	Subject string
	// Body 为 HTML 内容
	Body []byte
}
