package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/velours/boutique/internal/email"
)

// DirectMailService 阿里云邮件推送实现, 店铺给顾客发订单状态通知走这里
type DirectMailService struct {
	client      *dm20151123.Client
	accountName string
}

// NewDirectMailService 创建阿里云邮件推送客户端
// accountName 为控制台配置的发信地址, 例如 commandes@mail.velours-cosmetiques.fr
func NewDirectMailService(accessKeyID, accessKeySecret, accountName string) (*DirectMailService, error) {
	cfg := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	cred, err := credential.NewCredential(cfg)
	if err != nil {
		return nil, fmt.Errorf("创建凭证失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建DirectMail客户端失败: %w", err)
	}
	return &DirectMailService{
		client:      client,
		accountName: accountName,
	}, nil
}

// SendMail 实现 email.Service
func (s *DirectMailService) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName:    tea.String(s.accountName),
		FromAlias:      tea.String(mail.From),
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := s.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return s.translateError(err)
	}
	return nil
}

func (s *DirectMailService) translateError(err error) error {
	sdkError := new(tea.SDKError)
	if !errors.As(err, &sdkError) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var data map[string]any
		decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
		if decodeErr := decoder.Decode(&data); decodeErr == nil {
			if requestID, ok := data["RequestId"]; ok {
				msg += fmt.Sprintf(" | RequestId: %v", requestID)
			}
		}
	}
	return errors.New(msg)
}
