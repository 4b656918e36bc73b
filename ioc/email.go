package ioc

import (
	"github.com/gotomicro/ego/core/econf"

	"github.com/velours/boutique/internal/email"
	"github.com/velours/boutique/internal/email/aliyun"
)

func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	svc, err := aliyun.NewDirectMailService(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return svc
}
