package ioc

import (
	"github.com/gotomicro/ego/core/econf"

	"github.com/velours/boutique/internal/cos"
)

func InitCOSHandler() *cos.Handler {
	type Config struct {
		SecretID  string `yaml:"secretID"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appID"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return cos.NewHandler(cfg.SecretID, cfg.SecretKey, cfg.AppID, cfg.Bucket, cfg.Region)
}
