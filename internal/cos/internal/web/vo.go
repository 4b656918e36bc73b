package web

import (
	"github.com/ecodeclub/ginx"

	"github.com/velours/boutique/internal/cos/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type TmpAuthCodeReq struct {
	// Key 上传对象的路径, 比如 products/rouge-velours.jpg
	Key string `json:"key"`
	// Type 内容类型, 比如 image/jpeg
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
}
