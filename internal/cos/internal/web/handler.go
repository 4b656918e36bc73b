// Copyright 2024 velours
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

// Handler 给管理端发对象存储的临时密钥, 商品图片走前端直传
type Handler struct {
	client *sts.Client
	// 临时密钥的权限
	actions []string

	appID  string
	bucket string
	region string
}

func NewHandler(secretID, secretKey, appid, bucket,
	region string) *Handler {
	c := sts.NewClient(
		secretID,
		secretKey,
		http.DefaultClient,
	)
	return &Handler{client: c,
		region: region,
		appID:  appid,
		bucket: bucket,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/authorization", ginx.B(h.TempAuthCode))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {
}

func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq) (ginx.Result, error) {
	// 只放行商品图片目录, 不发整桶的通配权限
	if !strings.HasPrefix(req.Key, "products/") || strings.Contains(req.Key, "..") {
		return systemErrorResult, fmt.Errorf("非法的上传路径: %s", req.Key)
	}
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.region, h.appID,
		h.bucket, h.appID, req.Key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
					},
				},
			},
		},
	}

	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
		},
	}, nil
}
