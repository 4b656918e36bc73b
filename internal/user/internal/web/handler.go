package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"

	"github.com/velours/boutique/internal/user/internal/domain"
	"github.com/velours/boutique/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
	// creators 后台管理员的邮箱白名单
	creators []string
}

func NewHandler(svc service.UserService, creators []string) *Handler {
	return &Handler{svc: svc, creators: creators}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/logout", ginx.S(h.Logout))
}

type RegisterReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if req.Password != req.ConfirmPassword {
		return ginx.Result{
			Code: 400001,
			Msg:  "两次密码输入不一致",
		}, nil
	}
	u, err := h.svc.Register(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrDuplicateEmail) {
		return duplicateEmailResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册即登录
	if err := h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return invalidCredentialsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if err := h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

// newSession 管理员账号在 jwt 里带上 creator 标记, 后台鉴权靠它
func (h *Handler) newSession(ctx *ginx.Context, u domain.User) error {
	builder := session.NewSessionBuilder(ctx, u.ID)
	if slice.Contains(h.creators, u.Email) {
		builder = builder.SetJwtData(map[string]string{"creator": "true"})
	}
	_, err := builder.Build()
	return err
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

type EditReq struct {
	Nickname       string  `json:"nickname"`
	Phone          string  `json:"phone"`
	Avatar         string  `json:"avatar"`
	DefaultAddress Address `json:"defaultAddress"`
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		ID:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Phone:    req.Phone,
		Avatar:   req.Avatar,
		DefaultAddress: domain.Address{
			Street:     req.DefaultAddress.Street,
			City:       req.DefaultAddress.City,
			PostalCode: req.DefaultAddress.PostalCode,
			Country:    req.DefaultAddress.Country,
		},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
