package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicateEmail = ErrorCode{Code: 501002, Msg: "邮箱已经注册"}
	InvalidCredentials = ErrorCode{Code: 501003, Msg: "邮箱或密码不正确"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
