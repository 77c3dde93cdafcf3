package response

import "fmt"

// 业务错误码
const (
	CodeValidation        = 400 // 参数缺失或越界
	CodeNotFound          = 404 // 目标实体不存在
	CodeConflict          = 409 // 重名/重复手机号/重复特价
	CodeInsufficientStock = 410 // 库存不足
	CodeEmptyCart         = 411 // 空购物车结算
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Validationf(format string, args ...any) *BizError {
	return NewError(CodeValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *BizError {
	return NewError(CodeNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) *BizError {
	return NewError(CodeConflict, fmt.Sprintf(format, args...))
}

func InsufficientStockf(format string, args ...any) *BizError {
	return NewError(CodeInsufficientStock, fmt.Sprintf(format, args...))
}

// ErrEmptyCart 空购物车结算
var ErrEmptyCart = NewError(CodeEmptyCart, "购物车为空，无需结算")

func codeOf(err error) int {
	if be, ok := err.(*BizError); ok {
		return be.Code
	}
	return 0
}

func IsValidation(err error) bool        { return codeOf(err) == CodeValidation }
func IsNotFound(err error) bool          { return codeOf(err) == CodeNotFound }
func IsConflict(err error) bool          { return codeOf(err) == CodeConflict }
func IsInsufficientStock(err error) bool { return codeOf(err) == CodeInsufficientStock }
func IsEmptyCart(err error) bool         { return codeOf(err) == CodeEmptyCart }
