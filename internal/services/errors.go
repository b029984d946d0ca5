package services

import (
	"errors"
	"fmt"
)

// 业务错误哨兵，handlers 里统一翻译成 HTTP 状态码。
// 校验类和冲突类错误原样透传给客户端，不做自动重试。
var (
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrSelfRequest    = errors.New("cannot send a request to yourself")
	ErrAlreadyFriends = errors.New("already friends")
	ErrAlreadyPending = errors.New("request already pending")
	ErrForbidden      = errors.New("forbidden")
)

// validationError 带描述的校验错误，errors.Is(err, ErrValidation) 成立
func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
