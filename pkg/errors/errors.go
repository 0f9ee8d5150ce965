package errors

import (
	"errors"
	"fmt"
	"polyscope/pkg/errors/ecode"
)

// 携带业务错误码的错误，Message是可以直接返回给调用方的提示信息
type withCode struct {
	code    int
	message string
	cause   error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s: %v", w.message, w.cause)
	}
	return w.message
}

func (w *withCode) Unwrap() error {
	return w.cause
}

// New 与标准库errors.New一致
func New(text string) error {
	return errors.New(text)
}

// Is 与标准库errors.Is一致
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As 与标准库errors.As一致
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// WithCode 创建一个带错误码的错误
func WithCode(code int, message string) error {
	return &withCode{code: code, message: message}
}

// Wrap 包装底层错误，对外只暴露message，底层错误只用于日志
func Wrap(err error, code int, message string) error {
	if err == nil {
		return nil
	}
	return &withCode{code: code, message: message, cause: err}
}

// Cause 返回被包装的底层错误
func Cause(err error) error {
	var w *withCode
	if errors.As(err, &w) && w.cause != nil {
		return w.cause
	}
	return err
}

// Code 返回错误码，非业务错误返回ecode.Unknown
func Code(err error) int {
	if err == nil {
		return ecode.Success
	}
	var w *withCode
	if errors.As(err, &w) {
		return w.code
	}
	return ecode.Unknown
}

// DecodeErr 解析出错误码和提示信息
// 非业务错误不向外暴露内部细节
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, "success"
	}
	var w *withCode
	if errors.As(err, &w) {
		return w.code, w.message
	}
	return ecode.Unknown, "unknown error"
}
