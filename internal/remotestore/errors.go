package remotestore

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Kind 是远端表存储错误的分类。
// 调用方只依赖分类做回落决策，不再各自嗅探错误文本。
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindSchemaMissing
	KindAuthInvalid
)

// Error 携带分类的存储层错误。
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// wrap 把底层驱动错误包成带分类的 *Error。
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

// classify 在存储层边界上做一次性分类；文本匹配只允许出现在这里。
func classify(err error) Kind {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "does not exist"), strings.Contains(msg, "no such table"):
		return KindSchemaMissing
	case strings.Contains(msg, "permission denied"), strings.Contains(msg, "authentication failed"):
		return KindAuthInvalid
	}
	return KindUnknown
}

// KindOf 返回错误的分类，非存储层错误归为 Unknown。
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsNotFound 判断错误是否为"行不存在"。
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsSchemaMissing 判断错误是否为"表未建好"，上层据此提示建表而不是重试。
func IsSchemaMissing(err error) bool { return KindOf(err) == KindSchemaMissing }
