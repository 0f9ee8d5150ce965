package types

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Value 上游返回的标量字段，数字、字符串、null都能接收
// Data API 同一个字段有时是数字有时是字符串，统一按文本保存，由调用方做数值转换
type Value struct {
	raw   string
	valid bool
}

// NewValue 主要用于测试构造数据
func NewValue(s string) Value {
	return Value{raw: s, valid: true}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{raw: s, valid: true}
		return nil
	}
	// 数字、布尔、对象等原样保留，非数字内容在转换时会回落到默认值
	*v = Value{raw: string(data), valid: true}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.raw)
}

// String 原始文本，字段缺失时为空串
func (v Value) String() string {
	return v.raw
}

// IsEmpty 字段缺失、null或者空串
func (v Value) IsEmpty() bool {
	return !v.valid || v.raw == ""
}

// Text 上游的文本字段，类型不对时也不报错，避免整行数据被丢弃
// 数字、布尔按原文保存，对象和数组当作空串
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}
