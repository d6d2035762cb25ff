// Package optional 區分 JSON 請求中「沒有提供」與「提供了 null」的欄位。
package optional

import (
	"bytes"
	"encoding/json"
)

// Value 表示一個可能缺席的欄位
// Set 為 true 代表請求中出現了這個鍵，此時 Value 為 nil 代表 null
type Value[T any] struct {
	Set   bool
	Value *T
}

// Of 返回一個已設定的值
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Value: &v}
}

// Null 返回一個已設定但為 null 的值
func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// Or 在欄位缺席時返回 fallback，否則返回請求中的值
func (v Value[T]) Or(fallback *T) *T {
	if !v.Set {
		return fallback
	}
	return v.Value
}

// UnmarshalJSON 只有在鍵存在時才會被呼叫，包括值為 null 的情況
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Value = nil
		return nil
	}

	var inner T
	if err := json.Unmarshal(data, &inner); err != nil {
		return err
	}
	v.Value = &inner
	return nil
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Set || v.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*v.Value)
}
