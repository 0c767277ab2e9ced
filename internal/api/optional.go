package api

import (
	"bytes"
	"encoding/json"
	"time"
)

// Optional 區分欄位未出現、明確為 null、有值三種情況
type Optional[T any] struct {
	Set   bool
	Value *T
}

type OptionalTime = Optional[time.Time]

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Clear 回傳是否明確要求清空
func (o Optional[T]) Clear() bool {
	return o.Set && o.Value == nil
}

// Underlying 給 validator 檢查實際值；以指標回傳，零值也會套用規則
func (o Optional[T]) Underlying() any {
	return o.Value
}
