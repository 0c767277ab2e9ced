package database

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeRow 依序把 Values 寫入 Scan 的目標
// nil 值會把目標設為零值；T 可寫入 *T 目標
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(dest, r.Values)
}

// FakeRows 每列資料為 Data 中的一個 []any
type FakeRows struct {
	Data    [][]any
	Error   error
	ScanErr error
	Closed  bool
	idx     int
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) Err() error                                   { return r.Error }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.Closed || r.idx >= len(r.Data) {
		return false
	}
	r.idx++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	if r.idx == 0 {
		return fmt.Errorf("fake rows: Scan called before Next")
	}
	return assign(dest, r.Data[r.idx-1])
}

func (r *FakeRows) Values() ([]any, error) {
	if r.idx == 0 {
		return nil, fmt.Errorf("fake rows: Values called before Next")
	}
	return r.Data[r.idx-1], nil
}

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("fake scan: %d destinations but %d values", len(dest), len(values))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("fake scan: destination %d is not a pointer", i)
		}
		target := dv.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		if err := setValue(target, reflect.ValueOf(values[i])); err != nil {
			return fmt.Errorf("fake scan: column %d: %w", i, err)
		}
	}
	return nil
}

func setValue(target, v reflect.Value) error {
	tt := target.Type()
	switch {
	case v.Type().AssignableTo(tt):
		target.Set(v)
		return nil
	case v.Kind() == tt.Kind() && v.Type().ConvertibleTo(tt):
		target.Set(v.Convert(tt))
		return nil
	case tt.Kind() == reflect.Pointer:
		p := reflect.New(tt.Elem())
		if err := setValue(p.Elem(), v); err != nil {
			return err
		}
		target.Set(p)
		return nil
	}
	return fmt.Errorf("cannot assign %s to %s", v.Type(), tt)
}
