package events

import (
	"context"
	"testing"
	"time"
)

// TestEmitDataChanged kiểm tra handler đã đăng ký nhận được event.
func TestEmitDataChanged(t *testing.T) {
	received := make(chan DataChangeEvent, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received <- e
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "buy_groups",
		Operation:      OpInsert,
		Document:       nil,
	})

	select {
	case e := <-received:
		if e.CollectionName != "buy_groups" {
			t.Errorf("CollectionName = %q, mong đợi %q", e.CollectionName, "buy_groups")
		}
		if e.Operation != OpInsert {
			t.Errorf("Operation = %q, mong đợi %q", e.Operation, OpInsert)
		}
	case <-time.After(time.Second):
		t.Fatal("Handler không nhận được event sau 1 giây")
	}
}

// TestEmitDataChangedRecoversPanic kiểm tra handler panic không làm sập
// các handler khác.
func TestEmitDataChangedRecoversPanic(t *testing.T) {
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "panic_test" {
			panic("handler hỏng")
		}
	})
	received := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		if e.CollectionName == "panic_test" {
			received <- struct{}{}
		}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "panic_test",
		Operation:      OpUpdate,
	})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("Handler lành không nhận được event khi handler khác panic")
	}
}

// TestGetInt64Field kiểm tra đọc field int64 bằng reflection.
func TestGetInt64Field(t *testing.T) {
	type doc struct {
		CreatedAt int64
		Name      string
	}

	d := doc{CreatedAt: 1700000000000, Name: "x"}
	if got := GetInt64Field(d, "CreatedAt"); got != 1700000000000 {
		t.Errorf("GetInt64Field(struct) = %d, mong đợi 1700000000000", got)
	}
	if got := GetInt64Field(&d, "CreatedAt"); got != 1700000000000 {
		t.Errorf("GetInt64Field(pointer) = %d, mong đợi 1700000000000", got)
	}
	if got := GetInt64Field(d, "Name"); got != 0 {
		t.Errorf("GetInt64Field với field không phải số = %d, mong đợi 0", got)
	}
	if got := GetInt64Field(d, "KhongTonTai"); got != 0 {
		t.Errorf("GetInt64Field với field không tồn tại = %d, mong đợi 0", got)
	}
	if got := GetInt64Field(nil, "CreatedAt"); got != 0 {
		t.Errorf("GetInt64Field(nil) = %d, mong đợi 0", got)
	}
	var p *doc
	if got := GetInt64Field(p, "CreatedAt"); got != 0 {
		t.Errorf("GetInt64Field(nil pointer) = %d, mong đợi 0", got)
	}
}
