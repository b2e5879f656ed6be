package registry

import (
	"sync"
	"testing"
)

// TestRegistryRegisterAndGet kiểm tra đăng ký và lấy item cơ bản
func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry[int]()

	isNew, err := reg.Register("counter", 42)
	if err != nil {
		t.Fatalf("Register trả về lỗi không mong đợi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	item, exists := reg.Get("counter")
	if !exists {
		t.Fatal("Get không tìm thấy item vừa đăng ký")
	}
	if item != 42 {
		t.Errorf("Get trả về %d, mong đợi 42", item)
	}

	// Ghi đè item cũ
	isNew, err = reg.Register("counter", 100)
	if err != nil {
		t.Fatalf("Register trả về lỗi không mong đợi: %v", err)
	}
	if isNew {
		t.Error("Register ghi đè phải trả về isNew = false")
	}
	item, _ = reg.Get("counter")
	if item != 100 {
		t.Errorf("Get sau ghi đè trả về %d, mong đợi 100", item)
	}
}

// TestRegistryRegisterEmptyName kiểm tra đăng ký với tên rỗng phải bị từ chối
func TestRegistryRegisterEmptyName(t *testing.T) {
	reg := NewRegistry[string]()
	if _, err := reg.Register("", "value"); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

// TestRegistryGetMissing kiểm tra lấy item không tồn tại
func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry[string]()
	if _, exists := reg.Get("khong-ton-tai"); exists {
		t.Error("Get với key không tồn tại phải trả về exists = false")
	}
}

// TestRegistryClear kiểm tra xóa item có cleanup
func TestRegistryClear(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Register("a", "value-a")

	cleaned := false
	deleted, err := reg.Clear("a", func(s string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear trả về lỗi không mong đợi: %v", err)
	}
	if !deleted {
		t.Error("Clear phải trả về deleted = true cho item tồn tại")
	}
	if !cleaned {
		t.Error("Clear phải gọi cleanup function")
	}
	if _, exists := reg.Get("a"); exists {
		t.Error("Item vẫn tồn tại sau khi Clear")
	}

	// Xóa item không tồn tại
	deleted, err = reg.Clear("a", nil)
	if err != nil {
		t.Fatalf("Clear trả về lỗi không mong đợi: %v", err)
	}
	if deleted {
		t.Error("Clear item không tồn tại phải trả về deleted = false")
	}
}

// TestRegistryClearAll kiểm tra xóa toàn bộ items
func TestRegistryClearAll(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Register("a", 1)
	reg.Register("b", 2)
	reg.Register("c", 3)

	count, err := reg.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll trả về lỗi không mong đợi: %v", err)
	}
	if count != 3 {
		t.Errorf("ClearAll trả về count = %d, mong đợi 3", count)
	}
	if len(reg.Names()) != 0 {
		t.Error("Registry vẫn còn items sau ClearAll")
	}
}

// TestRegistryConcurrent kiểm tra truy cập đồng thời không gây race
func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			reg.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			reg.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := reg.Get("shared"); !exists {
		t.Error("Item phải tồn tại sau các lần Register đồng thời")
	}
}
