package utility

import (
	"testing"
	"time"
)

// TestCacheSetGetDelete kiểm tra lưu, đọc và xóa từng key.
func TestCacheSetGetDelete(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)

	cache.Set("key1", "value1")
	value, exists := cache.Get("key1")
	if !exists {
		t.Fatal("Get sau Set phải tìm thấy key")
	}
	if value != "value1" {
		t.Errorf("Get trả về %v, mong đợi %q", value, "value1")
	}

	cache.Delete("key1")
	if _, exists := cache.Get("key1"); exists {
		t.Error("Get sau Delete không được tìm thấy key")
	}

	// Delete key không tồn tại không được panic
	cache.Delete("khong-ton-tai")
}

// TestCacheClear kiểm tra xóa toàn bộ cache.
func TestCacheClear(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Clear()
	if _, exists := cache.Get("a"); exists {
		t.Error("Get sau Clear không được tìm thấy key a")
	}
	if _, exists := cache.Get("b"); exists {
		t.Error("Get sau Clear không được tìm thấy key b")
	}

	// Cache vẫn dùng được sau khi Clear
	cache.Set("c", 3)
	if _, exists := cache.Get("c"); !exists {
		t.Error("Set sau Clear phải hoạt động bình thường")
	}
}
