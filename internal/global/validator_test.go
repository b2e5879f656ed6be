package global

import "testing"

// TestValidateBuyCategory kiểm tra validator danh mục hàng hóa.
func TestValidateBuyCategory(t *testing.T) {
	InitValidator()

	type input struct {
		Category string `validate:"buy_category"`
	}

	valid := []string{"Grains & Cereals", "Vegetables", "Fruits", "Spices", "Oil & Ghee", "Dairy Products", "Other"}
	for _, c := range valid {
		if err := Validate.Struct(input{Category: c}); err != nil {
			t.Errorf("Danh mục hợp lệ %q bị từ chối: %v", c, err)
		}
	}

	invalid := []string{"Electronics", "grains & cereals", ""}
	for _, c := range invalid {
		if err := Validate.Struct(input{Category: c}); err == nil {
			t.Errorf("Danh mục không hợp lệ %q phải bị từ chối", c)
		}
	}
}

// TestValidateNoXSS kiểm tra validator chặn XSS.
func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	type input struct {
		Name string `validate:"no_xss"`
	}

	if err := Validate.Struct(input{Name: "Gạo Basmati loại 1"}); err != nil {
		t.Errorf("Chuỗi lành bị từ chối: %v", err)
	}
	dangerous := []string{
		"<script>alert(1)</script>",
		"javascript:void(0)",
		"<IFRAME src=x>",
		"x onerror=alert(1)",
	}
	for _, s := range dangerous {
		if err := Validate.Struct(input{Name: s}); err == nil {
			t.Errorf("Chuỗi nguy hiểm %q phải bị từ chối", s)
		}
	}
}

// TestValidateStrongPassword kiểm tra yêu cầu mật khẩu mạnh:
// tối thiểu 8 ký tự và ít nhất 3 trong 4 loại ký tự.
func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	type input struct {
		Password string `validate:"strong_password"`
	}

	valid := []string{"MatKhau123", "matkhau@1", "MATKHAU@1"}
	for _, p := range valid {
		if err := Validate.Struct(input{Password: p}); err != nil {
			t.Errorf("Mật khẩu hợp lệ %q bị từ chối: %v", p, err)
		}
	}

	invalid := []string{
		"Mk@1",       // quá ngắn
		"matkhaudai", // chỉ 1 loại ký tự
		"matkhau123", // chỉ 2 loại ký tự
	}
	for _, p := range invalid {
		if err := Validate.Struct(input{Password: p}); err == nil {
			t.Errorf("Mật khẩu yếu %q phải bị từ chối", p)
		}
	}
}
