package common

import "testing"

// TestSentinelErrorStatusCodes kiểm tra HTTP status code của các sentinel error.
// Trùng email/phone khi đăng ký là lỗi dữ liệu đầu vào (400), không phải conflict.
func TestSentinelErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "ErrEmailTaken", err: ErrEmailTaken, want: StatusBadRequest},
		{name: "ErrInvalidCredentials", err: ErrInvalidCredentials, want: StatusUnauthorized},
		{name: "ErrTokenExpired", err: ErrTokenExpired, want: StatusUnauthorized},
		{name: "ErrNotFound", err: ErrNotFound, want: StatusNotFound},
		{name: "ErrGroupNotOpen", err: ErrGroupNotOpen, want: StatusBadRequest},
		{name: "ErrGroupFull", err: ErrGroupFull, want: StatusBadRequest},
		{name: "ErrAlreadyMember", err: ErrAlreadyMember, want: StatusBadRequest},
		{name: "ErrNotMember", err: ErrNotMember, want: StatusBadRequest},
	}
	for _, tt := range tests {
		appErr, ok := tt.err.(*Error)
		if !ok {
			t.Errorf("%s không phải *Error", tt.name)
			continue
		}
		if appErr.StatusCode != tt.want {
			t.Errorf("%s.StatusCode = %d, mong đợi %d", tt.name, appErr.StatusCode, tt.want)
		}
	}
}
