package utility

// Contains kiểm tra item có nằm trong slice không.
// Dùng cho lọc field trả về của các route CRUD generic.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
