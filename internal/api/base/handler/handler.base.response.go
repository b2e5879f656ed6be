package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"group_commerce/internal/common"
	"group_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			// Trả về lỗi cho client
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// ErrorResponse trả về error response theo format thống nhất.
// Chi tiết lỗi hệ thống (5xx) chỉ trả về ở môi trường development.
func ErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		details := customErr.Details
		if customErr.StatusCode >= common.StatusInternalServerError &&
			global.ServerConfig != nil && !global.ServerConfig.IsDevelopment() {
			// Ẩn chi tiết lỗi hệ thống ở production
			details = nil
		}
		return JSONResponse(c, customErr.StatusCode, fiber.Map{
			"success": false,
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"error":   details,
		})
	}

	// Nếu không phải custom error, trả về internal server error
	resp := fiber.Map{
		"success": false,
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
	}
	if global.ServerConfig == nil || global.ServerConfig.IsDevelopment() {
		resp["error"] = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, resp)
}

// SuccessResponse trả về success response theo format thống nhất.
// statusCode là optional, mặc định 200.
func SuccessResponse(c fiber.Ctx, data interface{}, message string, statusCode ...int) error {
	status := common.StatusOK
	if len(statusCode) > 0 {
		status = statusCode[0]
	}
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, status, fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
//
// Parameters:
// - c: Fiber context
// - data: Dữ liệu trả về cho client (có thể là nil nếu chỉ trả về lỗi)
// - err: Lỗi nếu có (nil nếu không có lỗi)
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	// Trường hợp thành công
	SuccessResponse(c, data, common.MsgSuccess)
}
