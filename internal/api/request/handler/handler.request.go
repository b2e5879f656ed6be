// Package requesthdl - handler cho domain request.
package requesthdl

import (
	"fmt"

	basehdl "group_commerce/internal/api/base/handler"
	requestdto "group_commerce/internal/api/request/dto"
	models "group_commerce/internal/api/request/models"
	requestsvc "group_commerce/internal/api/request/service"
	"group_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestHandler xử lý các request yêu cầu mua hàng
type RequestHandler struct {
	*basehdl.BaseHandler[models.Request, requestdto.RequestCreateInput, requestdto.RequestUpdateInput]
	requestService *requestsvc.RequestService
}

// NewRequestHandler tạo instance mới của RequestHandler
func NewRequestHandler() (*RequestHandler, error) {
	requestService, err := requestsvc.NewRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create request service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Request, requestdto.RequestCreateInput, requestdto.RequestUpdateInput](requestService)
	return &RequestHandler{
		BaseHandler:    baseHandler,
		requestService: requestService,
	}, nil
}

// requireUserID lấy ObjectID của user đang đăng nhập từ context.
func (h *RequestHandler) requireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleCreate tạo yêu cầu mua hàng mới
func (h *RequestHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input requestdto.RequestCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	request, err := h.requestService.CreateRequest(c.Context(), userID, &input)
	h.HandleResponse(c, request, err)
	return nil
}

// HandleListMine danh sách yêu cầu của người gọi, mới nhất trước
func (h *RequestHandler) HandleListMine(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	requests, err := h.requestService.ListMyRequests(c.Context(), userID)
	h.HandleResponse(c, requests, err)
	return nil
}
