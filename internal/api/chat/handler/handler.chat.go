// Package chathdl - handler cho domain chat.
package chathdl

import (
	"fmt"

	basehdl "group_commerce/internal/api/base/handler"
	chatdto "group_commerce/internal/api/chat/dto"
	models "group_commerce/internal/api/chat/models"
	chatsvc "group_commerce/internal/api/chat/service"
	"group_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatHandler xử lý các request trò chuyện với trợ lý
type ChatHandler struct {
	*basehdl.BaseHandler[models.ChatSession, chatdto.ChatMessageInput, chatdto.ChatMessageInput]
	chatService *chatsvc.ChatService
}

// NewChatHandler tạo instance mới của ChatHandler
func NewChatHandler() (*ChatHandler, error) {
	chatService, err := chatsvc.NewChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ChatSession, chatdto.ChatMessageInput, chatdto.ChatMessageInput](chatService)
	return &ChatHandler{
		BaseHandler: baseHandler,
		chatService: chatService,
	}, nil
}

// requireUserID lấy ObjectID của user đang đăng nhập từ context.
func (h *ChatHandler) requireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleHistory trả về phiên trò chuyện hiện tại, tạo mới nếu chưa có
func (h *ChatHandler) HandleHistory(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	session, err := h.chatService.GetOrCreateSession(c.Context(), userID)
	h.HandleResponse(c, session, err)
	return nil
}

// HandleMessage gửi tin nhắn và nhận câu trả lời của trợ lý
func (h *ChatHandler) HandleMessage(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input chatdto.ChatMessageInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	reply, err := h.chatService.SendMessage(c.Context(), userID, input.Message)
	h.HandleResponse(c, reply, err)
	return nil
}

// HandleClear đóng phiên trò chuyện hiện tại
func (h *ChatHandler) HandleClear(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.chatService.ClearSession(c.Context(), userID)
	h.HandleResponse(c, fiber.Map{"cleared": err == nil}, err)
	return nil
}
