// Package grouphdl - handler cho domain group.
package grouphdl

import (
	"fmt"

	basehdl "group_commerce/internal/api/base/handler"
	groupdto "group_commerce/internal/api/group/dto"
	models "group_commerce/internal/api/group/models"
	groupsvc "group_commerce/internal/api/group/service"
	"group_commerce/internal/common"
	"group_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupHandler xử lý các request nhóm mua chung
type GroupHandler struct {
	*basehdl.BaseHandler[models.Group, groupdto.GroupCreateInput, groupdto.GroupUpdateInput]
	groupService *groupsvc.GroupService
}

// NewGroupHandler tạo instance mới của GroupHandler
func NewGroupHandler() (*GroupHandler, error) {
	groupService, err := groupsvc.NewGroupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create group service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Group, groupdto.GroupCreateInput, groupdto.GroupUpdateInput](groupService)
	return &GroupHandler{
		BaseHandler:  baseHandler,
		groupService: groupService,
	}, nil
}

// requireUserID lấy ObjectID của user đang đăng nhập từ context.
func (h *GroupHandler) requireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// parseGroupID đọc và validate group id từ path param.
func (h *GroupHandler) parseGroupID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID nhóm không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleList danh sách nhóm theo filter, kèm gợi ý AI cho người gọi
func (h *GroupHandler) HandleList(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var query groupdto.GroupListQuery
	if err := h.ParseRequestQuery(c, &query); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.groupService.ListGroups(c.Context(), userID, &query)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCreate tạo nhóm mua chung mới
func (h *GroupHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input groupdto.GroupCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	group, err := h.groupService.CreateGroup(c.Context(), userID, &input)
	h.HandleResponse(c, group, err)
	return nil
}

// HandleGetById chi tiết một nhóm
func (h *GroupHandler) HandleGetById(c fiber.Ctx) error {
	groupID, err := h.parseGroupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	group, err := h.groupService.BaseServiceMongoImpl.FindOneById(c.Context(), groupID)
	h.HandleResponse(c, group, err)
	return nil
}

// HandleJoin tham gia nhóm
func (h *GroupHandler) HandleJoin(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	groupID, err := h.parseGroupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input groupdto.GroupJoinInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.groupService.JoinGroup(c.Context(), groupID, userID, input.Quantity)
	if err == nil {
		logger.LogMembership("join", groupID.Hex(), c, map[string]interface{}{"quantity": input.Quantity})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleLeave rời nhóm
func (h *GroupHandler) HandleLeave(c fiber.Ctx) error {
	userID, err := h.requireUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	groupID, err := h.parseGroupID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	group, err := h.groupService.LeaveGroup(c.Context(), groupID, userID)
	if err == nil {
		logger.LogMembership("leave", groupID.Hex(), c, nil)
	}
	h.HandleResponse(c, group, err)
	return nil
}
