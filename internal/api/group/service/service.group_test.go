package groupsvc

import (
	"errors"
	"testing"

	models "group_commerce/internal/api/group/models"
	"group_commerce/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestCheckJoinGuards kiểm tra các đường từ chối tham gia nhóm.
func TestCheckJoinGuards(t *testing.T) {
	member := primitive.NewObjectID()
	leftMember := primitive.NewObjectID()
	newcomer := primitive.NewObjectID()

	group := &models.Group{
		Status:          models.GroupStatusActive,
		TargetQuantity:  100,
		CurrentQuantity: 40,
		Members: []models.GroupMember{
			{UserID: member, QuantityNeeded: 25, Status: models.MemberStatusActive},
			{UserID: leftMember, QuantityNeeded: 15, Status: models.MemberStatusLeft},
		},
	}

	if err := checkJoinGuards(group, newcomer, 20); err != nil {
		t.Errorf("Tham gia hợp lệ bị từ chối: %v", err)
	}

	// Nhóm không còn active
	closed := &models.Group{Status: models.GroupStatusCompleted, TargetQuantity: 100}
	if err := checkJoinGuards(closed, newcomer, 10); !errors.Is(err, common.ErrGroupNotOpen) {
		t.Errorf("Tham gia nhóm %s trả về %v, mong đợi ErrGroupNotOpen", closed.Status, err)
	}

	// Đã có membership record đang active
	if err := checkJoinGuards(group, member, 10); !errors.Is(err, common.ErrAlreadyMember) {
		t.Errorf("Tham gia lại khi đang là thành viên trả về %v, mong đợi ErrAlreadyMember", err)
	}

	// Đã rời nhóm cũng không được tham gia lại: record nào cũng chặn
	if err := checkJoinGuards(group, leftMember, 10); !errors.Is(err, common.ErrAlreadyMember) {
		t.Errorf("Tham gia lại sau khi rời trả về %v, mong đợi ErrAlreadyMember", err)
	}

	// Vượt mục tiêu: 40 + 61 > 100
	if err := checkJoinGuards(group, newcomer, 61); !errors.Is(err, common.ErrGroupFull) {
		t.Errorf("Tham gia vượt mục tiêu trả về %v, mong đợi ErrGroupFull", err)
	}

	// Vừa khít mục tiêu vẫn hợp lệ: 40 + 60 = 100
	if err := checkJoinGuards(group, newcomer, 60); err != nil {
		t.Errorf("Tham gia vừa khít mục tiêu bị từ chối: %v", err)
	}
}

// TestCheckJoinGuardsOrder kiểm tra thứ tự guard: trạng thái nhóm thắng
// các kiểm tra phía sau.
func TestCheckJoinGuardsOrder(t *testing.T) {
	member := primitive.NewObjectID()
	group := &models.Group{
		Status:          models.GroupStatusCancelled,
		TargetQuantity:  10,
		CurrentQuantity: 10,
		Members: []models.GroupMember{
			{UserID: member, QuantityNeeded: 10, Status: models.MemberStatusActive},
		},
	}
	// Nhóm vừa cancelled, vừa đầy, user vừa là thành viên: trạng thái thắng
	if err := checkJoinGuards(group, member, 5); !errors.Is(err, common.ErrGroupNotOpen) {
		t.Errorf("Guard trạng thái phải chạy trước, trả về %v", err)
	}
}

// TestCheckLeaveGuard kiểm tra điều kiện rời nhóm.
func TestCheckLeaveGuard(t *testing.T) {
	member := primitive.NewObjectID()
	leftMember := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	group := &models.Group{
		Members: []models.GroupMember{
			{UserID: member, QuantityNeeded: 10, Status: models.MemberStatusActive},
			{UserID: leftMember, QuantityNeeded: 5, Status: models.MemberStatusLeft},
		},
	}

	idx, err := checkLeaveGuard(group, member)
	if err != nil {
		t.Fatalf("Rời nhóm hợp lệ bị từ chối: %v", err)
	}
	if idx != 0 {
		t.Errorf("checkLeaveGuard trả về index %d, mong đợi 0", idx)
	}

	if _, err := checkLeaveGuard(group, stranger); !errors.Is(err, common.ErrNotMember) {
		t.Errorf("Rời nhóm khi chưa tham gia trả về %v, mong đợi ErrNotMember", err)
	}
	if _, err := checkLeaveGuard(group, leftMember); !errors.Is(err, common.ErrNotMember) {
		t.Errorf("Rời nhóm lần nữa sau khi đã rời trả về %v, mong đợi ErrNotMember", err)
	}
}

// TestJoinCompletionRecompute kiểm tra phần trăm hoàn thành sau khi một
// thành viên tham gia: target 100, current 40, thêm 20 → 60%.
func TestJoinCompletionRecompute(t *testing.T) {
	group := &models.Group{
		Status:          models.GroupStatusActive,
		TargetQuantity:  100,
		CurrentQuantity: 40,
	}
	quantity := 20.0
	if err := checkJoinGuards(group, primitive.NewObjectID(), quantity); err != nil {
		t.Fatalf("Guard từ chối tham gia hợp lệ: %v", err)
	}
	newQuantity := group.CurrentQuantity + quantity
	if newQuantity != 60 {
		t.Errorf("Số lượng sau tham gia = %.0f, mong đợi 60", newQuantity)
	}
	if got := completionPercentage(newQuantity, group.TargetQuantity); got != 60 {
		t.Errorf("Phần trăm hoàn thành sau tham gia = %d, mong đợi 60", got)
	}
}

// TestCompletionPercentage kiểm tra tính phần trăm hoàn thành, làm tròn về int.
func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		current float64
		target  float64
		want    int
	}{
		{current: 60, target: 100, want: 60},
		{current: 100, target: 100, want: 100},
		{current: 0, target: 100, want: 0},
		{current: 1, target: 3, want: 33},   // 33.33 làm tròn xuống
		{current: 2, target: 3, want: 67},   // 66.67 làm tròn lên
		{current: 1, target: 200, want: 1},  // 0.5 làm tròn lên
		{current: 50, target: 0, want: 0},   // target không hợp lệ
		{current: 50, target: -10, want: 0}, // target âm
	}
	for _, tt := range tests {
		if got := completionPercentage(tt.current, tt.target); got != tt.want {
			t.Errorf("completionPercentage(%.0f, %.0f) = %d, mong đợi %d", tt.current, tt.target, got, tt.want)
		}
	}
}
