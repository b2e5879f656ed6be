package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestFindMember kiểm tra tìm membership record theo userId.
func TestFindMember(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	group := Group{
		Members: []GroupMember{
			{UserID: userA, QuantityNeeded: 10, Status: MemberStatusActive},
			{UserID: userB, QuantityNeeded: 5, Status: MemberStatusLeft},
		},
	}

	if idx := group.FindMember(userA); idx != 0 {
		t.Errorf("FindMember(userA) = %d, mong đợi 0", idx)
	}
	// Record đã rời nhóm vẫn được tìm thấy, caller tự kiểm tra status
	if idx := group.FindMember(userB); idx != 1 {
		t.Errorf("FindMember(userB) = %d, mong đợi 1", idx)
	}
	if idx := group.FindMember(stranger); idx != -1 {
		t.Errorf("FindMember với user ngoài nhóm = %d, mong đợi -1", idx)
	}
}

// TestActiveQuantity kiểm tra chỉ cộng số lượng của thành viên đang active.
func TestActiveQuantity(t *testing.T) {
	group := Group{
		Members: []GroupMember{
			{UserID: primitive.NewObjectID(), QuantityNeeded: 10, Status: MemberStatusActive},
			{UserID: primitive.NewObjectID(), QuantityNeeded: 7, Status: MemberStatusLeft},
			{UserID: primitive.NewObjectID(), QuantityNeeded: 3, Status: MemberStatusActive},
			{UserID: primitive.NewObjectID(), QuantityNeeded: 5, Status: MemberStatusCompleted},
		},
	}
	if got := group.ActiveQuantity(); got != 13 {
		t.Errorf("ActiveQuantity() = %.0f, mong đợi 13", got)
	}

	empty := Group{}
	if got := empty.ActiveQuantity(); got != 0 {
		t.Errorf("ActiveQuantity() của nhóm rỗng = %.0f, mong đợi 0", got)
	}
}
