package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AgentStatus trạng thái làm việc của nhân sự bán hàng
const (
	AgentStatusActive    = "active"
	AgentStatusInactive  = "inactive"
	AgentStatusSuspended = "suspended"
)

// Agent nhân sự bán hàng. Vị trí trong cây tổ chức xác định qua chức danh (DesignationID).
// UserID liên kết tới tài khoản đăng nhập (nếu có) để resolve phạm vi nhìn thấy theo user.
type Agent struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Code          string              `json:"code" bson:"code" index:"unique,sparse"`
	ChannelID     primitive.ObjectID  `json:"channelId" bson:"channelId" index:"single:1"`
	DesignationID primitive.ObjectID  `json:"designationId" bson:"designationId"`
	UserID        *primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"`
	FirstName     string              `json:"firstName" bson:"firstName"`
	MiddleName    string              `json:"middleName,omitempty" bson:"middleName,omitempty"`
	LastName      string              `json:"lastName" bson:"lastName"`
	Email         string              `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone         string              `json:"phone,omitempty" bson:"phone,omitempty"`
	AgentStatus   string              `json:"agentStatus" bson:"agentStatus" index:"single:1" default:"active"`
	IsDeleted     bool                `json:"isDeleted" bson:"isDeleted" index:"single:1"`
	DeletedAt     int64               `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
