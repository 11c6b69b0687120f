package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DesignationStatus trạng thái của chức danh
const (
	DesignationStatusActive   = "active"
	DesignationStatusInactive = "inactive"
)

// Designation chức danh: gắn một vai trò vào một node cấp bậc trong một channel.
// Agent tham chiếu chức danh để xác định vị trí của mình trong cây tổ chức.
type Designation struct {
	_Relationships struct{}          `relationship:"collection:agents,field:designationId,message:Không thể xóa chức danh vì có %d nhân sự đang giữ chức danh này. Vui lòng cập nhật nhân sự trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ChannelID      primitive.ObjectID `json:"channelId" bson:"channelId" index:"single:1"`
	HierarchyID    primitive.ObjectID `json:"hierarchyId" bson:"hierarchyId"`
	RoleID         primitive.ObjectID `json:"roleId" bson:"roleId" index:"single:1"`
	Name           string             `json:"name" bson:"name"`
	Describe       string             `json:"describe,omitempty" bson:"describe,omitempty"`
	Order          int                `json:"order" bson:"order"`
	Status         string             `json:"status" bson:"status" index:"single:1" default:"active"`
	IsDeleted      bool               `json:"isDeleted" bson:"isDeleted" index:"single:1"`
	DeletedAt      int64              `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
