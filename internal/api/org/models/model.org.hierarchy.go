package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HierarchyStatus trạng thái của một node cấp bậc
const (
	HierarchyStatusActive   = "active"
	HierarchyStatusInactive = "inactive"
)

// Hierarchy một node trong cây cấp bậc của channel.
// LevelCode luôn được lưu dạng uppercase và duy nhất trong phạm vi channel (với các node chưa xóa mềm).
// Level của node con phải bằng level của node cha cộng 1.
// Order độc lập với Level, dùng cho phạm vi nhìn thấy theo team trên toàn bộ channels.
type Hierarchy struct {
	_Relationships struct{}           `relationship:"collection:hierarchies,field:parentId,message:Không thể xóa cấp bậc vì có %d cấp bậc con trực thuộc. Vui lòng xóa các cấp bậc con trước.|collection:designations,field:hierarchyId,message:Không thể xóa cấp bậc vì có %d chức danh trực thuộc. Vui lòng xóa các chức danh trước."`
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	ChannelID      primitive.ObjectID  `json:"channelId" bson:"channelId" index:"single:1"`
	Name           string              `json:"name" bson:"name" index:"single:1"`
	Describe       string              `json:"describe,omitempty" bson:"describe,omitempty"`
	LevelCode      string              `json:"levelCode" bson:"levelCode"`
	Level          int                 `json:"level" bson:"level" index:"single:1"`
	ParentID       *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Order          int                 `json:"order" bson:"order"`
	Status         string              `json:"status" bson:"status" index:"single:1" default:"active"`
	IsDeleted      bool                `json:"isDeleted" bson:"isDeleted" index:"single:1"`
	DeletedAt      int64               `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
