// Package models - Các model thuộc domain org: Channel, Role, Hierarchy, Designation, Agent.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChannelStatus trạng thái của kênh bán hàng
const (
	ChannelStatusActive   = "active"
	ChannelStatusInactive = "inactive"
)

// Channel đại diện một kênh bán hàng (tenant). Mọi dữ liệu tổ chức đều gắn với một channel.
type Channel struct {
	_Relationships struct{}          `relationship:"collection:hierarchies,field:channelId,message:Không thể xóa kênh vì có %d cấp bậc trực thuộc. Vui lòng xóa các cấp bậc trước.|collection:designations,field:channelId,message:Không thể xóa kênh vì có %d chức danh trực thuộc. Vui lòng xóa các chức danh trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"single:1"`
	Code           string             `json:"code" bson:"code" index:"unique"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Status         string             `json:"status" bson:"status" index:"single:1" default:"active"`
	IsSystem       bool               `json:"-" bson:"isSystem"`
	IsDeleted      bool               `json:"isDeleted" bson:"isDeleted" index:"single:1"`
	DeletedAt      int64              `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
