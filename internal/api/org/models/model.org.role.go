package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role vai trò nghiệp vụ mà chức danh tham chiếu (ví dụ: quản lý, tư vấn viên).
type Role struct {
	_Relationships struct{}          `relationship:"collection:designations,field:roleId,message:Không thể xóa vai trò vì có %d chức danh đang sử dụng. Vui lòng cập nhật các chức danh trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"single:1"`
	Code           string             `json:"code" bson:"code" index:"unique"`
	Describe       string             `json:"describe,omitempty" bson:"describe,omitempty"`
	IsSystem       bool               `json:"-" bson:"isSystem"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
