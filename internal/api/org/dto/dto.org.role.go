package orgdto

// RoleCreateInput đầu vào khi tạo vai trò.
type RoleCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Code     string `json:"code" validate:"required,no_xss"`
	Describe string `json:"describe,omitempty"`
}

// RoleUpdateInput đầu vào khi cập nhật vai trò.
type RoleUpdateInput struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Describe string `json:"describe"`
}
