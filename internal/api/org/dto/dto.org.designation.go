package orgdto

// DesignationCreateInput đầu vào khi tạo chức danh.
type DesignationCreateInput struct {
	ChannelID   string `json:"channelId" validate:"required" transform:"str_objectid"`
	HierarchyID string `json:"hierarchyId" validate:"required" transform:"str_objectid"`
	RoleID      string `json:"roleId" validate:"required" transform:"str_objectid"`
	Name        string `json:"name" validate:"required,no_xss"`
	Describe    string `json:"describe,omitempty"`
	Order       *int   `json:"order,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// DesignationUpdateInput đầu vào khi cập nhật chức danh.
// HierarchyID không nằm trong input: chức danh không được chuyển sang node cấp bậc khác.
type DesignationUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
	Order    *int   `json:"order,omitempty"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
