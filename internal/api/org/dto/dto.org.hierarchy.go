package orgdto

// HierarchyCreateInput đầu vào khi tạo node cấp bậc.
// Level của node gốc phải bằng root level cấu hình; node con phải bằng level cha + 1.
type HierarchyCreateInput struct {
	ChannelID string `json:"channelId" validate:"required" transform:"str_objectid"`
	Name      string `json:"name" validate:"required,no_xss"`
	Describe  string `json:"describe,omitempty"`
	LevelCode string `json:"levelCode" validate:"required,level_code"`
	Level     int    `json:"level" validate:"required,min=1"`
	ParentID  string `json:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Order     *int   `json:"order,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// HierarchyUpdateInput đầu vào khi cập nhật node cấp bậc.
// Chỉ các trường có giá trị mới được kiểm tra lại ràng buộc tương ứng.
type HierarchyUpdateInput struct {
	Name      string `json:"name"`
	Describe  string `json:"describe"`
	LevelCode string `json:"levelCode,omitempty" validate:"omitempty,level_code"`
	Level     *int   `json:"level,omitempty" validate:"omitempty,min=1"`
	ParentID  string `json:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Order     *int   `json:"order,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
