// Package orgdto chứa các cấu trúc đầu vào / đầu ra cho domain org.
package orgdto

// ChannelCreateInput đầu vào khi tạo kênh bán hàng.
type ChannelCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Code        string `json:"code" validate:"required,no_xss"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ChannelUpdateInput đầu vào khi cập nhật kênh bán hàng.
type ChannelUpdateInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
