package orgdto

// AgentCreateInput đầu vào khi tạo nhân sự bán hàng.
type AgentCreateInput struct {
	Code          string `json:"code,omitempty"`
	ChannelID     string `json:"channelId" validate:"required" transform:"str_objectid"`
	DesignationID string `json:"designationId" validate:"required" transform:"str_objectid"`
	UserID        string `json:"userId,omitempty" transform:"str_objectid_ptr,optional"`
	FirstName     string `json:"firstName" validate:"required,no_xss"`
	MiddleName    string `json:"middleName,omitempty"`
	LastName      string `json:"lastName,omitempty" validate:"omitempty,no_xss"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty"`
	AgentStatus   string `json:"agentStatus,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// AgentUpdateInput đầu vào khi cập nhật nhân sự bán hàng.
type AgentUpdateInput struct {
	Code          string `json:"code"`
	DesignationID string `json:"designationId,omitempty" transform:"str_objectid,optional"`
	UserID        string `json:"userId,omitempty" transform:"str_objectid_ptr,optional"`
	FirstName     string `json:"firstName"`
	MiddleName    string `json:"middleName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	AgentStatus   string `json:"agentStatus,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}
