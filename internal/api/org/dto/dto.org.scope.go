package orgdto

// HierarchyScopeRow một dòng kết quả khi resolve các cấp bậc thấp hơn một agent.
// Mỗi dòng là một cặp (node cấp bậc, chức danh) với levelCode nhỏ hơn levelCode của agent.
type HierarchyScopeRow struct {
	HierarchyID        string `json:"hierarchyId"`
	HierarchyName      string `json:"hierarchyName"`
	HierarchyLevelCode string `json:"hierarchyLevelCode"`
	DesignationName    string `json:"designationName"`
}

// AgentScopeRow một dòng kết quả khi resolve các agent dưới một chức danh.
type AgentScopeRow struct {
	AgentID  string `json:"agentId"`
	FullName string `json:"fullName"`
}

// TeamMemberRow một dòng kết quả khi resolve phạm vi team theo trường order.
// Các tham chiếu được resolve sẵn thành tên để tầng trình bày không phải join thêm.
type TeamMemberRow struct {
	AgentID            string `json:"agentId"`
	FullName           string `json:"fullName"`
	AgentStatus        string `json:"agentStatus"`
	ChannelID          string `json:"channelId"`
	ChannelName        string `json:"channelName"`
	DesignationID      string `json:"designationId"`
	DesignationName    string `json:"designationName"`
	HierarchyID        string `json:"hierarchyId"`
	HierarchyName      string `json:"hierarchyName"`
	HierarchyLevelCode string `json:"hierarchyLevelCode"`
	HierarchyOrder     int    `json:"hierarchyOrder"`
	ManagerAgentID     string `json:"managerAgentId,omitempty"`
	ManagerFullName    string `json:"managerFullName,omitempty"`
}

// TeamVisibilityResult kết quả resolve phạm vi team của một user.
// Unrestricted = true khi không resolve được agent của user và policy là "all".
type TeamVisibilityResult struct {
	Unrestricted bool            `json:"unrestricted"`
	MaxOrder     *int            `json:"maxOrder,omitempty"`
	Members      []TeamMemberRow `json:"members"`
}
