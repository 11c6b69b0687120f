package orgsvc

import (
	"sort"
	"strconv"
	"strings"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
)

// VisibilityPolicy chính sách khi không resolve được agent của user trong phạm vi team.
// "all": không giới hạn (trả về toàn bộ), "none": trả về rỗng.
type VisibilityPolicy string

const (
	VisibilityAll  VisibilityPolicy = "all"
	VisibilityNone VisibilityPolicy = "none"
)

// ParseVisibilityPolicy đọc policy từ cấu hình, giá trị không hợp lệ rơi về "all"
func ParseVisibilityPolicy(value string) VisibilityPolicy {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(VisibilityNone):
		return VisibilityNone
	default:
		return VisibilityAll
	}
}

// ParseLevelCode parse mã cấp bậc thành số nguyên để so sánh thứ tự.
// Chỉ chấp nhận chuỗi thuần chữ số thập phân (sau khi trim), không dấu.
// Mã không parse được bị loại khỏi mọi phép so sánh thay vì gây lỗi.
func ParseLevelCode(code string) (int, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NodesBelowLevelCode lọc các node có levelCode parse được và nhỏ hơn hẳn limitCode,
// sắp xếp tăng dần theo giá trị số của levelCode.
// limitCode không parse được thì không so sánh được với node nào: trả về rỗng.
func NodesBelowLevelCode(nodes []models.Hierarchy, limitCode string) []models.Hierarchy {
	limit, ok := ParseLevelCode(limitCode)
	if !ok {
		return []models.Hierarchy{}
	}

	below := make([]models.Hierarchy, 0, len(nodes))
	for _, node := range nodes {
		if node.IsDeleted {
			continue
		}
		value, ok := ParseLevelCode(node.LevelCode)
		if !ok {
			continue
		}
		if value < limit {
			below = append(below, node)
		}
	}

	sort.SliceStable(below, func(i, j int) bool {
		vi, _ := ParseLevelCode(below[i].LevelCode)
		vj, _ := ParseLevelCode(below[j].LevelCode)
		return vi < vj
	})
	return below
}

// NodesAtOrBelowOrder lọc các node chưa xóa mềm có order <= maxOrder.
// Order là trục xếp hạng độc lập với level/levelCode.
func NodesAtOrBelowOrder(nodes []models.Hierarchy, maxOrder int) []models.Hierarchy {
	result := make([]models.Hierarchy, 0, len(nodes))
	for _, node := range nodes {
		if node.IsDeleted {
			continue
		}
		if node.Order <= maxOrder {
			result = append(result, node)
		}
	}
	return result
}

// BuildHierarchyScopeRows ghép mỗi node với các chức danh gắn vào node đó,
// mỗi cặp (node, chức danh) một dòng. Thứ tự node đầu vào được giữ nguyên;
// các chức danh trong cùng một node xếp theo tên.
func BuildHierarchyScopeRows(nodes []models.Hierarchy, designations []models.Designation) []orgdto.HierarchyScopeRow {
	byHierarchy := make(map[string][]models.Designation, len(nodes))
	for _, d := range designations {
		if d.IsDeleted {
			continue
		}
		key := d.HierarchyID.Hex()
		byHierarchy[key] = append(byHierarchy[key], d)
	}

	rows := make([]orgdto.HierarchyScopeRow, 0, len(designations))
	for _, node := range nodes {
		bound := byHierarchy[node.ID.Hex()]
		sort.SliceStable(bound, func(i, j int) bool {
			return bound[i].Name < bound[j].Name
		})
		for _, d := range bound {
			rows = append(rows, orgdto.HierarchyScopeRow{
				HierarchyID:        node.ID.Hex(),
				HierarchyName:      node.Name,
				HierarchyLevelCode: node.LevelCode,
				DesignationName:    d.Name,
			})
		}
	}
	return rows
}

// JoinFullName ghép tên hiển thị: trim từng phần, bỏ phần rỗng, nối bằng một khoảng trắng
func JoinFullName(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, " ")
}

// AgentFullName tên hiển thị của một agent
func AgentFullName(agent models.Agent) string {
	return JoinFullName(agent.FirstName, agent.MiddleName, agent.LastName)
}

// BuildAgentScopeRows chuyển danh sách agent thành các dòng kết quả {agentId, fullName}
func BuildAgentScopeRows(agents []models.Agent) []orgdto.AgentScopeRow {
	rows := make([]orgdto.AgentScopeRow, 0, len(agents))
	for _, agent := range agents {
		rows = append(rows, orgdto.AgentScopeRow{
			AgentID:  agent.ID.Hex(),
			FullName: AgentFullName(agent),
		})
	}
	return rows
}
