package orgsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	"salesverse/internal/common"
	"salesverse/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScopeService resolve phạm vi nhìn thấy trong cây tổ chức.
// Chỉ đọc dữ liệu, không mutate; mỗi lần gọi đọc lại store, không cache.
// Hai thuật toán độc lập: so sánh số theo levelCode (trong một channel)
// và so sánh theo trường order (trên toàn bộ channels).
type ScopeService struct {
	agentService       *AgentService
	designationService *DesignationService
	hierarchyService   *HierarchyService
	channelService     *ChannelService
	policy             VisibilityPolicy
}

// NewScopeService tạo mới ScopeService, policy đọc từ cấu hình server
func NewScopeService() (*ScopeService, error) {
	agentService, err := NewAgentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create agent service: %v", err)
	}
	designationService, err := NewDesignationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create designation service: %v", err)
	}
	hierarchyService, err := NewHierarchyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create hierarchy service: %v", err)
	}
	channelService, err := NewChannelService()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel service: %v", err)
	}

	policy := VisibilityAll
	if global.MongoDB_ServerConfig != nil {
		policy = ParseVisibilityPolicy(global.MongoDB_ServerConfig.VisibilityPolicy)
	}

	return &ScopeService{
		agentService:       agentService,
		designationService: designationService,
		hierarchyService:   hierarchyService,
		channelService:     channelService,
		policy:             policy,
	}, nil
}

// ResolveBelowAgent trả về các cặp (node cấp bậc, chức danh) có levelCode nhỏ hơn hẳn
// levelCode của agent, trong cùng channel, sắp xếp tăng dần theo levelCode.
// Agent ở levelCode thấp nhất trả về danh sách rỗng, không phải lỗi.
func (s *ScopeService) ResolveBelowAgent(ctx context.Context, agentID string) ([]orgdto.HierarchyScopeRow, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(agentID))
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "ID agent không hợp lệ", common.StatusBadRequest, nil)
	}

	agent, err := s.agentService.FindActiveById(ctx, oid)
	if err != nil {
		return nil, err
	}
	if agent.AgentStatus != models.AgentStatusActive {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Agent đang ở trạng thái '%s', chỉ agent active mới resolve được phạm vi", agent.AgentStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	designation, err := s.designationService.FindOne(ctx, bson.M{"_id": agent.DesignationID, "isDeleted": false}, nil)
	if err != nil {
		return nil, err
	}

	node, err := s.hierarchyService.FindOne(ctx, bson.M{"_id": designation.HierarchyID, "isDeleted": false}, nil)
	if err != nil {
		return nil, err
	}

	channelNodes, err := s.hierarchyService.FindActiveByChannel(ctx, node.ChannelID)
	if err != nil {
		return nil, err
	}

	below := NodesBelowLevelCode(channelNodes, node.LevelCode)
	if len(below) == 0 {
		return []orgdto.HierarchyScopeRow{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(below))
	for _, n := range below {
		ids = append(ids, n.ID)
	}
	designations, err := s.designationService.FindByHierarchyIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	return BuildHierarchyScopeRows(below, designations), nil
}

// ResolveAgentsBelowDesignation trả về các agent active thuộc các chức danh ở mọi cấp bậc
// có levelCode nhỏ hơn hẳn levelCode của chức danh đích trong channel.
func (s *ScopeService) ResolveAgentsBelowDesignation(ctx context.Context, channelID string, designationName string) ([]orgdto.AgentScopeRow, error) {
	channelOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(channelID))
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "ID channel không hợp lệ", common.StatusBadRequest, nil)
	}
	designationName = strings.TrimSpace(designationName)
	if designationName == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Tên chức danh không được để trống", common.StatusBadRequest, nil)
	}

	designation, err := s.designationService.FindByName(ctx, channelOID, designationName)
	if err != nil {
		return nil, err
	}

	node, err := s.hierarchyService.FindOne(ctx, bson.M{"_id": designation.HierarchyID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Chức danh '%s' tham chiếu node cấp bậc không còn tồn tại", designationName),
				common.StatusBadRequest,
				nil,
			)
		}
		return nil, err
	}

	channelNodes, err := s.hierarchyService.FindActiveByChannel(ctx, channelOID)
	if err != nil {
		return nil, err
	}

	below := NodesBelowLevelCode(channelNodes, node.LevelCode)
	if len(below) == 0 {
		return []orgdto.AgentScopeRow{}, nil
	}

	hierarchyIDs := make([]primitive.ObjectID, 0, len(below))
	for _, n := range below {
		hierarchyIDs = append(hierarchyIDs, n.ID)
	}
	designations, err := s.designationService.FindByHierarchyIds(ctx, hierarchyIDs)
	if err != nil {
		return nil, err
	}
	if len(designations) == 0 {
		return []orgdto.AgentScopeRow{}, nil
	}

	designationIDs := make([]primitive.ObjectID, 0, len(designations))
	for _, d := range designations {
		designationIDs = append(designationIDs, d.ID)
	}
	agents, err := s.agentService.FindActiveByDesignationIds(ctx, designationIDs)
	if err != nil {
		return nil, err
	}

	return BuildAgentScopeRows(agents), nil
}

// ResolveTeamVisibility resolve phạm vi team theo trường order.
// Agent của user được resolve qua chuỗi Agent -> Designation -> Hierarchy; không resolve được
// thì áp dụng policy: "all" trả về toàn bộ (không giới hạn), "none" trả về rỗng.
// Kết quả tính trên toàn bộ channels rồi mới lọc theo channelID nếu được truyền.
func (s *ScopeService) ResolveTeamVisibility(ctx context.Context, userID string, channelID string) (*orgdto.TeamVisibilityResult, error) {
	userOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(userID))
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "ID user không hợp lệ", common.StatusBadRequest, nil)
	}

	var channelFilter *primitive.ObjectID
	if strings.TrimSpace(channelID) != "" {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(channelID))
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationInput, "ID channel không hợp lệ", common.StatusBadRequest, nil)
		}
		channelFilter = &oid
	}

	maxOrder, resolved, err := s.resolveUserOrder(ctx, userOID)
	if err != nil {
		return nil, err
	}

	if !resolved {
		if s.policy == VisibilityNone {
			return &orgdto.TeamVisibilityResult{Unrestricted: false, Members: []orgdto.TeamMemberRow{}}, nil
		}
		members, err := s.buildTeamMembers(ctx, nil, channelFilter)
		if err != nil {
			return nil, err
		}
		return &orgdto.TeamVisibilityResult{Unrestricted: true, Members: members}, nil
	}

	members, err := s.buildTeamMembers(ctx, &maxOrder, channelFilter)
	if err != nil {
		return nil, err
	}
	return &orgdto.TeamVisibilityResult{Unrestricted: false, MaxOrder: &maxOrder, Members: members}, nil
}

// resolveUserOrder resolve order trên node cấp bậc của agent gắn với user.
// resolved = false khi bất kỳ mắt xích nào của chuỗi không tồn tại.
func (s *ScopeService) resolveUserOrder(ctx context.Context, userID primitive.ObjectID) (int, bool, error) {
	agent, err := s.agentService.FindByUserId(ctx, userID)
	if err != nil {
		if err == common.ErrNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}

	designation, err := s.designationService.FindOne(ctx, bson.M{"_id": agent.DesignationID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}

	node, err := s.hierarchyService.FindOne(ctx, bson.M{"_id": designation.HierarchyID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}

	return node.Order, true, nil
}

// buildTeamMembers xây các dòng kết quả denormalize.
// maxOrder = nil nghĩa là không giới hạn; channelFilter = nil nghĩa là mọi channel.
func (s *ScopeService) buildTeamMembers(ctx context.Context, maxOrder *int, channelFilter *primitive.ObjectID) ([]orgdto.TeamMemberRow, error) {
	// Hai query tuần tự + lọc/join trong bộ nhớ thay vì một pipeline aggregation
	nodeFilter := bson.M{"isDeleted": false}
	allNodes, err := s.hierarchyService.Find(ctx, nodeFilter, nil)
	if err != nil && err != common.ErrNotFound {
		return nil, err
	}

	visible := allNodes
	if maxOrder != nil {
		visible = NodesAtOrBelowOrder(allNodes, *maxOrder)
	}
	if channelFilter != nil {
		filtered := make([]models.Hierarchy, 0, len(visible))
		for _, node := range visible {
			if node.ChannelID == *channelFilter {
				filtered = append(filtered, node)
			}
		}
		visible = filtered
	}
	if len(visible) == 0 {
		return []orgdto.TeamMemberRow{}, nil
	}

	nodeByID := make(map[primitive.ObjectID]models.Hierarchy, len(allNodes))
	for _, node := range allNodes {
		nodeByID[node.ID] = node
	}

	visibleIDs := make([]primitive.ObjectID, 0, len(visible))
	for _, node := range visible {
		visibleIDs = append(visibleIDs, node.ID)
	}

	designations, err := s.designationService.FindByHierarchyIds(ctx, visibleIDs)
	if err != nil {
		return nil, err
	}
	if len(designations) == 0 {
		return []orgdto.TeamMemberRow{}, nil
	}
	designationByID := make(map[primitive.ObjectID]models.Designation, len(designations))
	designationIDs := make([]primitive.ObjectID, 0, len(designations))
	for _, d := range designations {
		designationByID[d.ID] = d
		designationIDs = append(designationIDs, d.ID)
	}

	agents, err := s.agentService.FindByDesignationIds(ctx, designationIDs)
	if err != nil {
		return nil, err
	}

	channelNameByID, err := s.channelNames(ctx)
	if err != nil {
		return nil, err
	}

	managerByHierarchy, err := s.resolveManagers(ctx, visible)
	if err != nil {
		return nil, err
	}

	rows := make([]orgdto.TeamMemberRow, 0, len(agents))
	for _, agent := range agents {
		designation, ok := designationByID[agent.DesignationID]
		if !ok {
			continue
		}
		node, ok := nodeByID[designation.HierarchyID]
		if !ok {
			continue
		}

		row := orgdto.TeamMemberRow{
			AgentID:            agent.ID.Hex(),
			FullName:           AgentFullName(agent),
			AgentStatus:        agent.AgentStatus,
			ChannelID:          agent.ChannelID.Hex(),
			ChannelName:        channelNameByID[agent.ChannelID],
			DesignationID:      designation.ID.Hex(),
			DesignationName:    designation.Name,
			HierarchyID:        node.ID.Hex(),
			HierarchyName:      node.Name,
			HierarchyLevelCode: node.LevelCode,
			HierarchyOrder:     node.Order,
		}
		if manager, ok := managerByHierarchy[node.ID]; ok {
			row.ManagerAgentID = manager.ID.Hex()
			row.ManagerFullName = AgentFullName(manager)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].HierarchyOrder != rows[j].HierarchyOrder {
			return rows[i].HierarchyOrder < rows[j].HierarchyOrder
		}
		return rows[i].FullName < rows[j].FullName
	})
	return rows, nil
}

// channelNames map tên channel chưa xóa mềm theo ID
func (s *ScopeService) channelNames(ctx context.Context) (map[primitive.ObjectID]string, error) {
	channels, err := s.channelService.Find(ctx, bson.M{"isDeleted": false}, nil)
	if err != nil && err != common.ErrNotFound {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(channels))
	for _, channel := range channels {
		names[channel.ID] = channel.Name
	}
	return names, nil
}

// resolveManagers tìm quản lý trực tiếp cho từng node: agent active đầu tiên (theo tên)
// giữ một chức danh trên node cha của node đó.
func (s *ScopeService) resolveManagers(ctx context.Context, nodes []models.Hierarchy) (map[primitive.ObjectID]models.Agent, error) {
	parentIDs := make([]primitive.ObjectID, 0, len(nodes))
	seen := make(map[primitive.ObjectID]bool, len(nodes))
	for _, node := range nodes {
		if node.ParentID == nil || node.ParentID.IsZero() {
			continue
		}
		if !seen[*node.ParentID] {
			seen[*node.ParentID] = true
			parentIDs = append(parentIDs, *node.ParentID)
		}
	}
	if len(parentIDs) == 0 {
		return map[primitive.ObjectID]models.Agent{}, nil
	}

	parentDesignations, err := s.designationService.FindByHierarchyIds(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	if len(parentDesignations) == 0 {
		return map[primitive.ObjectID]models.Agent{}, nil
	}

	designationIDs := make([]primitive.ObjectID, 0, len(parentDesignations))
	hierarchyByDesignation := make(map[primitive.ObjectID]primitive.ObjectID, len(parentDesignations))
	for _, d := range parentDesignations {
		designationIDs = append(designationIDs, d.ID)
		hierarchyByDesignation[d.ID] = d.HierarchyID
	}

	managers, err := s.agentService.FindActiveByDesignationIds(ctx, designationIDs)
	if err != nil {
		return nil, err
	}

	// Gom agent theo node cha, chọn agent đầu tiên theo tên cho mỗi node
	byParent := make(map[primitive.ObjectID][]models.Agent)
	for _, agent := range managers {
		parentNodeID, ok := hierarchyByDesignation[agent.DesignationID]
		if !ok {
			continue
		}
		byParent[parentNodeID] = append(byParent[parentNodeID], agent)
	}

	result := make(map[primitive.ObjectID]models.Agent, len(nodes))
	for _, node := range nodes {
		if node.ParentID == nil || node.ParentID.IsZero() {
			continue
		}
		candidates := byParent[*node.ParentID]
		if len(candidates) == 0 {
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return AgentFullName(candidates[i]) < AgentFullName(candidates[j])
		})
		result[node.ID] = candidates[0]
	}
	return result, nil
}
