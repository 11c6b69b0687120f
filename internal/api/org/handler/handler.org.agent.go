package orghdl

import (
	"fmt"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
)

// AgentHandler xử lý các route liên quan đến nhân sự bán hàng
type AgentHandler struct {
	*basehdl.BaseHandler[models.Agent, orgdto.AgentCreateInput, orgdto.AgentUpdateInput]
	AgentService *orgsvc.AgentService
}

// NewAgentHandler tạo instance mới của AgentHandler
func NewAgentHandler() (*AgentHandler, error) {
	agentService, err := orgsvc.NewAgentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create agent service: %v", err)
	}
	return &AgentHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Agent, orgdto.AgentCreateInput, orgdto.AgentUpdateInput](agentService),
		AgentService: agentService,
	}, nil
}
