package orghdl

import (
	"fmt"

	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
	"salesverse/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ScopeHandler xử lý các route resolve phạm vi nhìn thấy trong cây tổ chức
type ScopeHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	ScopeService *orgsvc.ScopeService
}

// NewScopeHandler tạo instance mới của ScopeHandler
func NewScopeHandler() (*ScopeHandler, error) {
	scopeService, err := orgsvc.NewScopeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create scope service: %v", err)
	}
	return &ScopeHandler{
		BaseHandler:  &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		ScopeService: scopeService,
	}, nil
}

// HandleResolveBelowAgent trả về các cặp (cấp bậc, chức danh) thấp hơn cấp bậc của agent.
// GET /scope/below-agent/:agentId
func (h *ScopeHandler) HandleResolveBelowAgent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID := c.Params("agentId")
		rows, err := h.ScopeService.ResolveBelowAgent(c.Context(), agentID)
		if err == nil {
			logger.LogScope("below_agent", c, map[string]interface{}{
				"agent_id":  agentID,
				"row_count": len(rows),
			})
		}
		h.HandleResponse(c, fiber.Map{"hierarchies": rows}, err)
		return nil
	})
}

// HandleResolveAgentsBelowDesignation trả về các agent active dưới một chức danh.
// GET /scope/agents-below-designation?channelId=...&designationName=...
func (h *ScopeHandler) HandleResolveAgentsBelowDesignation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID := c.Query("channelId")
		designationName := c.Query("designationName")
		rows, err := h.ScopeService.ResolveAgentsBelowDesignation(c.Context(), channelID, designationName)
		if err == nil {
			logger.LogScope("agents_below_designation", c, map[string]interface{}{
				"channel_id":       channelID,
				"designation_name": designationName,
				"row_count":        len(rows),
			})
		}
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleResolveTeamVisibility trả về phạm vi team theo trường order.
// GET /scope/team?userId=...&channelId=... (channelId tùy chọn)
func (h *ScopeHandler) HandleResolveTeamVisibility(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Query("userId")
		channelID := c.Query("channelId")
		result, err := h.ScopeService.ResolveTeamVisibility(c.Context(), userID, channelID)
		if err == nil {
			logger.LogScope("team_visibility", c, map[string]interface{}{
				"user_id":      userID,
				"channel_id":   channelID,
				"unrestricted": result.Unrestricted,
				"member_count": len(result.Members),
			})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}
