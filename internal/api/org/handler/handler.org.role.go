package orghdl

import (
	"fmt"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
)

// RoleHandler xử lý các route liên quan đến vai trò
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, orgdto.RoleCreateInput, orgdto.RoleUpdateInput]
	RoleService *orgsvc.RoleService
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := orgsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	return &RoleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Role, orgdto.RoleCreateInput, orgdto.RoleUpdateInput](roleService),
		RoleService: roleService,
	}, nil
}
