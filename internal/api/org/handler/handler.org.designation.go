package orghdl

import (
	"fmt"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
)

// DesignationHandler xử lý các route liên quan đến chức danh
type DesignationHandler struct {
	*basehdl.BaseHandler[models.Designation, orgdto.DesignationCreateInput, orgdto.DesignationUpdateInput]
	DesignationService *orgsvc.DesignationService
}

// NewDesignationHandler tạo instance mới của DesignationHandler
func NewDesignationHandler() (*DesignationHandler, error) {
	designationService, err := orgsvc.NewDesignationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create designation service: %v", err)
	}
	return &DesignationHandler{
		BaseHandler:        basehdl.NewBaseHandler[models.Designation, orgdto.DesignationCreateInput, orgdto.DesignationUpdateInput](designationService),
		DesignationService: designationService,
	}, nil
}
