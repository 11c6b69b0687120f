package orghdl

import (
	"fmt"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
)

// HierarchyHandler xử lý các route liên quan đến node cấp bậc.
// Các ràng buộc create/update/delete (levelCode duy nhất, liên tục level cha-con,
// chặn xóa khi còn node con) nằm trong HierarchyService.
type HierarchyHandler struct {
	*basehdl.BaseHandler[models.Hierarchy, orgdto.HierarchyCreateInput, orgdto.HierarchyUpdateInput]
	HierarchyService *orgsvc.HierarchyService
}

// NewHierarchyHandler tạo instance mới của HierarchyHandler
func NewHierarchyHandler() (*HierarchyHandler, error) {
	hierarchyService, err := orgsvc.NewHierarchyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create hierarchy service: %v", err)
	}
	return &HierarchyHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.Hierarchy, orgdto.HierarchyCreateInput, orgdto.HierarchyUpdateInput](hierarchyService),
		HierarchyService: hierarchyService,
	}, nil
}
