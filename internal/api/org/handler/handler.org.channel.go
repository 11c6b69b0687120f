// Package orghdl chứa các handler HTTP cho domain org.
package orghdl

import (
	"fmt"

	orgdto "salesverse/internal/api/org/dto"
	models "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basehdl "salesverse/internal/api/base/handler"
)

// ChannelHandler xử lý các route liên quan đến kênh bán hàng
type ChannelHandler struct {
	*basehdl.BaseHandler[models.Channel, orgdto.ChannelCreateInput, orgdto.ChannelUpdateInput]
	ChannelService *orgsvc.ChannelService
}

// NewChannelHandler tạo instance mới của ChannelHandler
func NewChannelHandler() (*ChannelHandler, error) {
	channelService, err := orgsvc.NewChannelService()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel service: %v", err)
	}
	return &ChannelHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Channel, orgdto.ChannelCreateInput, orgdto.ChannelUpdateInput](channelService),
		ChannelService: channelService,
	}, nil
}
