package main

import (
	"context"
	"fmt"

	orgmodels "salesverse/internal/api/org/models"
	orgsvc "salesverse/internal/api/org/service"
	basesvc "salesverse/internal/api/base/service"
	"salesverse/internal/common"
	"salesverse/internal/global"
	"salesverse/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData khởi tạo dữ liệu mặc định: channel hệ thống, các vai trò cơ bản và node gốc.
// Chỉ chạy khi INITMODE=true. Dữ liệu hệ thống được đánh dấu IsSystem và chỉ insert được
// qua context cho phép (WithSystemDataInsertAllowed).
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("Init mode disabled, skipping default data")
		return
	}

	log.Info("Starting InitDefaultData...")
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	if err := initDefaultChannel(ctx); err != nil {
		log.Warnf("Failed to initialize default channel: %v", err)
	} else {
		log.Info("Default channel initialized")
	}

	if err := initDefaultRoles(ctx); err != nil {
		log.Warnf("Failed to initialize default roles: %v", err)
	} else {
		log.Info("Default roles initialized")
	}

	if err := initDefaultHierarchy(ctx); err != nil {
		log.Warnf("Failed to initialize default hierarchy: %v", err)
	} else {
		log.Info("Default hierarchy initialized")
	}

	log.Info("InitDefaultData completed")
}

// initDefaultChannel tạo channel mặc định nếu chưa có
func initDefaultChannel(ctx context.Context) error {
	channelService, err := orgsvc.NewChannelService()
	if err != nil {
		return err
	}

	_, err = channelService.FindOne(ctx, bson.M{"code": "DEFAULT"}, nil)
	if err == nil {
		return nil // Đã tồn tại
	}
	if err != common.ErrNotFound {
		return err
	}

	_, err = channelService.InsertOne(ctx, orgmodels.Channel{
		Name:        "Kênh mặc định",
		Code:        "DEFAULT",
		Description: "Channel mặc định do hệ thống khởi tạo",
		Status:      orgmodels.ChannelStatusActive,
		IsSystem:    true,
	})
	return err
}

// initDefaultHierarchy tạo node gốc cho channel mặc định nếu channel chưa có node nào.
// Node gốc đi qua HierarchyService.InsertOne nên vẫn chịu đủ ràng buộc lifecycle.
func initDefaultHierarchy(ctx context.Context) error {
	channelService, err := orgsvc.NewChannelService()
	if err != nil {
		return err
	}
	hierarchyService, err := orgsvc.NewHierarchyService()
	if err != nil {
		return err
	}

	channel, err := channelService.FindOne(ctx, bson.M{"code": "DEFAULT"}, nil)
	if err != nil {
		return err
	}

	existing, err := hierarchyService.FindActiveByChannel(ctx, channel.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Channel đã có cây cấp bậc
	}

	rootLevel := global.MongoDB_ServerConfig.Hierarchy_RootLevel
	_, err = hierarchyService.InsertOne(ctx, orgmodels.Hierarchy{
		ChannelID: channel.ID,
		Name:      "Cấp gốc",
		Describe:  "Node gốc do hệ thống khởi tạo",
		LevelCode: fmt.Sprintf("%02d", rootLevel),
		Level:     rootLevel,
		Status:    orgmodels.HierarchyStatusActive,
	})
	return err
}

// initDefaultRoles tạo các vai trò cơ bản nếu chưa có
func initDefaultRoles(ctx context.Context) error {
	roleService, err := orgsvc.NewRoleService()
	if err != nil {
		return err
	}

	defaults := []orgmodels.Role{
		{Name: "Quản lý", Code: "MANAGER", Describe: "Quản lý đội ngũ bán hàng", IsSystem: true},
		{Name: "Tư vấn viên", Code: "ADVISOR", Describe: "Nhân sự tư vấn bán hàng", IsSystem: true},
	}

	for _, role := range defaults {
		_, err := roleService.FindOne(ctx, bson.M{"code": role.Code}, nil)
		if err == nil {
			continue
		}
		if err != common.ErrNotFound {
			return err
		}
		if _, err := roleService.InsertOne(ctx, role); err != nil {
			return err
		}
	}
	return nil
}
