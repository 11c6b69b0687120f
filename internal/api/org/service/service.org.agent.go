package orgsvc

import (
	"context"
	"fmt"

	models "salesverse/internal/api/org/models"
	basesvc "salesverse/internal/api/base/service"
	"salesverse/internal/common"
	"salesverse/internal/global"
	"salesverse/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// AgentService là cấu trúc chứa các phương thức liên quan đến nhân sự bán hàng
type AgentService struct {
	*basesvc.BaseServiceMongoImpl[models.Agent]
	designationCollection *basesvc.BaseServiceMongoImpl[models.Designation]
}

// NewAgentService tạo mới AgentService
func NewAgentService() (*AgentService, error) {
	agentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Agents)
	if !exist {
		return nil, fmt.Errorf("failed to get agents collection: %v", common.ErrNotFound)
	}
	designationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Designations)
	if !exist {
		return nil, fmt.Errorf("failed to get designations collection: %v", common.ErrNotFound)
	}
	return &AgentService{
		BaseServiceMongoImpl:  basesvc.NewBaseServiceMongo[models.Agent](agentCollection),
		designationCollection: basesvc.NewBaseServiceMongo[models.Designation](designationCollection),
	}, nil
}

// validateDesignationRef kiểm tra chức danh tồn tại, chưa xóa mềm và thuộc đúng channel
func (s *AgentService) validateDesignationRef(ctx context.Context, channelID, designationID primitive.ObjectID) error {
	designation, err := s.designationCollection.FindOne(ctx, bson.M{"_id": designationID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Không tìm thấy chức danh với ID: %s", designationID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return err
	}
	if designation.ChannelID != channelID {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Chức danh không thuộc channel của agent",
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// InsertOne override: agent phải tham chiếu một chức danh hợp lệ trong cùng channel
func (s *AgentService) InsertOne(ctx context.Context, data models.Agent) (models.Agent, error) {
	if err := s.validateDesignationRef(ctx, data.ChannelID, data.DesignationID); err != nil {
		return data, err
	}
	if data.AgentStatus == "" {
		data.AgentStatus = models.AgentStatusActive
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindActiveById tìm agent theo ID, loại trừ đã xóa mềm
func (s *AgentService) FindActiveById(ctx context.Context, id primitive.ObjectID) (models.Agent, error) {
	filter := bson.M{"_id": id, "isDeleted": false}
	return s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
}

// FindByUserId tìm agent chưa xóa mềm theo tài khoản đăng nhập
func (s *AgentService) FindByUserId(ctx context.Context, userID primitive.ObjectID) (models.Agent, error) {
	filter := bson.M{"userId": userID, "isDeleted": false}
	return s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
}

// FindByDesignationIds lấy các agent chưa xóa mềm theo danh sách chức danh, không lọc trạng thái
func (s *AgentService) FindByDesignationIds(ctx context.Context, designationIDs []primitive.ObjectID) ([]models.Agent, error) {
	if len(designationIDs) == 0 {
		return []models.Agent{}, nil
	}
	filter := bson.M{
		"designationId": bson.M{"$in": designationIDs},
		"isDeleted":     false,
	}
	agents, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err == common.ErrNotFound {
		return []models.Agent{}, nil
	}
	return agents, err
}

// FindActiveByDesignationIds lấy các agent active, chưa xóa mềm theo danh sách chức danh
func (s *AgentService) FindActiveByDesignationIds(ctx context.Context, designationIDs []primitive.ObjectID) ([]models.Agent, error) {
	if len(designationIDs) == 0 {
		return []models.Agent{}, nil
	}
	filter := bson.M{
		"designationId": bson.M{"$in": designationIDs},
		"agentStatus":   models.AgentStatusActive,
		"isDeleted":     false,
	}
	agents, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err == common.ErrNotFound {
		return []models.Agent{}, nil
	}
	return agents, err
}

// softDelete đánh dấu xóa mềm một agent. Xóa agent không cascade sang entity khác.
func (s *AgentService) softDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": utility.CurrentTimeInMilli(),
	}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// DeleteById override: xóa mềm
func (s *AgentService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.softDelete(ctx, id)
}

// DeleteOne override
func (s *AgentService) DeleteOne(ctx context.Context, filter interface{}) error {
	agent, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	return s.softDelete(ctx, agent.ID)
}

// DeleteMany override
func (s *AgentService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	agents, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return 0, err
	}
	var deleted int64
	for _, agent := range agents {
		if err := s.softDelete(ctx, agent.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// FindOneAndDelete override
func (s *AgentService) FindOneAndDelete(ctx context.Context, filter interface{}, opts *mongoopts.FindOneAndDeleteOptions) (models.Agent, error) {
	var zero models.Agent
	agent, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	if err := s.softDelete(ctx, agent.ID); err != nil {
		return zero, err
	}
	return agent, nil
}
