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

// DesignationService là cấu trúc chứa các phương thức liên quan đến chức danh
type DesignationService struct {
	*basesvc.BaseServiceMongoImpl[models.Designation]
	hierarchyCollection *basesvc.BaseServiceMongoImpl[models.Hierarchy]
}

// NewDesignationService tạo mới DesignationService
func NewDesignationService() (*DesignationService, error) {
	designationCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Designations)
	if !exist {
		return nil, fmt.Errorf("failed to get designations collection: %v", common.ErrNotFound)
	}
	hierarchyCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Hierarchies)
	if !exist {
		return nil, fmt.Errorf("failed to get hierarchies collection: %v", common.ErrNotFound)
	}
	return &DesignationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Designation](designationCollection),
		hierarchyCollection:  basesvc.NewBaseServiceMongo[models.Hierarchy](hierarchyCollection),
	}, nil
}

// validateHierarchyRef kiểm tra node cấp bậc tồn tại, chưa xóa mềm và thuộc đúng channel
func (s *DesignationService) validateHierarchyRef(ctx context.Context, channelID, hierarchyID primitive.ObjectID) error {
	node, err := s.hierarchyCollection.FindOne(ctx, bson.M{"_id": hierarchyID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Không tìm thấy cấp bậc với ID: %s", hierarchyID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return err
	}
	if node.ChannelID != channelID {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Cấp bậc không thuộc channel của chức danh",
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// InsertOne override: chức danh phải tham chiếu một node cấp bậc hợp lệ trong cùng channel
func (s *DesignationService) InsertOne(ctx context.Context, data models.Designation) (models.Designation, error) {
	if err := s.validateHierarchyRef(ctx, data.ChannelID, data.HierarchyID); err != nil {
		return data, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindByName tìm chức danh theo tên chính xác trong một channel, loại trừ đã xóa mềm
func (s *DesignationService) FindByName(ctx context.Context, channelID primitive.ObjectID, name string) (models.Designation, error) {
	filter := bson.M{"channelId": channelID, "name": name, "isDeleted": false}
	return s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
}

// FindByHierarchyIds lấy tất cả chức danh chưa xóa mềm gắn với danh sách node cấp bậc
func (s *DesignationService) FindByHierarchyIds(ctx context.Context, hierarchyIDs []primitive.ObjectID) ([]models.Designation, error) {
	if len(hierarchyIDs) == 0 {
		return []models.Designation{}, nil
	}
	filter := bson.M{"hierarchyId": bson.M{"$in": hierarchyIDs}, "isDeleted": false}
	designations, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err == common.ErrNotFound {
		return []models.Designation{}, nil
	}
	return designations, err
}

// softDelete đánh dấu xóa mềm một chức danh
func (s *DesignationService) softDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": utility.CurrentTimeInMilli(),
	}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// DeleteById override: chặn xóa khi còn nhân sự giữ chức danh, sau đó xóa mềm
func (s *DesignationService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteDesignation(ctx, id); err != nil {
		return err
	}
	return s.softDelete(ctx, id)
}

// DeleteOne override
func (s *DesignationService) DeleteOne(ctx context.Context, filter interface{}) error {
	designation, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	return s.DeleteById(ctx, designation.ID)
}

// DeleteMany override
func (s *DesignationService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	designations, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return 0, err
	}
	var deleted int64
	for _, designation := range designations {
		if err := s.DeleteById(ctx, designation.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// FindOneAndDelete override
func (s *DesignationService) FindOneAndDelete(ctx context.Context, filter interface{}, opts *mongoopts.FindOneAndDeleteOptions) (models.Designation, error) {
	var zero models.Designation
	designation, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	if err := s.DeleteById(ctx, designation.ID); err != nil {
		return zero, err
	}
	return designation, nil
}
