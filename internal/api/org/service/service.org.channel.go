// Package orgsvc - các service thuộc domain org.
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

// ChannelService là cấu trúc chứa các phương thức liên quan đến kênh bán hàng
type ChannelService struct {
	*basesvc.BaseServiceMongoImpl[models.Channel]
}

// NewChannelService tạo mới ChannelService
func NewChannelService() (*ChannelService, error) {
	channelCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Channels)
	if !exist {
		return nil, fmt.Errorf("failed to get channels collection: %v", common.ErrNotFound)
	}
	return &ChannelService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Channel](channelCollection),
	}, nil
}

// FindActiveById tìm channel theo ID, loại trừ các channel đã xóa mềm
func (s *ChannelService) FindActiveById(ctx context.Context, id primitive.ObjectID) (models.Channel, error) {
	filter := bson.M{"_id": id, "isDeleted": false}
	return s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
}

// softDelete đánh dấu xóa mềm một channel
func (s *ChannelService) softDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": utility.CurrentTimeInMilli(),
	}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// DeleteById override: kiểm tra ràng buộc rồi xóa mềm thay vì xóa vật lý
func (s *ChannelService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteChannel(ctx, id); err != nil {
		return err
	}
	return s.softDelete(ctx, id)
}

// DeleteOne override: xóa mềm document đầu tiên khớp filter
func (s *ChannelService) DeleteOne(ctx context.Context, filter interface{}) error {
	channel, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	return s.DeleteById(ctx, channel.ID)
}

// DeleteMany override: xóa mềm tất cả document khớp filter
func (s *ChannelService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	channels, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return 0, err
	}
	var deleted int64
	for _, channel := range channels {
		if err := s.DeleteById(ctx, channel.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// FindOneAndDelete override: xóa mềm và trả về document trước khi xóa
func (s *ChannelService) FindOneAndDelete(ctx context.Context, filter interface{}, opts *mongoopts.FindOneAndDeleteOptions) (models.Channel, error) {
	var zero models.Channel
	channel, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	if err := s.DeleteById(ctx, channel.ID); err != nil {
		return zero, err
	}
	return channel, nil
}
