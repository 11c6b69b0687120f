package orgsvc

import (
	"context"
	"fmt"
	"strings"
	"sync"

	models "salesverse/internal/api/org/models"
	basesvc "salesverse/internal/api/base/service"
	"salesverse/internal/common"
	"salesverse/internal/global"
	"salesverse/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// hierarchyKeyLocks khóa theo (channelId, levelCode) để serialize các mutation trên cùng một mã cấp bậc.
// Hai create đồng thời cùng levelCode trong một channel phải đi qua cùng một khóa,
// tránh cả hai cùng qua được bước check trùng trước khi ghi. Unique index (channelId, levelCode)
// trong database là lớp chặn cuối cho trường hợp nhiều instance.
var hierarchyKeyLocks sync.Map

func lockHierarchyKey(channelID primitive.ObjectID, levelCode string) *sync.Mutex {
	key := channelID.Hex() + "|" + levelCode
	actual, _ := hierarchyKeyLocks.LoadOrStore(key, &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	return mu
}

// NormalizeLevelCode chuẩn hóa mã cấp bậc: trim khoảng trắng và uppercase
func NormalizeLevelCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// HierarchyService quản lý vòng đời node cấp bậc: create/update/delete với các ràng buộc
// về levelCode duy nhất trong channel, liên tục level cha-con và chặn xóa khi còn node con.
type HierarchyService struct {
	*basesvc.BaseServiceMongoImpl[models.Hierarchy]
	channelService *ChannelService
}

// NewHierarchyService tạo mới HierarchyService
func NewHierarchyService() (*HierarchyService, error) {
	hierarchyCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Hierarchies)
	if !exist {
		return nil, fmt.Errorf("failed to get hierarchies collection: %v", common.ErrNotFound)
	}
	channelService, err := NewChannelService()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel service: %v", err)
	}
	return &HierarchyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Hierarchy](hierarchyCollection),
		channelService:       channelService,
	}, nil
}

// rootLevel trả về level cấu hình cho node gốc (node không có parent)
func (s *HierarchyService) rootLevel() int {
	if global.MongoDB_ServerConfig != nil {
		return global.MongoDB_ServerConfig.Hierarchy_RootLevel
	}
	return 1
}

// defaultOrder trả về giá trị order mặc định khi tạo node
func (s *HierarchyService) defaultOrder() int {
	if global.MongoDB_ServerConfig != nil {
		return global.MongoDB_ServerConfig.Hierarchy_DefaultOrder
	}
	return 0
}

// levelCodeExists kiểm tra levelCode đã tồn tại trong channel (không tính node đã xóa mềm).
// excludeID khác Nil thì bỏ qua chính node đó (dùng khi update).
func (s *HierarchyService) levelCodeExists(ctx context.Context, channelID primitive.ObjectID, levelCode string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"channelId": channelID,
		"levelCode": levelCode,
		"isDeleted": false,
	}
	if excludeID != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// validateParent kiểm tra liên tục level cha-con.
// Parent phải tồn tại, chưa xóa mềm, cùng channel và level của node = level cha + 1.
// Node không có parent phải có level bằng root level cấu hình.
func (s *HierarchyService) validateParent(ctx context.Context, channelID primitive.ObjectID, parentID *primitive.ObjectID, level int) error {
	if parentID == nil || parentID.IsZero() {
		if level != s.rootLevel() {
			return common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Node gốc phải có level bằng %d, nhận được %d", s.rootLevel(), level),
				common.StatusBadRequest,
				nil,
			)
		}
		return nil
	}

	parent, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"_id": *parentID, "isDeleted": false}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Không tìm thấy node cha với ID: %s", parentID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return err
	}
	if parent.ChannelID != channelID {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Node cha không thuộc cùng channel",
			common.StatusConflict,
			nil,
		)
	}
	if level != parent.Level+1 {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Level của node con phải bằng level cha + 1 (%d), nhận được %d", parent.Level+1, level),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// InsertOne override: toàn bộ ràng buộc tạo node chạy trong khóa (channelId, levelCode)
func (s *HierarchyService) InsertOne(ctx context.Context, data models.Hierarchy) (models.Hierarchy, error) {
	var zero models.Hierarchy

	data.LevelCode = NormalizeLevelCode(data.LevelCode)
	if data.LevelCode == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Mã cấp bậc không được để trống", common.StatusBadRequest, nil)
	}
	if data.Order == 0 {
		data.Order = s.defaultOrder()
	}
	if data.Status == "" {
		data.Status = models.HierarchyStatusActive
	}

	mu := lockHierarchyKey(data.ChannelID, data.LevelCode)
	defer mu.Unlock()

	// Channel phải tồn tại và chưa xóa mềm
	if _, err := s.channelService.FindActiveById(ctx, data.ChannelID); err != nil {
		if err == common.ErrNotFound {
			return zero, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Không tìm thấy channel với ID: %s", data.ChannelID.Hex()),
				common.StatusNotFound,
				nil,
			)
		}
		return zero, err
	}

	// levelCode duy nhất trong channel
	exists, err := s.levelCodeExists(ctx, data.ChannelID, data.LevelCode, primitive.NilObjectID)
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Mã cấp bậc '%s' đã tồn tại trong channel", data.LevelCode),
			common.StatusConflict,
			nil,
		)
	}

	// Liên tục level cha-con
	if err := s.validateParent(ctx, data.ChannelID, data.ParentID, data.Level); err != nil {
		return zero, err
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById override: chỉ kiểm tra lại ràng buộc cho các trường thực sự thay đổi.
// Node đã xóa mềm coi như không tồn tại.
func (s *HierarchyService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Hierarchy, error) {
	var zero models.Hierarchy

	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}, nil)
	if err != nil {
		return zero, err
	}

	updateData, err := basesvc.ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}

	// Channel của node không được thay đổi
	if _, ok := updateData.Set["channelId"]; ok {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể chuyển node cấp bậc sang channel khác",
			common.StatusBadRequest,
			nil,
		)
	}

	// Giá trị hiệu lực sau update
	newLevelCode := existing.LevelCode
	levelCodeChanged := false
	if raw, ok := updateData.Set["levelCode"]; ok {
		str, ok := raw.(string)
		if !ok {
			return zero, common.ErrInvalidFormat
		}
		newLevelCode = NormalizeLevelCode(str)
		if newLevelCode == "" {
			return zero, common.NewError(common.ErrCodeValidationInput, "Mã cấp bậc không được để trống", common.StatusBadRequest, nil)
		}
		updateData.Set["levelCode"] = newLevelCode
		levelCodeChanged = newLevelCode != existing.LevelCode
	}

	newLevel := existing.Level
	levelChanged := false
	if raw, ok := updateData.Set["level"]; ok {
		newLevel = int(utility.P2Int64(raw))
		levelChanged = newLevel != existing.Level
	}

	newParentID := existing.ParentID
	parentChanged := false
	if raw, ok := updateData.Set["parentId"]; ok {
		switch v := raw.(type) {
		case primitive.ObjectID:
			newParentID = &v
		case *primitive.ObjectID:
			newParentID = v
		case string:
			oid, err := primitive.ObjectIDFromHex(v)
			if err != nil {
				return zero, common.ErrInvalidFormat
			}
			newParentID = &oid
			updateData.Set["parentId"] = oid
		case nil:
			newParentID = nil
		default:
			return zero, common.ErrInvalidFormat
		}
		parentChanged = true
	}

	mu := lockHierarchyKey(existing.ChannelID, newLevelCode)
	defer mu.Unlock()

	if levelCodeChanged {
		exists, err := s.levelCodeExists(ctx, existing.ChannelID, newLevelCode, existing.ID)
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Mã cấp bậc '%s' đã tồn tại trong channel", newLevelCode),
				common.StatusConflict,
				nil,
			)
		}
	}

	if levelChanged || parentChanged {
		if err := s.validateParent(ctx, existing.ChannelID, newParentID, newLevel); err != nil {
			return zero, err
		}
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// validateBeforeDelete chặn xóa khi còn node con hoặc chức danh chưa xóa mềm tham chiếu node
func (s *HierarchyService) validateBeforeDelete(ctx context.Context, id primitive.ObjectID) error {
	childCount, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"parentId": id, "isDeleted": false})
	if err != nil {
		return err
	}
	if childCount > 0 {
		return common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể xóa node vì có %d node con trực thuộc. Vui lòng xóa các node con trước.", childCount),
			common.StatusConflict,
			nil,
		)
	}
	return basesvc.ValidateBeforeDeleteHierarchy(ctx, id)
}

// softDelete đánh dấu xóa mềm một node cấp bậc
func (s *HierarchyService) softDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"deletedAt": utility.CurrentTimeInMilli(),
	}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
	return err
}

// DeleteById override: guard node con rồi xóa mềm, chạy trong khóa (channelId, levelCode)
func (s *HierarchyService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"_id": id, "isDeleted": false}, nil)
	if err != nil {
		return err
	}

	mu := lockHierarchyKey(existing.ChannelID, existing.LevelCode)
	defer mu.Unlock()

	if err := s.validateBeforeDelete(ctx, id); err != nil {
		return err
	}
	return s.softDelete(ctx, id)
}

// DeleteOne override
func (s *HierarchyService) DeleteOne(ctx context.Context, filter interface{}) error {
	node, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	return s.DeleteById(ctx, node.ID)
}

// DeleteMany override
func (s *HierarchyService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	nodes, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil && err != common.ErrNotFound {
		return 0, err
	}
	var deleted int64
	for _, node := range nodes {
		if err := s.DeleteById(ctx, node.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// FindOneAndDelete override
func (s *HierarchyService) FindOneAndDelete(ctx context.Context, filter interface{}, opts *mongoopts.FindOneAndDeleteOptions) (models.Hierarchy, error) {
	var zero models.Hierarchy
	node, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return zero, err
	}
	if err := s.DeleteById(ctx, node.ID); err != nil {
		return zero, err
	}
	return node, nil
}

// FindActiveByChannel lấy tất cả node chưa xóa mềm của một channel
func (s *HierarchyService) FindActiveByChannel(ctx context.Context, channelID primitive.ObjectID) ([]models.Hierarchy, error) {
	filter := bson.M{"channelId": channelID, "isDeleted": false}
	nodes, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err == common.ErrNotFound {
		return []models.Hierarchy{}, nil
	}
	return nodes, err
}
