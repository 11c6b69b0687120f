package basesvc

import (
	"context"
	"fmt"
	"salesverse/internal/common"
	"salesverse/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiem tra co record nao trong collection khac dang tro toi record nay khong
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiem tra quan he voi filter tuy chinh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Khong tim thay collection '%s' de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Khong the xoa record vi co %d record trong collection '%s' dang tham chieu toi record nay", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount tra ve so luong record dang tham chieu toi record nay
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Khong tim thay collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteChannel kiem tra cac quan he cua Channel truoc khi xoa.
// Chi tinh cac record chua bi soft delete.
func ValidateBeforeDeleteChannel(ctx context.Context, channelID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Hierarchies, FieldName: "channelId", ErrorMessage: "Khong the xoa channel vi co %d node phan cap truc thuoc. Vui long xoa cac node truoc."},
		{CollectionName: global.MongoDB_ColNames.Designations, FieldName: "channelId", ErrorMessage: "Khong the xoa channel vi co %d chuc danh truc thuoc. Vui long xoa cac chuc danh truoc."},
	}
	for _, check := range checks {
		filter := bson.M{check.FieldName: channelID, "isDeleted": false}
		if err := CheckRelationshipExistsWithFilter(ctx, filter, []RelationshipCheck{check}); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBeforeDeleteRole kiem tra cac quan he cua Role truoc khi xoa
func ValidateBeforeDeleteRole(ctx context.Context, roleID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Designations, FieldName: "roleId", ErrorMessage: "Khong the xoa role vi co %d chuc danh dang su dung role nay. Vui long go role khoi cac chuc danh truoc."},
	}
	filter := bson.M{"roleId": roleID, "isDeleted": false}
	return CheckRelationshipExistsWithFilter(ctx, filter, checks)
}

// ValidateBeforeDeleteHierarchy kiem tra cac quan he cua node phan cap truoc khi xoa.
// Node co con chua bi xoa hoac dang duoc chuc danh tham chieu thi khong duoc xoa.
func ValidateBeforeDeleteHierarchy(ctx context.Context, hierarchyID primitive.ObjectID) error {
	childCheck := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Hierarchies, FieldName: "parentId", ErrorMessage: "Khong the xoa node vi co %d node con truc thuoc. Vui long xoa cac node con truoc."},
	}
	childFilter := bson.M{"parentId": hierarchyID, "isDeleted": false}
	if err := CheckRelationshipExistsWithFilter(ctx, childFilter, childCheck); err != nil {
		return err
	}

	designationCheck := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Designations, FieldName: "hierarchyId", ErrorMessage: "Khong the xoa node vi co %d chuc danh dang gan voi node nay. Vui long xoa cac chuc danh truoc."},
	}
	designationFilter := bson.M{"hierarchyId": hierarchyID, "isDeleted": false}
	return CheckRelationshipExistsWithFilter(ctx, designationFilter, designationCheck)
}

// ValidateBeforeDeleteDesignation kiem tra cac quan he cua chuc danh truoc khi xoa
func ValidateBeforeDeleteDesignation(ctx context.Context, designationID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Agents, FieldName: "designationId", ErrorMessage: "Khong the xoa chuc danh vi co %d agent dang giu chuc danh nay. Vui long chuyen cac agent truoc."},
	}
	filter := bson.M{"designationId": designationID, "isDeleted": false}
	return CheckRelationshipExistsWithFilter(ctx, filter, checks)
}
