// Package database - Index bổ sung cho module org (partial, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"salesverse/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrgAdditionalIndexes tạo các index bổ sung cho module org.
// Gọi sau CreateIndexes cho từng collection org.
func CreateOrgAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// hierarchies: (channelId, levelCode) unique trên các document chưa xóa mềm
	// Backstop cho check trùng levelCode ở tầng service khi có 2 create đồng thời
	hierarchies := db.Collection(global.MongoDB_ColNames.Hierarchies)
	if _, err := hierarchies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "channelId", Value: 1},
			{Key: "levelCode", Value: 1},
		},
		Options: options.Index().
			SetName("hierarchy_channel_levelcode").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"isDeleted": false}),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hierarchies: (channelId, parentId) — đếm con khi xóa node
	if _, err := hierarchies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "channelId", Value: 1},
			{Key: "parentId", Value: 1},
		},
		Options: options.Index().SetName("hierarchy_channel_parent").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// hierarchies: (order) — resolve phạm vi theo order trên toàn bộ channels
	if _, err := hierarchies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "order", Value: 1},
		},
		Options: options.Index().SetName("hierarchy_order"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// designations: (channelId, name) — tìm chức danh theo tên trong channel
	designations := db.Collection(global.MongoDB_ColNames.Designations)
	if _, err := designations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "channelId", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("designation_channel_name"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// designations: (hierarchyId) — join chức danh theo node khi resolve phạm vi
	if _, err := designations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "hierarchyId", Value: 1},
		},
		Options: options.Index().SetName("designation_hierarchy"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// agents: (designationId, agentStatus) — lọc agent active theo chức danh
	agents := db.Collection(global.MongoDB_ColNames.Agents)
	if _, err := agents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "designationId", Value: 1},
			{Key: "agentStatus", Value: 1},
		},
		Options: options.Index().SetName("agent_designation_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
