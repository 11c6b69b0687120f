package global

import (
	"salesverse/config"
	"salesverse/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Org_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Org_CollectionName struct {
	Channels     string // Tên collection cho kênh bán hàng (tenant)
	Roles        string // Tên collection cho vai trò
	Hierarchies  string // Tên collection cho cấp bậc tổ chức
	Designations string // Tên collection cho chức danh
	Agents       string // Tên collection cho nhân sự bán hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                                   // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                  // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_Org_CollectionName = *new(MongoDB_Org_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
