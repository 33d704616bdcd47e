package db

import (
	"fmt"
	"log"

	"github.com/improvemycity/portal-go/config"
	"github.com/improvemycity/portal-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func dsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost, config.DbPort, config.DbUser, config.DbPassword, config.DbName,
	)
}

// Init opens the configured postgres database and runs migrations.
func Init() {
	gormDB, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{})
	if err != nil {
		log.Fatal("database connection failed:", err)
	}
	if err := Migrate(gormDB); err != nil {
		log.Fatal("database migration failed:", err)
	}
	DB = gormDB
	log.Printf("connected to database %s", config.DbName)
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubCategory{},
		&models.Complaint{},
		&models.SupportTicket{},
		&models.Review{},
		&models.AuditLog{},
	)
}

// InitWithGormDB swaps in an externally constructed DB; used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
