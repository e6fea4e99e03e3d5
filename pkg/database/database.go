package database

import (
	"fmt"
	"log"

	"institute_backend/internal/config"
	"institute_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate runs schema migrations for every model. Shared with the test
// database setup so tests migrate the same schema the server runs on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Trade{},
		&model.Course{},
		&model.Fee{},
		&model.Expense{},
		&model.Enquiry{},
		&model.Certificate{},
		&model.GalleryItem{},
		&model.Exam{},
		&model.ExamQuestion{},
		&model.ExamOption{},
		&model.ExamAttempt{},
		&model.ExamAnswer{},
	)
}
