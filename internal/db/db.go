package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/elite-booking/internal/config"
	"github.com/BruksfildServices01/elite-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if isPostgres(cfg.DBUrl) {
			sqlDB.SetMaxOpenConns(10)
			sqlDB.SetMaxIdleConns(5)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
			sqlDB.SetConnMaxIdleTime(10 * time.Minute)
		} else {
			// em SQLite cada conexão a :memory: enxerga um banco próprio;
			// uma conexão única mantém o estado compartilhado
			sqlDB.SetMaxOpenConns(1)
		}
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func open(dsn string) (*gorm.DB, error) {
	if isPostgres(dsn) {
		log.Println("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	}

	// SQLite puro-Go (driver modernc); o DSN padrão :memory: mantém todo o
	// estado em memória, como o deployment original
	log.Println("using SQLite:", dsn)
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Service{},
		&models.Barber{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.AvailabilitySlot{},
		&models.AuditLog{},
	)
}
