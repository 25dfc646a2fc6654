// Package postgres implements the repository ports on PostgreSQL through
// gorm. Aggregates are mapped to flat record types and rehydrated through
// the Reconstitute constructors, so stored rows never re-run rule checks
// and never re-raise events.
package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pkgerrors "catalog-backend/pkg/errors"
)

// Open connects to PostgreSQL and migrates the catalog schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, pkgerrors.NewConnectionFailed("postgres", err)
	}

	if err := db.AutoMigrate(
		&categoryRecord{},
		&creatorRecord{},
		&productRecord{},
		&productCategoryRecord{},
	); err != nil {
		return nil, pkgerrors.NewDatabaseError("AutoMigrate", err)
	}

	return db, nil
}
