package database

import (
	"fmt"
	"log"

	"github.com/killallgit/annotator-api/internal/models"
)

// TableStatus describes one application table
type TableStatus struct {
	Table  string `json:"table"`
	Exists bool   `json:"exists"`
	Rows   int64  `json:"rows"`
}

// Migrate creates or updates every application table
func (db *DB) Migrate() error {
	return db.AutoMigrate(models.All()...)
}

// Rollback drops every application table in reverse dependency order
func (db *DB) Rollback() error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if !db.Migrator().HasTable(all[i]) {
			continue
		}
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}
	log.Printf("[INFO] Dropped %d table(s)", len(all))
	return nil
}

// Status reports which application tables exist and how many rows they hold
func (db *DB) Status() ([]TableStatus, error) {
	var statuses []TableStatus
	for _, model := range models.All() {
		stmt := db.Model(model).Statement
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}

		status := TableStatus{Table: stmt.Schema.Table}
		if db.Migrator().HasTable(model) {
			status.Exists = true
			if err := db.Model(model).Count(&status.Rows).Error; err != nil {
				return nil, fmt.Errorf("counting %s: %w", status.Table, err)
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
