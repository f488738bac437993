package repository

import (
	_ "embed"
	"fmt"
	"strings"

	"lmsmodules/pkg/logger"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// SchemaStatements returns the DDL statements of the embedded schema, in order.
func SchemaStatements() []string {
	var stmts []string
	for _, raw := range strings.Split(schemaSQL, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Migrate creates the menu tables when they do not exist yet.
func Migrate(db *gorm.DB) error {
	stmts := SchemaStatements()
	for i, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration statement %d/%d failed: %w", i+1, len(stmts), err)
		}
	}
	logger.Infof("Schema migration applied (%d statements)", len(stmts))
	return nil
}
