package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"os"
)

// schema.sql is looked up relative to wherever the binary was started from
var schemaPaths = []string{
	"script/migration/schema.sql",       // from backend root (go run ./cmd/api)
	"../script/migration/schema.sql",    // from cmd/
	"../../script/migration/schema.sql", // from cmd/api or internal/...
	"backend/script/migration/schema.sql",
}

// RunMigrations executes schema.sql. Every statement is idempotent.
func RunMigrations(db *sql.DB) error {
	schemaPath := findSchema()

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return fmt.Errorf("failed to read migration file '%s' (current WD: %s): %v", schemaPath, wd, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %v", err)
	}

	log.Printf("[DB] Applied migrations from %s", schemaPath)
	return nil
}

func findSchema() string {
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return schemaPaths[0]
}
