package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	appmigrations "github.com/ohmyyasu0122/health-management-app/migrations"
	"gorm.io/gorm"
)

// Migrations are forward-only: every embedded *.sql file with a numeric
// prefix runs exactly once, in prefix order, and is recorded in
// schema_migrations under its prefix.
type sqlMigration struct {
	version    string
	order      int
	fileName   string
	statements []string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTable).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readMigrationFiles()
	if err != nil {
		return err
	}

	applied, err := appliedMigrationVersions(database)
	if err != nil {
		return err
	}

	for _, migration := range pending {
		if _, done := applied[migration.version]; done {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}

	return nil
}

func readMigrationFiles() ([]sqlMigration, error) {
	entries, err := fs.ReadDir(appmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(entries))
	byVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		fileName := entry.Name()
		prefix, _, hasPrefix := strings.Cut(fileName, "_")
		if !hasPrefix {
			continue
		}
		order, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}

		if other, seen := byVersion[prefix]; seen {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", prefix, other, fileName)
		}
		byVersion[prefix] = fileName

		rawSQL, err := fs.ReadFile(appmigrations.Files, fileName)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", fileName, err)
		}
		statements := splitStatements(string(rawSQL))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s has no SQL statements", fileName)
		}

		migrations = append(migrations, sqlMigration{
			version:    prefix,
			order:      order,
			fileName:   fileName,
			statements: statements,
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		if migrations[i].order != migrations[j].order {
			return migrations[i].order < migrations[j].order
		}
		return migrations[i].fileName < migrations[j].fileName
	})

	return migrations, nil
}

func appliedMigrationVersions(database *gorm.DB) (map[string]struct{}, error) {
	versions := make([]string, 0)
	if err := database.Table("schema_migrations").Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	set := make(map[string]struct{}, len(versions))
	for _, version := range versions {
		set[version] = struct{}{}
	}
	return set, nil
}

func runMigration(database *gorm.DB, migration sqlMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range migration.statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", migration.fileName, err)
			}
		}

		record := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.version, migration.fileName,
		)
		if record.Error != nil {
			return fmt.Errorf("record migration %s: %w", migration.fileName, record.Error)
		}
		return nil
	})
}

func splitStatements(sqlText string) []string {
	parts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
