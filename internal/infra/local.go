package infra

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vk/featstore/internal/ctxlog"
)

// Local is the sqlite-backed local online store. Each table-backed object
// gets one table named "<project>_<object>" holding the latest feature
// values per entity key.
type Local struct {
	path string
}

// NewLocal returns a local provisioner writing to the sqlite database at
// path. The database and its parent directory are created on first use.
func NewLocal(path string) *Local {
	return &Local{path: path}
}

func (l *Local) open() (*sql.DB, error) {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return sql.Open("sqlite", l.path)
}

// Update creates the online table for every deployed object and drops it for
// every removed one. Both directions are idempotent.
func (l *Local) Update(ctx context.Context, project string, deploy, remove []string) error {
	logger := ctxlog.FromContext(ctx)

	db, err := l.open()
	if err != nil {
		return fmt.Errorf("opening online store %s: %w", l.path, err)
	}
	defer db.Close()

	for _, name := range deploy {
		stmt := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %q (entity_key BLOB, feature_name TEXT, value BLOB, event_ts TIMESTAMP, created_ts TIMESTAMP, PRIMARY KEY (entity_key, feature_name))`,
			tableName(project, name),
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("deploying online table for %s: %w", name, err)
		}
		logger.Debug("online table provisioned", "project", project, "object", name)
	}

	for _, name := range remove {
		stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %q`, tableName(project, name))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("removing online table for %s: %w", name, err)
		}
		logger.Debug("online table removed", "project", project, "object", name)
	}

	return nil
}

// Teardown drops every online table belonging to the project.
func (l *Local) Teardown(ctx context.Context, project string) error {
	if _, err := os.Stat(l.path); err != nil {
		// Nothing was ever provisioned.
		return nil
	}

	db, err := l.open()
	if err != nil {
		return fmt.Errorf("opening online store %s: %w", l.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ?`, project+"_%")
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, table := range tables {
		if _, err := db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table)); err != nil {
			return fmt.Errorf("dropping online table %s: %w", table, err)
		}
	}
	return nil
}

func tableName(project, object string) string {
	return project + "_" + object
}

var _ Provisioner = (*Local)(nil)
