package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchemas runs every embedded sql/*.sql script in name order inside
// one savepoint. Scripts use IF NOT EXISTS, so it is safe on an existing
// database.
func CreateSchemas(ctx context.Context, pool *sqlitex.Pool) (err error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return err
	}
	slices.Sort(names)

	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, name := range names {
		script, err := sqlFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read embedded sql file %s: %w", name, err)
		}

		if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
			return fmt.Errorf("failed to execute script %s: %w", name, err)
		}
	}

	return nil
}
