package repositories

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
)

// Open creates the repository selected by the scheme of connStr:
// sqlite://<path> or postgres(ql)://... Migrations are read from the
// backend's subdirectory of migrationsRoot.
func Open(ctx context.Context, connStr string, migrationsRoot string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := u.Host + u.Path
		if path == "" {
			return nil, fmt.Errorf("sqlite connection string has no path")
		}
		return NewSQLiteRepository(ctx, path, filepath.Join(migrationsRoot, "sqlite"))
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String(), filepath.Join(migrationsRoot, "postgres"))
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
