package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Oracle errors that mean the object is already in place.
var oracleAlreadyExists = []string{
	"ORA-00955", // name is already used by an existing object
	"ORA-01408", // such column list already indexed
	"ORA-02275", // such a referential constraint already exists
}

// RunMigrations applies every embedded up migration for driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	switch driver {
	case config.DriverPostgres:
		return runPostgresMigrations(db)
	case config.DriverOracle:
		return runOracleMigrations(ctx, db)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runPostgresMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	dbDriver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", dbDriver)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed successfully",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

func runOracleMigrations(ctx context.Context, db *sql.DB) error {
	files, err := upMigrationFiles(migrationsFS, "migrations/oracle")
	if err != nil {
		return err
	}

	for _, name := range files {
		content, err := fs.ReadFile(migrationsFS, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				if isAlreadyExists(err) {
					logger.Get().Debug("Skipping existing object", zap.String("file", name), zap.Error(err))
					continue
				}
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(files)))
	return nil
}

// upMigrationFiles lists the *.up.sql files under dir in name order.
func upMigrationFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// splitStatements splits a script on semicolons that end a line. Oracle rejects
// a trailing semicolon, so it is dropped. Lines starting with "--" are skipped.
func splitStatements(script string) []string {
	var (
		stmts []string
		buf   strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		if strings.HasSuffix(trimmed, ";") {
			buf.WriteString(strings.TrimSuffix(trimmed, ";"))
			stmts = append(stmts, buf.String())
			buf.Reset()
			continue
		}
		buf.WriteString(trimmed)
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

func isAlreadyExists(err error) bool {
	msg := err.Error()
	for _, code := range oracleAlreadyExists {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
