// Package sqlite implements the entity repositories on an embedded SQLite
// database accessed through sqlx. The store is single-writer: the pool is
// capped at one connection and SQLite serializes conflicting writes on it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dongzhentu/gallery-admin/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	nickname   TEXT NOT NULL DEFAULT '',
	role_id    INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (role_id) REFERENCES roles (id)
);

CREATE TABLE IF NOT EXISTS image_categories (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS images (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	category_id INTEGER NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image_path  TEXT NOT NULL,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL,
	FOREIGN KEY (category_id) REFERENCES image_categories (id)
);

CREATE TABLE IF NOT EXISTS schema_info (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const seededMarker = "seeded"

// Connect opens the SQLite database at path with foreign keys enforced and
// applies the schema. The pool is capped at a single connection so all writes
// funnel through one handle.
func Connect(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("sqlite connect: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return db, nil
}

// Seed inserts the default role, admin account and categories. It runs at
// most once: a marker row in schema_info records that seeding happened, so
// operator-deleted seed rows are not resurrected on restart.
func Seed(ctx context.Context, db *sqlx.DB, log zerolog.Logger) error {
	var marker string
	err := db.GetContext(ctx, &marker, `SELECT value FROM schema_info WHERE key = ?`, seededMarker)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("sqlite seed marker: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(domain.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("sqlite seed: hash default password: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO roles (name, description, created_at, updated_at)
		 VALUES (?, ?, datetime('now'), datetime('now'))`,
		domain.AdminRoleName, "系统管理员，拥有全部权限")
	if err != nil {
		return fmt.Errorf("sqlite seed: admin role: %w", err)
	}
	adminRoleID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite seed: admin role id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO roles (name, description, created_at, updated_at)
		 VALUES (?, ?, datetime('now'), datetime('now'))`,
		"会员", "普通会员"); err != nil {
		return fmt.Errorf("sqlite seed: member role: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password, nickname, role_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, datetime('now'), datetime('now'))`,
		"admin", string(hash), "系统管理员", adminRoleID); err != nil {
		return fmt.Errorf("sqlite seed: admin user: %w", err)
	}

	categories := [][2]string{
		{"乾", "乾卦相关图片"},
		{"坤", "坤卦相关图片"},
		{"成人", "成人相关图片"},
		{"儿童", "儿童相关图片"},
		{"乾字", "乾字相关图片"},
		{"坤字", "坤字相关图片"},
	}
	for _, c := range categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO image_categories (name, description, created_at, updated_at)
			 VALUES (?, ?, datetime('now'), datetime('now'))`,
			c[0], c[1]); err != nil {
			return fmt.Errorf("sqlite seed: category %s: %w", c[0], err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_info (key, value) VALUES (?, ?)`, seededMarker, "1"); err != nil {
		return fmt.Errorf("sqlite seed: marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite seed: commit: %w", err)
	}

	log.Info().Msg("seed data inserted")
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// isForeignKeyViolation reports whether err is a SQLite FOREIGN KEY failure.
func isForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
