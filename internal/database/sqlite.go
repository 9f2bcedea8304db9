//go:build sqlite

package database

import (
	"database/sql"
	"errors"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/inovacc/linkr/internal/model"
	"github.com/inovacc/linkr/internal/params"
)

type sqliteStore struct {
	db *sql.DB
}

func initDB() (Store, error) {
	return newSQLiteStore(filepath.Join(params.AppdataDir, "linkr.sqlite"))
}

func newSQLiteStore(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		server_url TEXT NOT NULL,
		default_project TEXT NOT NULL,
		commit_page_size INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS sessions (
		server_url TEXT PRIMARY KEY,
		sealed BLOB NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, err
	}

	conn := &sqliteStore{db: db}

	if err := conn.Ping(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return conn, nil
}

func (s *sqliteStore) Ping() error {
	return s.db.Ping()
}

func (s *sqliteStore) GetConfig() (*model.Config, error) {
	var cfg model.Config

	row := s.db.QueryRow(`SELECT server_url, default_project, commit_page_size FROM config WHERE id = 1`)

	err := row.Scan(&cfg.ServerURL, &cfg.DefaultProject, &cfg.CommitPageSize)
	if errors.Is(err, sql.ErrNoRows) {
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	}

	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s *sqliteStore) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO config (id, server_url, default_project, commit_page_size)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			server_url = excluded.server_url,
			default_project = excluded.default_project,
			commit_page_size = excluded.commit_page_size`,
		cfg.ServerURL, cfg.DefaultProject, cfg.CommitPageSize)

	return err
}

func (s *sqliteStore) SaveSession(serverURL string, sealed []byte) error {
	if serverURL == "" {
		return errors.New("server URL is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (server_url, sealed) VALUES (?, ?)
		ON CONFLICT(server_url) DO UPDATE SET sealed = excluded.sealed`,
		serverURL, sealed)

	return err
}

func (s *sqliteStore) GetSession(serverURL string) ([]byte, error) {
	var sealed []byte

	row := s.db.QueryRow(`SELECT sealed FROM sessions WHERE server_url = ?`, serverURL)

	err := row.Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return sealed, nil
}

func (s *sqliteStore) DeleteSession(serverURL string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE server_url = ?`, serverURL)

	return err
}
