package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS prefs (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		)`,
		`CREATE TABLE IF NOT EXISTS redeemed_codes (
			client_id TEXT NOT NULL REFERENCES clients(id),
			code TEXT NOT NULL,
			redeemed_at DATETIME NOT NULL,
			PRIMARY KEY (client_id, code)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_redeemed_client ON redeemed_codes(client_id)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Clients ---

// RegisterClient creates a new client and returns its ID
func (s *Store) RegisterClient() (string, error) {
	id := uuid.New().String()
	if _, err := s.db.Exec(`INSERT INTO clients (id) VALUES (?)`, id); err != nil {
		return "", err
	}
	return id, nil
}

// ClientExists reports whether a client ID is registered
func (s *Store) ClientExists(id string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// --- Prefs (KV) ---

// prefsKV exposes one namespace of the prefs table as a KV. Read and write
// failures are swallowed: a pref that cannot be loaded behaves like a pref
// that was never saved.
type prefsKV struct {
	store     *Store
	namespace string
}

// KV returns a KV view over the given prefs namespace
func (s *Store) KV(namespace string) KV {
	return &prefsKV{store: s, namespace: namespace}
}

func (p *prefsKV) Get(key string) (string, bool) {
	var value string
	err := p.store.db.QueryRow(`
		SELECT value FROM prefs WHERE namespace = ? AND key = ?
	`, p.namespace, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (p *prefsKV) Set(key, value string) {
	p.store.db.Exec(`
		INSERT INTO prefs (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, p.namespace, key, value)
}

func (p *prefsKV) Remove(key string) {
	p.store.db.Exec(`DELETE FROM prefs WHERE namespace = ? AND key = ?`, p.namespace, key)
}

// --- Redeemed codes ---

// SetRedeemed marks or unmarks a code as redeemed for a client
func (s *Store) SetRedeemed(clientID, code string, redeemed bool) error {
	if !redeemed {
		_, err := s.db.Exec(`
			DELETE FROM redeemed_codes WHERE client_id = ? AND code = ?
		`, clientID, code)
		return err
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO redeemed_codes (client_id, code, redeemed_at)
		VALUES (?, ?, ?)
	`, clientID, code, time.Now())
	return err
}

// RedeemedCodes returns the set of codes a client has redeemed
func (s *Store) RedeemedCodes(clientID string) (map[string]bool, error) {
	rows, err := s.db.Query(`
		SELECT code FROM redeemed_codes WHERE client_id = ?
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	redeemed := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		redeemed[code] = true
	}
	return redeemed, rows.Err()
}
