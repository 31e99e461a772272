// Package store persists drafted contracts in a local sqlite database,
// so drafts survive restarts and can be listed, reloaded, and deleted.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/legalmate/legalmate/internal/model"
)

const schema = `CREATE TABLE IF NOT EXISTS contracts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	language TEXT NOT NULL,
	content TEXT NOT NULL,
	summary TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// Store is a sqlite-backed contract archive
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the contract database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save inserts a contract and returns its assigned ID
func (s *Store) Save(contract model.SavedContract) (int64, error) {
	createdAt := contract.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.db.Exec(
		"INSERT INTO contracts (type, language, content, summary, created_at) VALUES (?, ?, ?, ?, ?)",
		string(contract.Type), string(contract.Language), contract.Content, contract.Summary, createdAt,
	)
	if err != nil {
		return 0, fmt.Errorf("save contract: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read contract id: %w", err)
	}
	return id, nil
}

// List returns all saved contracts, newest first
func (s *Store) List() ([]model.SavedContract, error) {
	rows, err := s.db.Query(
		"SELECT id, type, language, content, summary, created_at FROM contracts ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []model.SavedContract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

// Get returns the contract with the given ID
func (s *Store) Get(id int64) (model.SavedContract, error) {
	row := s.db.QueryRow(
		"SELECT id, type, language, content, summary, created_at FROM contracts WHERE id = ?", id,
	)

	contract, err := scanContract(row)
	if err == sql.ErrNoRows {
		return model.SavedContract{}, fmt.Errorf("contract %d not found", id)
	}
	if err != nil {
		return model.SavedContract{}, err
	}
	return contract, nil
}

// Delete removes the contract with the given ID
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM contracts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("contract %d not found", id)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row rowScanner) (model.SavedContract, error) {
	var contract model.SavedContract
	var contractType, language string
	var summary sql.NullString

	err := row.Scan(&contract.ID, &contractType, &language, &contract.Content, &summary, &contract.CreatedAt)
	if err != nil {
		return model.SavedContract{}, err
	}

	contract.Type = model.ContractType(contractType)
	contract.Language = model.Language(language)
	contract.Summary = summary.String
	return contract, nil
}
