package main

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/metalagman/gemprobe/internal/db"
)

func openDB() (*sql.DB, func(), error) {
	stateDir := ".gemprobe"
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, func() {}, err
	}
	dbPath := filepath.Join(stateDir, "gemprobe.db")
	storeDB, err := db.Open(dbPath)
	if err != nil {
		return nil, func() {}, err
	}
	return storeDB, func() { _ = storeDB.Close() }, nil
}
