// Package dbtest opens throwaway SQLite databases carrying the service schema,
// so repository and application tests run real SQL inside real transactions.
package dbtest

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/muhammadheryan/pickup-inventory/constant"
	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var schemaSQL string

// Open creates a file-backed database under t.TempDir(). A single connection
// means every transaction runs alone, which is how row locks behave for one row.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	return OpenAt(t, filepath.Join(t.TempDir(), "ledger.db"), 5*time.Second)
}

// OpenAt opens the database file at path with the given busy timeout, creating the
// schema if needed. Two handles on one path compete for the SQLite write lock.
func OpenAt(t testing.TB, path string, busyTimeout time.Duration) *sqlx.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", path, busyTimeout.Milliseconds())
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		t.Fatalf("apply schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func SeedBranch(t testing.TB, db *sqlx.DB, name string, status constant.BranchStatus) uint64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO branch (name, status) VALUES (?, ?)", name, status)
	if err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

func SeedProduct(t testing.TB, db *sqlx.DB, name string, price string) uint64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO product (name, price) VALUES (?, ?)", name, decimal.RequireFromString(price))
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

// Counters reads quantity and reserved directly, bypassing the repositories under test.
func Counters(t testing.TB, db *sqlx.DB, productID, branchID uint64) (quantity, reserved int64) {
	t.Helper()
	row := db.QueryRowx("SELECT quantity, reserved FROM inventory WHERE product_id = ? AND branch_id = ?", productID, branchID)
	if err := row.Scan(&quantity, &reserved); err != nil {
		t.Fatalf("read counters for product %d branch %d: %v", productID, branchID, err)
	}
	return quantity, reserved
}

func CountRows(t testing.TB, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
