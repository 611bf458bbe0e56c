// Package dbutil holds the few SQL fragments and error checks that differ between
// the MySQL production database and the SQLite database used by tests.
package dbutil

import (
	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// ForUpdate returns the row-lock suffix for a SELECT. SQLite locks the whole
// database for a write transaction, so it needs none.
func ForUpdate(driverName string) string {
	if driverName == DriverSQLite {
		return ""
	}
	return " FOR UPDATE"
}

// InsertIgnore returns the INSERT verb that silently skips an existing primary key.
func InsertIgnore(driverName string) string {
	if driverName == DriverSQLite {
		return "INSERT OR IGNORE"
	}
	return "INSERT IGNORE"
}

// IsConflict reports whether err is a lock conflict that the whole operation can be retried on.
// Duplicate keys are not conflicts: retrying the same insert hits the same key.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if cerr.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return true
		}
		return false
	}

	var liteErr sqlite3.Error
	if cerr.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}

	return false
}

// IsDuplicate reports whether err is a unique or primary key violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if cerr.As(err, &myErr) {
		return myErr.Number == mysqlErrDuplicateEntry
	}

	var liteErr sqlite3.Error
	if cerr.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique || liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// Translate turns a driver conflict into a ConflictError on entity and leaves other errors alone.
func Translate(entity string, err error) error {
	if IsConflict(err) {
		return cerr.NewConflictError(entity, err)
	}
	return err
}
