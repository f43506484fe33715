// Package dialect is the storage-adapter boundary between the record
// services and the two supported database engines. The local sqlite
// schema is owned by the application; the SQL Server schema is managed
// externally and its exact shape (optional columns, legacy column
// names, optional side tables) is discovered at runtime by probing the
// engine's catalog. Everything dialect-specific lives behind the
// Adapter interface: identifier quoting, catalog queries, insert-id
// retrieval, and driver error classification.
package dialect

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrorClass is the closed set of outcomes a database error is mapped
// into. Anything that is not a recognized uniqueness violation or a
// missing row is Other and propagates as a generic failure.
type ErrorClass int

const (
	ClassOther ErrorClass = iota
	ClassUniqueViolation
	ClassNotFound
)

// Adapter abstracts one database engine. Exactly one adapter is
// resolved per process, from the driver identity of the open
// connection, never per query.
type Adapter interface {
	// Name is the gorm dialector name ("sqlite" or "sqlserver").
	Name() string

	// Quote brackets an identifier. Required for columns resolved
	// from legacy alias lists, which may collide with reserved words.
	Quote(ident string) string

	// LimitOne returns the prefix/suffix pair that turns a SELECT
	// into a single-row query (TOP 1 vs LIMIT 1).
	LimitOne() (prefix, suffix string)

	// TableExists reports whether a table is present. Runs on the
	// given handle so it can enlist in an open transaction.
	TableExists(tx *gorm.DB, table string) (bool, error)

	// TableColumns returns the physical column names of a table keyed
	// by their lowercased form. Runs on the given handle.
	TableColumns(tx *gorm.DB, table string) (map[string]string, error)

	// ExecInsert runs an INSERT built by this package and returns the
	// generated identity value.
	ExecInsert(tx *gorm.DB, query string, args []interface{}) (int64, error)

	// DateOnlyExpr returns the SQL expression that reduces a datetime
	// column to its calendar date as a YYYY-MM-DD string, for GROUP BY
	// day aggregations.
	DateOnlyExpr(column string) string

	// Classify maps a driver error into an ErrorClass.
	Classify(err error) ErrorClass
}

// Resolve picks the adapter for an open connection. The decision is
// made once, up front, from driver identity.
func Resolve(db *gorm.DB) (Adapter, error) {
	switch name := db.Dialector.Name(); name {
	case "sqlite":
		return sqliteAdapter{}, nil
	case "sqlserver":
		return sqlserverAdapter{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q", name)
	}
}

func classifyCommon(err error) (ErrorClass, bool) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ClassNotFound, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ClassUniqueViolation, true
	}
	return ClassOther, false
}
