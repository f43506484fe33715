package dialect

import (
	"errors"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
	"gorm.io/gorm"
)

// SQL Server error numbers for uniqueness violations: 2627 is a
// unique/primary key constraint, 2601 a unique index.
const (
	mssqlUniqueConstraint = 2627
	mssqlUniqueIndex      = 2601
)

// sqlserverAdapter serves the externally managed schema. Nothing about
// the remote table shapes is assumed; the descriptor built from
// INFORMATION_SCHEMA decides which columns the builders may reference.
type sqlserverAdapter struct{}

func (sqlserverAdapter) Name() string { return "sqlserver" }

func (sqlserverAdapter) Quote(ident string) string {
	return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
}

func (sqlserverAdapter) LimitOne() (string, string) {
	return "TOP 1 ", ""
}

func (a sqlserverAdapter) DateOnlyExpr(column string) string {
	return "CONVERT(varchar(10), " + a.Quote(column) + ", 23)"
}

func (sqlserverAdapter) TableExists(tx *gorm.DB, table string) (bool, error) {
	var count int64
	err := tx.Raw(
		"SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_NAME = ?",
		table,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sqlserverAdapter) TableColumns(tx *gorm.DB, table string) (map[string]string, error) {
	var names []string
	err := tx.Raw(
		"SELECT COLUMN_NAME FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_NAME = ?",
		table,
	).Scan(&names).Error
	if err != nil {
		return nil, err
	}

	columns := make(map[string]string, len(names))
	for _, name := range names {
		columns[strings.ToLower(name)] = name
	}
	return columns, nil
}

func (sqlserverAdapter) ExecInsert(tx *gorm.DB, query string, args []interface{}) (int64, error) {
	var id int64
	err := tx.Raw(query+"; SELECT CAST(SCOPE_IDENTITY() AS bigint)", args...).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (sqlserverAdapter) Classify(err error) ErrorClass {
	if class, ok := classifyCommon(err); ok {
		return class
	}
	var mssqlErr mssql.Error
	if errors.As(err, &mssqlErr) {
		switch mssqlErr.Number {
		case mssqlUniqueConstraint, mssqlUniqueIndex:
			return ClassUniqueViolation
		}
	}
	return ClassOther
}
