package dialect

import (
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// sqliteAdapter serves the app-owned local schema. The schema shape is
// fixed by our own migrations, but probing goes through the same
// catalog path as SQL Server so the builders see one descriptor type.
type sqliteAdapter struct{}

func (sqliteAdapter) Name() string { return "sqlite" }

func (sqliteAdapter) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (sqliteAdapter) LimitOne() (string, string) {
	return "", " LIMIT 1"
}

func (a sqliteAdapter) DateOnlyExpr(column string) string {
	return "date(" + a.Quote(column) + ")"
}

func (sqliteAdapter) TableExists(tx *gorm.DB, table string) (bool, error) {
	var count int64
	err := tx.Raw(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		table,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sqliteAdapter) TableColumns(tx *gorm.DB, table string) (map[string]string, error) {
	var names []string
	err := tx.Raw("SELECT name FROM pragma_table_info(?)", table).Scan(&names).Error
	if err != nil {
		return nil, err
	}

	columns := make(map[string]string, len(names))
	for _, name := range names {
		columns[strings.ToLower(name)] = name
	}
	return columns, nil
}

func (sqliteAdapter) ExecInsert(tx *gorm.DB, query string, args []interface{}) (int64, error) {
	if err := tx.Exec(query, args...).Error; err != nil {
		return 0, err
	}
	var id int64
	if err := tx.Raw("SELECT last_insert_rowid()").Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

func (sqliteAdapter) Classify(err error) ErrorClass {
	if class, ok := classifyCommon(err); ok {
		return class
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return ClassUniqueViolation
		}
	}
	return ClassOther
}
