package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestResolve(t *testing.T) {
	db := openSQLite(t)

	adapter, err := Resolve(db)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", adapter.Name())
}

func TestDescribeProfileSchema(t *testing.T) {
	t.Run("Fails when profile table is missing", func(t *testing.T) {
		db := openSQLite(t)

		_, err := DescribeProfileSchema(sqliteAdapter{}, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ProfileTable)
	})

	t.Run("Modern shape resolves the detailed triple", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, db.Exec(`CREATE TABLE business_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT, email TEXT, phone TEXT,
			gst_number TEXT, pan_number TEXT, notes TEXT,
			logo_name TEXT, logo_content_type TEXT, logo_data BLOB,
			signature_name TEXT, signature_content_type TEXT, signature_data BLOB,
			created_by INTEGER, updated_by INTEGER,
			created_at DATETIME, updated_at DATETIME
		)`).Error)
		require.NoError(t, db.Exec(`CREATE TABLE business_addresses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile_id INTEGER, billing_address TEXT,
			city TEXT, postal_code TEXT, state_id INTEGER
		)`).Error)

		schema, err := DescribeProfileSchema(sqliteAdapter{}, db)
		require.NoError(t, err)

		assert.True(t, schema.Profile.Present)
		assert.True(t, schema.Address.Present)
		assert.False(t, schema.Assignment.Present)

		assert.True(t, schema.HasAudit())
		assert.False(t, schema.HasCompany())
		assert.True(t, schema.UseDetailedLogo())
		assert.False(t, schema.UseLegacyLogo())
		assert.True(t, schema.UseDetailedSignature())
		assert.Equal(t, "gst_number", schema.Profile.Col(ColGSTNumber))
	})

	t.Run("Legacy shape resolves aliases case-insensitively", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, db.Exec(`CREATE TABLE business_profiles (
			Id INTEGER PRIMARY KEY AUTOINCREMENT,
			BusinessName TEXT, Email TEXT, ContactNo TEXT,
			GSTNumber TEXT, PANNumber TEXT, Remarks TEXT,
			CompanyId INTEGER, Logo BLOB, Sign BLOB,
			BillingAddress TEXT
		)`).Error)

		schema, err := DescribeProfileSchema(sqliteAdapter{}, db)
		require.NoError(t, err)

		// The physical spelling comes back exactly as stored.
		assert.Equal(t, "BusinessName", schema.Profile.Col(ColName))
		assert.Equal(t, "ContactNo", schema.Profile.Col(ColPhone))
		assert.Equal(t, "GSTNumber", schema.Profile.Col(ColGSTNumber))
		assert.Equal(t, "Remarks", schema.Profile.Col(ColNotes))

		assert.True(t, schema.HasCompany())
		assert.False(t, schema.HasAudit())
		assert.False(t, schema.UseDetailedLogo())
		assert.True(t, schema.UseLegacyLogo())
		assert.True(t, schema.UseLegacySignature())

		assert.False(t, schema.Address.Present)
		assert.False(t, schema.Assignment.Present)
	})

	t.Run("Detailed triple wins when both shapes exist", func(t *testing.T) {
		db := openSQLite(t)
		require.NoError(t, db.Exec(`CREATE TABLE business_profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT, email TEXT, phone TEXT,
			gst_number TEXT, pan_number TEXT, notes TEXT,
			logo BLOB, logo_name TEXT, logo_data BLOB
		)`).Error)

		schema, err := DescribeProfileSchema(sqliteAdapter{}, db)
		require.NoError(t, err)

		assert.True(t, schema.UseDetailedLogo())
		assert.False(t, schema.UseLegacyLogo())
	})
}

func TestSQLiteAdapter(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.Exec(`CREATE TABLE widgets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`).Error)

	a := sqliteAdapter{}

	t.Run("TableExists", func(t *testing.T) {
		exists, err := a.TableExists(db, "widgets")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = a.TableExists(db, "gadgets")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TableColumns keys by lowercase", func(t *testing.T) {
		columns, err := a.TableColumns(db, "widgets")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"id": "id", "name": "name"}, columns)
	})

	t.Run("ExecInsert returns the generated id", func(t *testing.T) {
		first, err := a.ExecInsert(db, "INSERT INTO widgets (name) VALUES (?)", []interface{}{"alpha"})
		require.NoError(t, err)
		second, err := a.ExecInsert(db, "INSERT INTO widgets (name) VALUES (?)", []interface{}{"beta"})
		require.NoError(t, err)
		assert.Equal(t, first+1, second)
	})

	t.Run("Classify maps a real unique violation", func(t *testing.T) {
		err := db.Exec("INSERT INTO widgets (name) VALUES (?)", "alpha").Error
		require.Error(t, err)
		assert.Equal(t, ClassUniqueViolation, a.Classify(err))
	})

	t.Run("Classify maps record-not-found", func(t *testing.T) {
		assert.Equal(t, ClassNotFound, a.Classify(gorm.ErrRecordNotFound))
	})

	t.Run("Classify leaves everything else as other", func(t *testing.T) {
		assert.Equal(t, ClassOther, a.Classify(assert.AnError))
	})
}
