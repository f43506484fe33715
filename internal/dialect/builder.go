package dialect

import (
	"fmt"
	"strings"
	"time"
)

// ProfileRecord carries the values for one profile INSERT/UPDATE. The
// builders decide which of them become columns based on the
// descriptor; callers always populate everything they have.
type ProfileRecord struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	GSTNumber string
	PANNumber string
	Notes     string
	CompanyID int64

	LogoName             string
	LogoContentType      string
	LogoData             []byte
	SignatureName        string
	SignatureContentType string
	SignatureData        []byte

	ActorID int64
	Now     time.Time
}

// AddressRecord carries the values for one address INSERT/UPDATE.
type AddressRecord struct {
	ProfileID      int64
	BillingAddress string
	City           string
	PostalCode     string
	StateID        int64

	ActorID int64
	Now     time.Time
}

// BinaryKind selects which stored payload a binary query targets.
type BinaryKind int

const (
	BinaryLogo BinaryKind = iota
	BinarySignature
)

// columnSet accumulates column/placeholder/argument triples in a fixed
// order so the emitted SQL is deterministic for a given descriptor.
type columnSet struct {
	columns []string
	args    []interface{}
}

func (c *columnSet) add(physical string, arg interface{}) {
	c.columns = append(c.columns, physical)
	c.args = append(c.args, arg)
}

// BuildProfileInsert emits the profile INSERT. The required core
// columns are always present; audit, tenant, and binary columns are
// appended only when the descriptor says the schema has them. Binary
// columns are written only when bytes were actually supplied.
func BuildProfileInsert(a Adapter, s ProfileSchema, r ProfileRecord) (string, []interface{}) {
	set := profileColumns(s, r, true)

	quoted := make([]string, len(set.columns))
	holes := make([]string, len(set.columns))
	for i, col := range set.columns {
		quoted[i] = a.Quote(col)
		holes[i] = "?"
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		a.Quote(s.Profile.Name),
		strings.Join(quoted, ", "),
		strings.Join(holes, ", "),
	)
	return query, set.args
}

// BuildProfileUpdate emits the profile UPDATE by id. Binary payload
// columns enter the SET clause only when new bytes were supplied, so a
// metadata-only edit never nulls out a stored file.
func BuildProfileUpdate(a Adapter, s ProfileSchema, r ProfileRecord) (string, []interface{}) {
	set := profileColumns(s, r, false)

	assignments := make([]string, len(set.columns))
	for i, col := range set.columns {
		assignments[i] = a.Quote(col) + " = ?"
	}
	args := append(set.args, r.ID)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = ?",
		a.Quote(s.Profile.Name),
		strings.Join(assignments, ", "),
		a.Quote(s.Profile.Col(ColID)),
	)
	return query, args
}

// profileColumns assembles the column/value list shared by INSERT and
// UPDATE. creating toggles the created_* audit columns, which are
// never touched on update.
func profileColumns(s ProfileSchema, r ProfileRecord, creating bool) columnSet {
	var set columnSet

	// Required core. Always referenced; a schema without these is not
	// a profile table.
	set.add(s.Profile.Col(ColName), r.Name)
	set.add(s.Profile.Col(ColEmail), r.Email)
	set.add(s.Profile.Col(ColPhone), r.Phone)
	set.add(s.Profile.Col(ColGSTNumber), r.GSTNumber)
	set.add(s.Profile.Col(ColPANNumber), r.PANNumber)
	set.add(s.Profile.Col(ColNotes), r.Notes)

	if s.HasCompany() {
		set.add(s.Profile.Col(ColCompanyID), r.CompanyID)
	}

	if len(r.LogoData) > 0 {
		if s.UseDetailedLogo() {
			set.add(s.Profile.Col(ColLogoName), r.LogoName)
			if s.Profile.Has(ColLogoContentType) {
				set.add(s.Profile.Col(ColLogoContentType), r.LogoContentType)
			}
			set.add(s.Profile.Col(ColLogoData), r.LogoData)
		} else if s.UseLegacyLogo() {
			set.add(s.Profile.Col(ColLogoLegacy), r.LogoData)
		}
	}
	if len(r.SignatureData) > 0 {
		if s.UseDetailedSignature() {
			set.add(s.Profile.Col(ColSignatureName), r.SignatureName)
			if s.Profile.Has(ColSignatureContentType) {
				set.add(s.Profile.Col(ColSignatureContentType), r.SignatureContentType)
			}
			set.add(s.Profile.Col(ColSignatureData), r.SignatureData)
		} else if s.UseLegacySignature() {
			set.add(s.Profile.Col(ColSignatureLegacy), r.SignatureData)
		}
	}

	if s.HasAudit() {
		if creating {
			set.add(s.Profile.Col(ColCreatedBy), r.ActorID)
			set.add(s.Profile.Col(ColCreatedAt), r.Now)
		}
		if s.Profile.Has(ColUpdatedBy) {
			set.add(s.Profile.Col(ColUpdatedBy), r.ActorID)
		}
		if s.Profile.Has(ColUpdatedAt) {
			set.add(s.Profile.Col(ColUpdatedAt), r.Now)
		}
	}

	return set
}

// profileSelectColumns is the deterministic output order for profile
// reads. Each present physical column is aliased back to its logical
// name so row scanning is schema-independent.
var profileSelectColumns = []string{
	ColID, ColName, ColEmail, ColPhone, ColGSTNumber, ColPANNumber,
	ColNotes, ColCompanyID, ColCreatedBy, ColUpdatedBy, ColCreatedAt,
	ColUpdatedAt,
}

func selectList(a Adapter, t TableSchema, logicals []string) string {
	parts := make([]string, 0, len(logicals))
	for _, logical := range logicals {
		if !t.Has(logical) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s AS %s", a.Quote(t.Col(logical)), a.Quote(logical)))
	}
	return strings.Join(parts, ", ")
}

// BuildProfileSelectLatest emits the newest-profile query (id
// descending, single row).
func BuildProfileSelectLatest(a Adapter, s ProfileSchema) string {
	prefix, suffix := a.LimitOne()
	return fmt.Sprintf(
		"SELECT %s%s FROM %s ORDER BY %s DESC%s",
		prefix,
		selectList(a, s.Profile, profileSelectColumns),
		a.Quote(s.Profile.Name),
		a.Quote(s.Profile.Col(ColID)),
		suffix,
	)
}

// BuildBinarySelect emits the logo/signature payload query for one
// profile id. Output columns are always aliased to file_name,
// content_type, and data; for a legacy single-blob schema the name and
// content-type come back as empty literals and the service sniffs the
// content type from the bytes.
func BuildBinarySelect(a Adapter, s ProfileSchema, kind BinaryKind) string {
	nameCol, typeCol, dataCol, legacyCol := ColLogoName, ColLogoContentType, ColLogoData, ColLogoLegacy
	detailed := s.UseDetailedLogo()
	if kind == BinarySignature {
		nameCol, typeCol, dataCol, legacyCol = ColSignatureName, ColSignatureContentType, ColSignatureData, ColSignatureLegacy
		detailed = s.UseDetailedSignature()
	}

	var parts []string
	if detailed {
		if s.Profile.Has(nameCol) {
			parts = append(parts, fmt.Sprintf("%s AS %s", a.Quote(s.Profile.Col(nameCol)), a.Quote("file_name")))
		} else {
			parts = append(parts, fmt.Sprintf("'' AS %s", a.Quote("file_name")))
		}
		if s.Profile.Has(typeCol) {
			parts = append(parts, fmt.Sprintf("%s AS %s", a.Quote(s.Profile.Col(typeCol)), a.Quote("content_type")))
		} else {
			parts = append(parts, fmt.Sprintf("'' AS %s", a.Quote("content_type")))
		}
		parts = append(parts, fmt.Sprintf("%s AS %s", a.Quote(s.Profile.Col(dataCol)), a.Quote("data")))
	} else {
		parts = append(parts,
			fmt.Sprintf("'' AS %s", a.Quote("file_name")),
			fmt.Sprintf("'' AS %s", a.Quote("content_type")),
			fmt.Sprintf("%s AS %s", a.Quote(s.Profile.Col(legacyCol)), a.Quote("data")),
		)
	}

	prefix, suffix := a.LimitOne()
	return fmt.Sprintf(
		"SELECT %s%s FROM %s WHERE %s = ?%s",
		prefix,
		strings.Join(parts, ", "),
		a.Quote(s.Profile.Name),
		a.Quote(s.Profile.Col(ColID)),
		suffix,
	)
}

// addressSelectColumns is the deterministic output order for address
// reads.
var addressSelectColumns = []string{
	ColID, ColProfileID, ColBillingAddress, ColCity, ColPostalCode, ColStateID,
}

// BuildAddressSelectByProfile emits the address lookup for one profile
// id, used both for reads and for the exists-check of the upsert.
func BuildAddressSelectByProfile(a Adapter, s ProfileSchema) string {
	prefix, suffix := a.LimitOne()
	return fmt.Sprintf(
		"SELECT %s%s FROM %s WHERE %s = ?%s",
		prefix,
		selectList(a, s.Address, addressSelectColumns),
		a.Quote(s.Address.Name),
		a.Quote(s.Address.Col(ColProfileID)),
		suffix,
	)
}

func addressColumns(s ProfileSchema, r AddressRecord, creating bool) columnSet {
	var set columnSet

	if creating {
		set.add(s.Address.Col(ColProfileID), r.ProfileID)
	}
	set.add(s.Address.Col(ColBillingAddress), r.BillingAddress)
	if s.Address.Has(ColCity) {
		set.add(s.Address.Col(ColCity), r.City)
	}
	if s.Address.Has(ColPostalCode) {
		set.add(s.Address.Col(ColPostalCode), r.PostalCode)
	}
	if s.Address.Has(ColStateID) {
		set.add(s.Address.Col(ColStateID), r.StateID)
	}
	if s.Address.Has(ColCreatedBy) && creating {
		set.add(s.Address.Col(ColCreatedBy), r.ActorID)
	}
	if s.Address.Has(ColCreatedAt) && creating {
		set.add(s.Address.Col(ColCreatedAt), r.Now)
	}
	if s.Address.Has(ColUpdatedBy) {
		set.add(s.Address.Col(ColUpdatedBy), r.ActorID)
	}
	if s.Address.Has(ColUpdatedAt) {
		set.add(s.Address.Col(ColUpdatedAt), r.Now)
	}

	return set
}

// BuildAddressInsert emits the address INSERT for a first-time save.
func BuildAddressInsert(a Adapter, s ProfileSchema, r AddressRecord) (string, []interface{}) {
	set := addressColumns(s, r, true)

	quoted := make([]string, len(set.columns))
	holes := make([]string, len(set.columns))
	for i, col := range set.columns {
		quoted[i] = a.Quote(col)
		holes[i] = "?"
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		a.Quote(s.Address.Name),
		strings.Join(quoted, ", "),
		strings.Join(holes, ", "),
	)
	return query, set.args
}

// BuildAddressUpdate emits the in-place address UPDATE keyed on the
// profile id.
func BuildAddressUpdate(a Adapter, s ProfileSchema, r AddressRecord) (string, []interface{}) {
	set := addressColumns(s, r, false)

	assignments := make([]string, len(set.columns))
	for i, col := range set.columns {
		assignments[i] = a.Quote(col) + " = ?"
	}
	args := append(set.args, r.ProfileID)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = ?",
		a.Quote(s.Address.Name),
		strings.Join(assignments, ", "),
		a.Quote(s.Address.Col(ColProfileID)),
	)
	return query, args
}

// BuildAssignmentDelete clears the whole assignment set for a profile;
// the save workflow always replaces rather than diffs.
func BuildAssignmentDelete(a Adapter, s ProfileSchema) string {
	return fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ?",
		a.Quote(s.Assignment.Name),
		a.Quote(s.Assignment.Col(ColProfileID)),
	)
}

// BuildAssignmentInsert emits one assignment-row INSERT.
func BuildAssignmentInsert(a Adapter, s ProfileSchema) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES (?, ?)",
		a.Quote(s.Assignment.Name),
		a.Quote(s.Assignment.Col(ColProfileID)),
		a.Quote(s.Assignment.Col(ColBusinessTypeID)),
	)
}

// BuildAssignmentSelect lists the assigned business-type ids for a
// profile in stable ascending order.
func BuildAssignmentSelect(a Adapter, s ProfileSchema) string {
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = ? ORDER BY %s",
		a.Quote(s.Assignment.Col(ColBusinessTypeID)),
		a.Quote(s.Assignment.Name),
		a.Quote(s.Assignment.Col(ColProfileID)),
		a.Quote(s.Assignment.Col(ColBusinessTypeID)),
	)
}
