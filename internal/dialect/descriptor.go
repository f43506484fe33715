package dialect

import (
	"fmt"

	"gorm.io/gorm"
)

// Table names of the business-profile aggregate. The local sqlite
// schema always has all three; the external SQL Server schema may lack
// the side tables entirely.
const (
	ProfileTable    = "business_profiles"
	AddressTable    = "business_addresses"
	AssignmentTable = "business_type_assignments"
)

// Logical column names used by the SQL builders. Each maps to one or
// more physical candidates; the descriptor records which candidate the
// connected schema actually has.
const (
	ColID                   = "id"
	ColName                 = "name"
	ColEmail                = "email"
	ColPhone                = "phone"
	ColGSTNumber            = "gst_number"
	ColPANNumber            = "pan_number"
	ColNotes                = "notes"
	ColCompanyID            = "company_id"
	ColCreatedBy            = "created_by"
	ColUpdatedBy            = "updated_by"
	ColCreatedAt            = "created_at"
	ColUpdatedAt            = "updated_at"
	ColLogoName             = "logo_name"
	ColLogoContentType      = "logo_content_type"
	ColLogoData             = "logo_data"
	ColLogoLegacy           = "logo"
	ColSignatureName        = "signature_name"
	ColSignatureContentType = "signature_content_type"
	ColSignatureData        = "signature_data"
	ColSignatureLegacy      = "signature"
	ColProfileID            = "profile_id"
	ColBillingAddress       = "billing_address"
	ColCity                 = "city"
	ColPostalCode           = "postal_code"
	ColStateID              = "state_id"
	ColBusinessTypeID       = "business_type_id"
)

// Physical candidates per logical column, most recent naming first.
// Matching is case-insensitive, so the lists only carry spellings that
// differ beyond case (snake_case vs legacy run-together vs older
// half-snake forms seen in the field).
var profileColumnAliases = map[string][]string{
	ColID:                   {"id"},
	ColName:                 {"name", "business_name"},
	ColEmail:                {"email", "email_id"},
	ColPhone:                {"phone", "contact_no"},
	ColGSTNumber:            {"gst_number", "gstnumber", "gstin"},
	ColPANNumber:            {"pan_number", "pannumber", "pan_no"},
	ColNotes:                {"notes", "remarks"},
	ColCompanyID:            {"company_id", "companyid"},
	ColCreatedBy:            {"created_by", "createdby"},
	ColUpdatedBy:            {"updated_by", "updatedby", "modified_by", "modifiedby"},
	ColCreatedAt:            {"created_at", "created_date", "createddate"},
	ColUpdatedAt:            {"updated_at", "modified_date", "modifieddate"},
	ColLogoName:             {"logo_name", "logo_file_name", "logofilename"},
	ColLogoContentType:      {"logo_content_type", "logocontenttype"},
	ColLogoData:             {"logo_data", "logodata"},
	ColLogoLegacy:           {"logo"},
	ColSignatureName:        {"signature_name", "signature_file_name", "signfilename"},
	ColSignatureContentType: {"signature_content_type", "signcontenttype"},
	ColSignatureData:        {"signature_data", "signdata"},
	ColSignatureLegacy:      {"signature", "sign"},
}

var addressColumnAliases = map[string][]string{
	ColID:             {"id"},
	ColProfileID:      {"profile_id", "business_profile_id", "profileid"},
	ColBillingAddress: {"billing_address", "billingaddress", "billing_address1"},
	ColCity:           {"city"},
	ColPostalCode:     {"postal_code", "postalcode", "pincode", "zip_code"},
	ColStateID:        {"state_id", "stateid"},
	ColCreatedBy:      {"created_by", "createdby"},
	ColUpdatedBy:      {"updated_by", "updatedby", "modified_by", "modifiedby"},
	ColCreatedAt:      {"created_at", "created_date", "createddate"},
	ColUpdatedAt:      {"updated_at", "modified_date", "modifieddate"},
}

var assignmentColumnAliases = map[string][]string{
	ColID:             {"id"},
	ColProfileID:      {"profile_id", "business_profile_id", "profileid"},
	ColBusinessTypeID: {"business_type_id", "businesstypeid"},
}

// TableSchema describes one probed table: whether it exists and, for
// each logical column that resolved, the physical name to reference.
type TableSchema struct {
	Name    string
	Present bool
	columns map[string]string
}

// Has reports whether a logical column resolved to a physical one.
func (t TableSchema) Has(logical string) bool {
	_, ok := t.columns[logical]
	return ok
}

// Col returns the resolved physical column name. Callers must check
// Has first; an unresolved column returns the logical name so a bug
// here fails loudly in SQL rather than silently referencing nothing.
func (t TableSchema) Col(logical string) string {
	if physical, ok := t.columns[logical]; ok {
		return physical
	}
	return logical
}

// ProfileSchema is the schema descriptor for the business-profile
// aggregate. It is a plain value: probing is the only I/O and happens
// once per operation in DescribeProfileSchema. Flags are independent;
// no ordering is implied between them.
type ProfileSchema struct {
	Profile    TableSchema
	Address    TableSchema
	Assignment TableSchema
}

// HasAudit reports whether the profile table carries actor/timestamp
// audit columns.
func (s ProfileSchema) HasAudit() bool {
	return s.Profile.Has(ColCreatedBy) && s.Profile.Has(ColCreatedAt)
}

// HasCompany reports whether the profile table carries the
// multi-tenant discriminator column.
func (s ProfileSchema) HasCompany() bool {
	return s.Profile.Has(ColCompanyID)
}

// UseDetailedLogo reports whether logo writes go to the detailed
// filename+content-type+data triple. Preferred over the legacy single
// blob when both exist.
func (s ProfileSchema) UseDetailedLogo() bool {
	return s.Profile.Has(ColLogoData)
}

// UseLegacyLogo reports whether logo writes fall back to the legacy
// single blob column.
func (s ProfileSchema) UseLegacyLogo() bool {
	return !s.Profile.Has(ColLogoData) && s.Profile.Has(ColLogoLegacy)
}

// UseDetailedSignature mirrors UseDetailedLogo for the signature.
func (s ProfileSchema) UseDetailedSignature() bool {
	return s.Profile.Has(ColSignatureData)
}

// UseLegacySignature mirrors UseLegacyLogo for the signature.
func (s ProfileSchema) UseLegacySignature() bool {
	return !s.Profile.Has(ColSignatureData) && s.Profile.Has(ColSignatureLegacy)
}

// DescribeProfileSchema probes the connected schema and builds the
// descriptor. It runs on the given handle so it enlists in an open
// transaction instead of opening a second connection. Any catalog
// failure is fatal for the calling operation; there is no fallback
// descriptor.
func DescribeProfileSchema(a Adapter, tx *gorm.DB) (ProfileSchema, error) {
	profile, err := describeTable(a, tx, ProfileTable, profileColumnAliases)
	if err != nil {
		return ProfileSchema{}, err
	}
	if !profile.Present {
		return ProfileSchema{}, fmt.Errorf("table %s does not exist", ProfileTable)
	}

	address, err := describeTable(a, tx, AddressTable, addressColumnAliases)
	if err != nil {
		return ProfileSchema{}, err
	}

	assignment, err := describeTable(a, tx, AssignmentTable, assignmentColumnAliases)
	if err != nil {
		return ProfileSchema{}, err
	}

	return ProfileSchema{Profile: profile, Address: address, Assignment: assignment}, nil
}

func describeTable(a Adapter, tx *gorm.DB, table string, aliases map[string][]string) (TableSchema, error) {
	exists, err := a.TableExists(tx, table)
	if err != nil {
		return TableSchema{}, fmt.Errorf("probe %s: %w", table, err)
	}
	if !exists {
		return TableSchema{Name: table}, nil
	}

	physical, err := a.TableColumns(tx, table)
	if err != nil {
		return TableSchema{}, fmt.Errorf("probe %s: %w", table, err)
	}

	resolved := make(map[string]string, len(aliases))
	for logical, candidates := range aliases {
		for _, candidate := range candidates {
			if name, ok := physical[candidate]; ok {
				resolved[logical] = name
				break
			}
		}
	}

	return TableSchema{Name: table, Present: true, columns: resolved}, nil
}
