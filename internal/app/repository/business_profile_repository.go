package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

// BinaryPayload is a stored logo or signature with its metadata. For
// legacy single-blob schemas FileName and ContentType come back empty
// and the service sniffs the type from the bytes.
type BinaryPayload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type BusinessProfileRepository interface {
	FindLatest() (*model.BusinessProfile, error)
	Save(profile *model.BusinessProfile, actorID uint) (int64, error)
	GetBinary(profileID int64, kind dialect.BinaryKind) (*BinaryPayload, error)
}

// businessProfileRepository is the dual-schema persistence path. Every
// operation probes the connected schema first (descriptors are cheap
// and explicitly not cached) and then runs SQL assembled by the
// dialect builders, so only columns that actually exist are ever
// referenced.
type businessProfileRepository struct {
	db      *gorm.DB
	adapter dialect.Adapter
}

func NewBusinessProfileRepository(db *gorm.DB, adapter dialect.Adapter) BusinessProfileRepository {
	return &businessProfileRepository{db: db, adapter: adapter}
}

// profileRow matches the aliased output of the dynamic profile SELECT.
// Pointers absorb NULLs and columns the connected schema lacks.
type profileRow struct {
	ID        int64      `gorm:"column:id"`
	Name      *string    `gorm:"column:name"`
	Email     *string    `gorm:"column:email"`
	Phone     *string    `gorm:"column:phone"`
	GSTNumber *string    `gorm:"column:gst_number"`
	PANNumber *string    `gorm:"column:pan_number"`
	Notes     *string    `gorm:"column:notes"`
	CreatedBy *int64     `gorm:"column:created_by"`
	UpdatedBy *int64     `gorm:"column:updated_by"`
	CreatedAt *time.Time `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at"`
}

type addressRow struct {
	ID             int64   `gorm:"column:id"`
	ProfileID      int64   `gorm:"column:profile_id"`
	BillingAddress *string `gorm:"column:billing_address"`
	City           *string `gorm:"column:city"`
	PostalCode     *string `gorm:"column:postal_code"`
	StateID        *int64  `gorm:"column:state_id"`
}

type binaryRow struct {
	FileName    *string `gorm:"column:file_name"`
	ContentType *string `gorm:"column:content_type"`
	Data        []byte  `gorm:"column:data"`
}

func (r *businessProfileRepository) FindLatest() (*model.BusinessProfile, error) {
	schema, err := dialect.DescribeProfileSchema(r.adapter, r.db)
	if err != nil {
		logger.Error("Failed to probe profile schema", err)
		return nil, err
	}

	var row profileRow
	result := r.db.Raw(dialect.BuildProfileSelectLatest(r.adapter, schema)).Scan(&row)
	if result.Error != nil {
		logger.Error("Failed to read latest profile", result.Error)
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	profile := rowToProfile(row)

	if schema.Address.Present {
		var addr addressRow
		result := r.db.Raw(dialect.BuildAddressSelectByProfile(r.adapter, schema), row.ID).Scan(&addr)
		if result.Error != nil {
			logger.Error("Failed to read profile address", result.Error, map[string]interface{}{
				"profile_id": row.ID,
			})
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			profile.Address = rowToAddress(addr)
		}
	}

	if schema.Assignment.Present {
		var typeIDs []int64
		err := r.db.Raw(dialect.BuildAssignmentSelect(r.adapter, schema), row.ID).Scan(&typeIDs).Error
		if err != nil {
			logger.Error("Failed to read type assignments", err, map[string]interface{}{
				"profile_id": row.ID,
			})
			return nil, err
		}
		profile.BusinessTypeIDs = typeIDs
	}

	return profile, nil
}

// Save inserts or updates the profile row, upserts its address, and
// replaces the type-assignment set, all inside one transaction. A
// failure in any step rolls back every step; a partial save is never
// observable.
func (r *businessProfileRepository) Save(profile *model.BusinessProfile, actorID uint) (int64, error) {
	now := time.Now()
	var profileID int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		schema, err := dialect.DescribeProfileSchema(r.adapter, tx)
		if err != nil {
			return err
		}

		record := profileToRecord(profile, actorID, now)

		if profile.ID == 0 {
			query, args := dialect.BuildProfileInsert(r.adapter, schema, record)
			id, err := r.adapter.ExecInsert(tx, query, args)
			if err != nil {
				return err
			}
			profileID = id
		} else {
			query, args := dialect.BuildProfileUpdate(r.adapter, schema, record)
			if err := tx.Exec(query, args...).Error; err != nil {
				return err
			}
			profileID = int64(profile.ID)
		}

		if profile.Address != nil && schema.Address.Present {
			if err := r.upsertAddress(tx, schema, profileID, profile.Address, actorID, now); err != nil {
				return err
			}
		}

		if schema.Assignment.Present {
			if err := r.replaceAssignments(tx, schema, profileID, profile.BusinessTypeIDs); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to save business profile", err, map[string]interface{}{
			"profile_id": profile.ID,
		})
		return 0, err
	}

	logger.Info("Business profile saved", map[string]interface{}{
		"profile_id": profileID,
		"actor_id":   actorID,
	})
	return profileID, nil
}

func (r *businessProfileRepository) upsertAddress(tx *gorm.DB, schema dialect.ProfileSchema, profileID int64, address *model.BusinessAddress, actorID uint, now time.Time) error {
	record := dialect.AddressRecord{
		ProfileID:      profileID,
		BillingAddress: address.BillingAddress,
		City:           address.City,
		PostalCode:     address.PostalCode,
		ActorID:        int64(actorID),
		Now:            now,
	}
	if address.StateID != nil {
		record.StateID = int64(*address.StateID)
	}

	var existing addressRow
	result := tx.Raw(dialect.BuildAddressSelectByProfile(r.adapter, schema), profileID).Scan(&existing)
	if result.Error != nil {
		return result.Error
	}

	var query string
	var args []interface{}
	if result.RowsAffected == 0 {
		query, args = dialect.BuildAddressInsert(r.adapter, schema, record)
	} else {
		query, args = dialect.BuildAddressUpdate(r.adapter, schema, record)
	}
	return tx.Exec(query, args...).Error
}

func (r *businessProfileRepository) replaceAssignments(tx *gorm.DB, schema dialect.ProfileSchema, profileID int64, typeIDs []int64) error {
	if err := tx.Exec(dialect.BuildAssignmentDelete(r.adapter, schema), profileID).Error; err != nil {
		return err
	}
	insert := dialect.BuildAssignmentInsert(r.adapter, schema)
	for _, typeID := range typeIDs {
		if err := tx.Exec(insert, profileID, typeID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *businessProfileRepository) GetBinary(profileID int64, kind dialect.BinaryKind) (*BinaryPayload, error) {
	schema, err := dialect.DescribeProfileSchema(r.adapter, r.db)
	if err != nil {
		logger.Error("Failed to probe profile schema", err)
		return nil, err
	}

	var row binaryRow
	result := r.db.Raw(dialect.BuildBinarySelect(r.adapter, schema, kind), profileID).Scan(&row)
	if result.Error != nil {
		logger.Error("Failed to read stored binary", result.Error, map[string]interface{}{
			"profile_id": profileID,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(row.Data) == 0 {
		return nil, nil
	}

	return &BinaryPayload{
		FileName:    deref(row.FileName),
		ContentType: deref(row.ContentType),
		Data:        row.Data,
	}, nil
}

func profileToRecord(p *model.BusinessProfile, actorID uint, now time.Time) dialect.ProfileRecord {
	return dialect.ProfileRecord{
		ID:                   int64(p.ID),
		Name:                 p.Name,
		Email:                p.Email,
		Phone:                p.Phone,
		GSTNumber:            p.GSTNumber,
		PANNumber:            p.PANNumber,
		Notes:                p.Notes,
		LogoName:             p.LogoName,
		LogoContentType:      p.LogoContentType,
		LogoData:             p.LogoData,
		SignatureName:        p.SignatureName,
		SignatureContentType: p.SignatureContentType,
		SignatureData:        p.SignatureData,
		ActorID:              int64(actorID),
		Now:                  now,
	}
}

func rowToProfile(row profileRow) *model.BusinessProfile {
	profile := &model.BusinessProfile{
		ID:        uint(row.ID),
		Name:      deref(row.Name),
		Email:     deref(row.Email),
		Phone:     deref(row.Phone),
		GSTNumber: deref(row.GSTNumber),
		PANNumber: deref(row.PANNumber),
		Notes:     deref(row.Notes),
	}
	if row.CreatedBy != nil {
		profile.CreatedBy = uint(*row.CreatedBy)
	}
	if row.UpdatedBy != nil {
		profile.UpdatedBy = uint(*row.UpdatedBy)
	}
	if row.CreatedAt != nil {
		profile.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		profile.UpdatedAt = *row.UpdatedAt
	}
	return profile
}

func rowToAddress(row addressRow) *model.BusinessAddress {
	address := &model.BusinessAddress{
		ID:             uint(row.ID),
		ProfileID:      uint(row.ProfileID),
		BillingAddress: deref(row.BillingAddress),
		City:           deref(row.City),
		PostalCode:     deref(row.PostalCode),
	}
	if row.StateID != nil {
		stateID := uint(*row.StateID)
		address.StateID = &stateID
	}
	return address
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
