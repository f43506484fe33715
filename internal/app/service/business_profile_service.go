package service

import (
	"sort"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/util"
)

type BusinessProfileService interface {
	// GetLatest returns the newest profile with its address and
	// type-assignment ids, or nil when none has been saved yet.
	GetLatest() (*model.BusinessProfile, error)

	// Save inserts or updates the profile aggregate and returns the
	// profile id. The assignment selection is normalized first:
	// duplicates collapsed, non-positive ids discarded.
	Save(profile *model.BusinessProfile, actorID uint) (int64, error)

	// GetLogo and GetSignature return the stored payload with a
	// content type, sniffing it from magic bytes when the stored
	// value lacks one. nil when nothing is stored.
	GetLogo(profileID int64) (*repository.BinaryPayload, error)
	GetSignature(profileID int64) (*repository.BinaryPayload, error)
}

type businessProfileService struct {
	repo repository.BusinessProfileRepository
}

func NewBusinessProfileService(repo repository.BusinessProfileRepository) BusinessProfileService {
	return &businessProfileService{repo: repo}
}

func (s *businessProfileService) GetLatest() (*model.BusinessProfile, error) {
	return s.repo.FindLatest()
}

func (s *businessProfileService) Save(profile *model.BusinessProfile, actorID uint) (int64, error) {
	profile.BusinessTypeIDs = normalizeTypeIDs(profile.BusinessTypeIDs)

	logger.Info("Saving business profile", map[string]interface{}{
		"profile_id": profile.ID,
		"type_count": len(profile.BusinessTypeIDs),
		"actor_id":   actorID,
	})
	return s.repo.Save(profile, actorID)
}

func (s *businessProfileService) GetLogo(profileID int64) (*repository.BinaryPayload, error) {
	return s.binary(profileID, dialect.BinaryLogo)
}

func (s *businessProfileService) GetSignature(profileID int64) (*repository.BinaryPayload, error) {
	return s.binary(profileID, dialect.BinarySignature)
}

func (s *businessProfileService) binary(profileID int64, kind dialect.BinaryKind) (*repository.BinaryPayload, error) {
	payload, err := s.repo.GetBinary(profileID, kind)
	if err != nil || payload == nil {
		return nil, err
	}
	if payload.ContentType == "" {
		payload.ContentType = util.SniffImageContentType(payload.Data)
	}
	return payload, nil
}

// normalizeTypeIDs reduces the submitted selection to the distinct
// positive ids, ascending.
func normalizeTypeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	normalized := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i] < normalized[j] })
	return normalized
}
