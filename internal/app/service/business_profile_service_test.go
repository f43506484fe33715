package service

import (
	"testing"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileRepo struct {
	saved   *model.BusinessProfile
	binary  *repository.BinaryPayload
	saveErr error
}

func (s *stubProfileRepo) FindLatest() (*model.BusinessProfile, error) {
	return s.saved, nil
}

func (s *stubProfileRepo) Save(profile *model.BusinessProfile, actorID uint) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.saved = profile
	return 1, nil
}

func (s *stubProfileRepo) GetBinary(profileID int64, kind dialect.BinaryKind) (*repository.BinaryPayload, error) {
	return s.binary, nil
}

func TestBusinessProfileService_Save(t *testing.T) {
	t.Run("Type selection is normalized before persisting", func(t *testing.T) {
		tests := []struct {
			name string
			in   []int64
			want []int64
		}{
			{"Duplicates collapse, non-positive drop", []int64{2, 2, 3, -1}, []int64{2, 3}},
			{"Order becomes ascending", []int64{9, 1, 5}, []int64{1, 5, 9}},
			{"Zero ids drop", []int64{0, 4}, []int64{4}},
			{"Empty stays empty", nil, []int64{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &stubProfileRepo{}
				svc := NewBusinessProfileService(repo)

				_, err := svc.Save(&model.BusinessProfile{Name: "X", BusinessTypeIDs: tt.in}, 1)
				require.NoError(t, err)
				assert.Equal(t, tt.want, repo.saved.BusinessTypeIDs)
			})
		}
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		repo := &stubProfileRepo{saveErr: assert.AnError}
		svc := NewBusinessProfileService(repo)

		_, err := svc.Save(&model.BusinessProfile{Name: "X"}, 1)
		assert.Error(t, err)
	})
}

func TestBusinessProfileService_Binaries(t *testing.T) {
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	t.Run("Missing content type is sniffed from magic bytes", func(t *testing.T) {
		repo := &stubProfileRepo{binary: &repository.BinaryPayload{Data: pngHeader}}
		svc := NewBusinessProfileService(repo)

		payload, err := svc.GetLogo(1)
		require.NoError(t, err)
		assert.Equal(t, "image/png", payload.ContentType)
	})

	t.Run("Stored content type wins over sniffing", func(t *testing.T) {
		repo := &stubProfileRepo{binary: &repository.BinaryPayload{
			ContentType: "image/webp",
			Data:        pngHeader,
		}}
		svc := NewBusinessProfileService(repo)

		payload, err := svc.GetSignature(1)
		require.NoError(t, err)
		assert.Equal(t, "image/webp", payload.ContentType)
	})

	t.Run("Nothing stored returns nil", func(t *testing.T) {
		svc := NewBusinessProfileService(&stubProfileRepo{})

		payload, err := svc.GetLogo(1)
		require.NoError(t, err)
		assert.Nil(t, payload)
	})
}
