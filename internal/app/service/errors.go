package service

import (
	"errors"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateName      = errors.New("name already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRoleInUse          = errors.New("role is assigned to one or more users")
)

// classifyWriteError funnels a repository error through the dialect's
// error classifier. Uniqueness violations become ErrDuplicateName so
// handlers can attach them to the name field; everything else
// propagates as-is and surfaces as a generic failure.
func classifyWriteError(adapter dialect.Adapter, err error) error {
	if err == nil {
		return nil
	}
	switch adapter.Classify(err) {
	case dialect.ClassUniqueViolation:
		return ErrDuplicateName
	case dialect.ClassNotFound:
		return ErrNotFound
	default:
		return err
	}
}
