package overtime

import (
	"errors"

	overtimeerrors "go-payroll/internal/overtime/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return overtimeerrors.ErrOvertimeNotFound
	}

	return err
}
