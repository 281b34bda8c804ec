package payroll

import (
	"errors"

	payrollerrors "go-payroll/internal/payroll/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPeriodNotFound
	}

	return err
}
