// Package dberrors maps GORM and driver failures onto the errs kinds the
// application core understands.
package dberrors

import (
	"errors"

	"foodies/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate classifies err raised by operation op.
//
// Domain errors pass through unchanged, duplicate keys become validation
// errors and everything else is reported as errs.StorageUnavailableError.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isDomain(err):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewValueIsInvalidErrorWithCause(op, err)
	default:
		return errs.NewStorageUnavailableError(op, err)
	}
}

// NotFoundOr returns an ObjectNotFoundError for gorm.ErrRecordNotFound and
// Translate(op, err) otherwise.
func NotFoundOr(op string, object string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, id)
	}
	return Translate(op, err)
}

func isDomain(err error) bool {
	return errs.IsValidation(err) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrVersionIsInvalid) ||
		errors.Is(err, errs.ErrStorageUnavailable)
}
