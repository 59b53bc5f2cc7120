// Package service implements the resource services. Each service runs
// structural validation, then the relational integrity checks, then the write,
// with every check-then-act sequence scoped to a single database transaction
// so the check and the write cannot interleave with a competing request.
package service

import (
	"errors"

	"gorm.io/gorm"

	"go-thrifty-inventory/internal/apperr"
)

// notFoundOr maps a failed lookup to NotFound for missing rows and Internal
// for everything else.
func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity)
	}
	return apperr.Internal(err)
}
