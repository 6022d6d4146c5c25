package postgres

import (
	"strings"

	"showcase/internal/errors"

	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE of unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation recognizes duplicate keys whether or not the
// dialector has TranslateError enabled.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, pgUniqueViolation) || strings.Contains(msg, "duplicate key value")
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
