package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrConfiguration      = errors.New("configuration incomplete")
	ErrStudentNotFound    = errors.New("student not found")
	ErrNoEligiblePayments = errors.New("no eligible payments for the target year")
	ErrDataSource         = errors.New("data source unavailable")
	ErrRender             = errors.New("document rendering failed")
)
