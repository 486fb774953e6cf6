package services

import "errors"

// Domain errors ให้ controller map เป็น HTTP code ด้วย errors.Is
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrTransaction   = errors.New("transaction failed")
)
