package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrValidation       = errors.New("validation error")
	ErrNotEnoughBalance = errors.New("not enough balance")

	ErrLotteryNotActive     = errors.New("lottery not active")
	ErrAlreadyParticipating = errors.New("already participating")
	ErrNoParticipants       = errors.New("no participants")
)
