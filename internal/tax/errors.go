package tax

import "errors"

var (
	// ErrNegativeIncome is returned when a caller supplies income below zero.
	ErrNegativeIncome = errors.New("tax: income must not be negative")
	// ErrUnknownCategory is returned for category tags outside the closed enumeration.
	ErrUnknownCategory = errors.New("tax: unknown employment category")
	// ErrInvalidIncome is returned when an income string is not a decimal number.
	ErrInvalidIncome = errors.New("tax: income is not a valid number")
	// ErrIncomeOutOfRange is returned for incomes above MaxIncome or written
	// with more precision than a rupee amount can carry.
	ErrIncomeOutOfRange = errors.New("tax: income out of range")
)
