package catalog

import "errors"

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnknownEnumValue = errors.New("unknown enum value")
)
