package mii

import "strconv"

type errGeneric uint8

// Generic errors common to PHY register access.
const (
	_                errGeneric = iota // non-initialized err
	ErrShortBuffer                     // short buffer
	ErrInvalidAddr                     // invalid address
	ErrInvalidConfig                   // invalid configuration
	ErrUnsupported                     // unsupported
	ErrNameTooLong                     // interface name too long
)

func (err errGeneric) Error() string {
	return err.String()
}

func (err errGeneric) String() string {
	switch err {
	case ErrShortBuffer:
		return "short buffer"
	case ErrInvalidAddr:
		return "invalid address"
	case ErrInvalidConfig:
		return "invalid configuration"
	case ErrUnsupported:
		return "unsupported"
	case ErrNameTooLong:
		return "interface name too long"
	default:
		return "errGeneric(" + strconv.Itoa(int(err)) + ")"
	}
}
