package status

// Code identifies the reason a conversion was rejected. Every failure of the
// codec maps onto exactly one of these
type Code uint8

const (
	// InvalidDigit signals a character outside of 0-9, a-f and A-F
	InvalidDigit Code = iota + 1
	// InvalidLength signals an empty or odd-length hex string, or one that
	// does not fit the target integer width
	InvalidLength
	// InvalidCodePoint signals a value inside the UTF-16 surrogate range or
	// beyond U+10FFFF
	InvalidCodePoint
)
