package hexconv

import (
	"unsafe"

	"github.com/bzeller/utf8-things/internal/constraints"
	"github.com/bzeller/utf8-things/status"
)

// halfbyte maps an ASCII hex digit to its value plus one, so that a zero
// entry means "not a hex digit" and no separate validity lookup is needed
var halfbyte = [256]byte{
	'0': 0x1,
	'1': 0x2,
	'2': 0x3,
	'3': 0x4,
	'4': 0x5,
	'5': 0x6,
	'6': 0x7,
	'7': 0x8,
	'8': 0x9,
	'9': 0xa,
	'a': 0xb,
	'b': 0xc,
	'c': 0xd,
	'd': 0xe,
	'e': 0xf,
	'f': 0x10,
	'A': 0xB,
	'B': 0xC,
	'C': 0xD,
	'D': 0xE,
	'E': 0xF,
	'F': 0x10,
}

// Parse returns char value + 1 IF char is a valid hex, 0 otherwise.
// So in order to treat the returned value correctly, check whether it's 0
func Parse(char byte) byte {
	return halfbyte[char]
}

// Is reports whether char belongs to the hex alphabet (case-insensitive)
func Is(char byte) bool {
	return halfbyte[char] != 0
}

// Uint folds a string of hex digits into T, most significant digit first.
// The string must be non-empty, of even length and fit T exactly, so a
// uint16 takes at most 4 digits and a uint32 at most 8. Overflow cannot
// happen by construction
func Uint[T constraints.Uint](hexDigits string) (T, error) {
	var value T
	maxDigits := int(unsafe.Sizeof(value)) * 2

	if len(hexDigits) == 0 || len(hexDigits)%2 != 0 || len(hexDigits) > maxDigits {
		return 0, status.ErrInvalidLength
	}

	for i := 0; i < len(hexDigits); i++ {
		half := Parse(hexDigits[i])
		if half == 0 {
			return 0, status.ErrInvalidDigit
		}

		value = value<<4 | T(half-1)
	}

	return value, nil
}
