// Package utf8things converts unicode code points written in hex notation
// (e.g. "0048") into their canonical UTF-8 byte encoding.
package utf8things

import (
	"github.com/bzeller/utf8-things/codepoint"
	"github.com/bzeller/utf8-things/status"
	"github.com/indigo-web/utils/uf"
)

// UTF-8 byte prefixes
const (
	contPrefix         = 0x80 // 0b10000000, continuation byte
	latinPrefix        = 0xC0 // 0b11000000
	multiLingualPrefix = 0xE0 // 0b11100000
	extendedPrefix     = 0xF0 // 0b11110000

	// contMask selects the six payload bits of a continuation byte
	contMask = 0x3F // 0b00111111
)

// MaxBytes is the longest possible UTF-8 encoding of a single code point
const MaxBytes = 4

// Encode converts a code point, written as an even number of unprefixed
// hex digits, into its UTF-8 byte sequence:
//
//	Encode("0048") -> "H"
//	Encode("20AC") -> "€"
//	Encode("010348") -> "𐍈"
//
// A failure of any stage (bad digit, bad length, surrogate or
// out-of-range value) yields nil bytes and the respective status error.
// There is no partial output
func Encode(hexDigits string) ([]byte, error) {
	cp, err := codepoint.FromHex(hexDigits)
	if err != nil {
		return nil, err
	}

	return AppendCodePoint(make([]byte, 0, MaxBytes), cp)
}

// EncodeString is Encode returning the bytes as a string without copying
func EncodeString(hexDigits string) (string, error) {
	encoded, err := Encode(hexDigits)
	if err != nil {
		return "", err
	}

	return uf.B2S(encoded), nil
}

// AppendCodePoint appends the UTF-8 encoding of cp to dst and returns the
// extended buffer. The bytes are derived from the code point value alone,
// by shifting six payload bits into each continuation byte and OR-ing the
// plane's lead prefix over what remains:
//
//	Ascii        0yyyzzzz
//	Latin        110xxxyy 10yyzzzz
//	MultiLingual 1110wwww 10xxxxyy 10yyzzzz
//	Extended     11110uvv 10vvwwww 10xxxxyy 10yyzzzz
//
// If cp is not encodable, dst is returned untouched along with
// status.ErrInvalidCodePoint
func AppendCodePoint(dst []byte, cp codepoint.CodePoint) ([]byte, error) {
	switch codepoint.PlaneOf(cp) {
	case codepoint.Ascii:
		return append(dst, byte(cp)), nil
	case codepoint.Latin:
		return append(dst,
			latinPrefix|byte(cp>>6),
			contPrefix|byte(cp)&contMask,
		), nil
	case codepoint.MultiLingual:
		return append(dst,
			multiLingualPrefix|byte(cp>>12),
			contPrefix|byte(cp>>6)&contMask,
			contPrefix|byte(cp)&contMask,
		), nil
	case codepoint.Extended:
		return append(dst,
			extendedPrefix|byte(cp>>18),
			contPrefix|byte(cp>>12)&contMask,
			contPrefix|byte(cp>>6)&contMask,
			contPrefix|byte(cp)&contMask,
		), nil
	default:
		return dst, status.ErrInvalidCodePoint
	}
}
