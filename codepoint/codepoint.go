package codepoint

import (
	"fmt"

	"github.com/bzeller/utf8-things/internal/hexconv"
	"github.com/bzeller/utf8-things/status"
)

// CodePoint is the integer identity of a single unicode character,
// ranging U+0000 to U+10FFFF
type CodePoint int32

const (
	Max CodePoint = 0x10FFFF

	// UTF-8 prohibits encoding the UTF-16 surrogate pair range
	SurrogateMin CodePoint = 0xD800
	SurrogateMax CodePoint = 0xDFFF
)

// Plane tells how many bytes the UTF-8 encoding of a code point occupies.
// This is the encoding-length category, not the unicode "supplementary
// plane" notion
type Plane uint8

const (
	Invalid Plane = iota
	Ascii
	Latin
	MultiLingual
	Extended
)

func (p Plane) String() string {
	lut := [...]string{
		Invalid:      "Invalid",
		Ascii:        "Ascii",
		Latin:        "Latin",
		MultiLingual: "MultiLingual",
		Extended:     "Extended",
	}
	if int(p) >= len(lut) {
		return "Invalid"
	}

	return lut[p]
}

// Bytes returns the length of the UTF-8 encoding in bytes, or 0 for Invalid
func (p Plane) Bytes() int {
	lut := [...]int{Ascii: 1, Latin: 2, MultiLingual: 3, Extended: 4}
	if int(p) >= len(lut) {
		return 0
	}

	return lut[p]
}

// PlaneOf classifies a code point by its UTF-8 encoding length. The
// function is total: out-of-range values and surrogates yield Invalid
// instead of an error
func PlaneOf(cp CodePoint) Plane {
	switch {
	case cp < 0 || cp > Max:
		return Invalid
	case cp <= 0x7F:
		return Ascii
	case cp <= 0x7FF:
		return Latin
	case cp >= SurrogateMin && cp <= SurrogateMax:
		return Invalid
	case cp <= 0xFFFF:
		return MultiLingual
	default:
		return Extended
	}
}

// IsValid reports whether cp may be encoded as UTF-8 at all
func (cp CodePoint) IsValid() bool {
	return PlaneOf(cp) != Invalid
}

// String renders the usual U+XXXX notation, e.g. U+0048 or U+10FFFF
func (cp CodePoint) String() string {
	return fmt.Sprintf("U+%04X", int32(cp))
}

// FromHex parses a code point written as hex digits, e.g. "0048" or
// "010000". The string must be of even length and at most 8 digits; no
// "0x" or "U+" prefix, separators or whitespace are accepted. Input
// length is otherwise free, so "00000048" and "0048" parse equally
func FromHex(hexDigits string) (CodePoint, error) {
	value, err := hexconv.Uint[uint32](hexDigits)
	if err != nil {
		return 0, err
	}

	cp := CodePoint(value)
	if !cp.IsValid() {
		return 0, status.ErrInvalidCodePoint
	}

	return cp, nil
}
