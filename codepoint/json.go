package codepoint

import (
	"strconv"
	"strings"

	"github.com/bzeller/utf8-things/status"
	"github.com/indigo-web/utils/uf"
)

// MarshalJSON renders the code point as its U+XXXX notation
func (cp CodePoint) MarshalJSON() ([]byte, error) {
	return uf.S2B(strconv.Quote(cp.String())), nil
}

// UnmarshalJSON accepts the U+XXXX notation produced by MarshalJSON,
// case-insensitively in both the prefix and the digits
func (cp *CodePoint) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(uf.B2S(data))
	if err != nil {
		return err
	}

	if !strings.HasPrefix(str, "U+") && !strings.HasPrefix(str, "u+") {
		return status.ErrInvalidCodePoint
	}

	// the notation drops leading zeroes, so U+10348 carries five digits
	digits := str[2:]
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	parsed, err := FromHex(digits)
	if err != nil {
		return err
	}

	*cp = parsed

	return nil
}
