package status

type ConvError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return ConvError{
		Code:    code,
		Message: message,
	}
}

func (c ConvError) Error() string {
	return c.Message
}

var (
	ErrInvalidDigit     = NewError(InvalidDigit, "not a hex digit")
	ErrInvalidLength    = NewError(InvalidLength, "hex string is empty, of odd length, or too long")
	ErrInvalidCodePoint = NewError(InvalidCodePoint, "code point is a surrogate or beyond U+10FFFF")
)
