package atom

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("atom: invalid UTF-8")

func validate(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	return invalidAt([]byte(s))
}

// invalidAt reports the offset of the first invalid sequence in b.
func invalidAt(b []byte) error {
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		off += size
	}
	return fmt.Errorf("%w at byte offset %d", ErrInvalidEncoding, off)
}
