package linking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// CodeLength is the default number of digits in a session code.
const CodeLength = 6

// NewCode generates a cryptographically random numeric session code of the
// default length. The code is the session's admission secret and must reach
// the child through a channel the two devices already trust.
func NewCode() (string, error) {
	return NewCodeN(CodeLength)
}

// NewCodeN generates a numeric session code of n digits.
func NewCodeN(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: length %d", ErrInvalidCode, n)
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating session code: %w", err)
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}

// ParseCode validates a session code supplied out of band.
func ParseCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCode)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidCode, s)
		}
	}
	return s, nil
}
