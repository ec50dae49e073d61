package security

import (
	"crypto/rand"
	"errors"
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Rejection sampling keeps the distribution unbiased when the
// alphabet size does not divide 256.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errors.New("length must be non-negative")
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errors.New("alphabet must not be empty")
	}
	if len(alphabet) > 256 {
		return "", errors.New("alphabet exceeds 256 characters")
	}

	threshold := 256 - 256%len(alphabet)
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= threshold {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
