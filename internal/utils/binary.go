package utils

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotText reports content that cannot be decoded as text.
var ErrNotText = errors.New("content is not valid text")

// IsBinary reports whether the provided byte slice appears to contain binary data.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if !utf8.Valid(data) {
		return true
	}
	for _, byteValue := range data {
		if byteValue == 0 {
			return true
		}
	}
	return false
}

// DecodeText converts file bytes into a UTF-8 string.
// A leading byte order mark selects UTF-8 or UTF-16 decoding and is removed;
// without one the bytes must already be UTF-8. Data that still looks binary
// after decoding yields ErrNotText.
func DecodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
	decodedBytes, _, decodeError := transform.Bytes(decoder, data)
	if decodeError != nil {
		return "", errors.Join(ErrNotText, decodeError)
	}
	if IsBinary(decodedBytes) {
		return "", ErrNotText
	}
	return string(decodedBytes), nil
}
