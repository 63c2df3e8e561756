// Package drawid generates identifiers for draws. IDs are UUIDv7 values
// encoded as 26 lowercase base32 characters, so they sort by creation time
// and are safe to use in file names.
package drawid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, as used by TypeID
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID
const Length = 26

// Generate returns a new draw ID
func Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("failed to generate draw id: " + err.Error())
	}
	return Encode(id)
}

// GenerateFrom builds an ID whose random bits are read from r, for tests
// that need reproducible IDs.
func GenerateFrom(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate draw id: %w", err)
	}
	return Encode(id), nil
}

// Encode encodes a UUID as a 26 character base32 string. The 128 bits are
// prefixed with two zero bits so they split evenly into 5 bit groups.
func Encode(id uuid.UUID) string {
	result := make([]byte, Length)

	for i := 0; i < Length; i++ {
		// Bit position within the 130 bit value, minus the two pad bits
		bitOffset := i*5 - 2
		var value uint8
		for b := 0; b < 5; b++ {
			value <<= 1
			pos := bitOffset + b
			if pos < 0 {
				continue
			}
			if id[pos/8]&(0x80>>(pos%8)) != 0 {
				value |= 1
			}
		}
		result[i] = alphabet[value]
	}

	return string(result)
}

// Decode parses an encoded ID back into its UUID
func Decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}

	for i := 0; i < Length; i++ {
		value := strings.IndexByte(alphabet, s[i])
		for b := 0; b < 5; b++ {
			pos := i*5 - 2 + b
			if pos < 0 {
				continue
			}
			if value&(0x10>>b) != 0 {
				id[pos/8] |= 0x80 >> (pos % 8)
			}
		}
	}
	return id, nil
}

// Validate checks that s is a well-formed draw ID
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("draw ID must be exactly %d characters, got %d", Length, len(s))
	}

	// The first character carries the two pad bits plus three data bits
	if s[0] > '7' {
		return fmt.Errorf("draw ID first character must be 0-7, got %c", s[0])
	}

	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
	}

	return nil
}
