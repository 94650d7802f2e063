package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

const (
	// TrackingCodeMinLength is the minimum number of characters in a valid tracking code.
	TrackingCodeMinLength = 8

	// trackingCodePrefix prefixes every generated tracking code.
	trackingCodePrefix = "TRK"

	// trackingCodeRandomLength is the number of random characters appended after the prefix.
	trackingCodeRandomLength = 9

	// trackingCodeAlphabet excludes easily confused characters (0/O, 1/I/L).
	trackingCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// ErrTrackingCodeIsNotConstructed is returned when validating a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode or TrackingCodeFromString")

// TrackingCode is the opaque public identifier a shipment can be looked up by
// without authentication. It is distinct from the internal order number.
//
// Codes are stored and compared in uppercase; TrackingCodeFromString normalizes
// its input, so lookups are effectively case-insensitive. A valid code has at
// least TrackingCodeMinLength alphanumeric characters.
type TrackingCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode generates a fresh random tracking code.
// The result looks like "TRK7G2MQ4XNE": a fixed prefix plus random characters
// from an unambiguous alphabet.
func NewTrackingCode() TrackingCode {
	buf := make([]byte, trackingCodeRandomLength)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}

	code, _ := TrackingCodeFromString(trackingCodePrefix + string(buf))
	return code
}

// TrackingCodeFromString parses a tracking code supplied by a user or loaded
// from persistence. Input is trimmed and normalized to uppercase before
// validation, so "test123456" and "TEST123456" resolve to the same code.
// Returns an error if the normalized code is shorter than TrackingCodeMinLength
// or contains non-alphanumeric characters.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	if len(normalized) < TrackingCodeMinLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
			fmt.Errorf("%q is shorter than %d characters", normalized, TrackingCodeMinLength))
	}

	for _, r := range normalized {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		if !isDigit && !isUpper {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause("trackingCode",
				fmt.Errorf("%q contains invalid character %q", normalized, r))
		}
	}

	return TrackingCode{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized (uppercase) code.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes for equality.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate ensures the code was created through one of the constructors.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}
