package binary

import "errors"

// Error taxonomy of the codec. Every failure aborts the decode of the
// current file: each field's byte width is load-bearing for everything
// after it, so there is no field-level recovery. Callers retry by
// re-running the decode on a corrected buffer.
var (
	// ErrInsufficientData means the buffer ended inside a fixed-size
	// field or a computed variable-size field.
	ErrInsufficientData = errors.New("unexpected end of data")

	// ErrMalformedString means an ascii field held bytes outside the
	// ASCII range before its NUL terminator.
	ErrMalformedString = errors.New("malformed ascii string")

	// ErrStringTooLong means a string plus its NUL terminator does not
	// fit the fixed field width on encode.
	ErrStringTooLong = errors.New("string too long for field")

	// ErrBadMagic means a save file does not start with the
	// "FALLOUT SAVE FILE" signature.
	ErrBadMagic = errors.New("missing FALLOUT SAVE FILE signature")

	// ErrInvalidVersion means the map version word is neither the
	// Fallout 1 nor the Fallout 2 value.
	ErrInvalidVersion = errors.New("unrecognized map version")

	// ErrInvalidFlags means the flag word does not fit the engine's
	// signed 32-bit flag representation after the wire inversion.
	ErrInvalidFlags = errors.New("invalid map flags")

	// ErrUnknownRecordSize means a real script record carried a tag
	// whose record size is not known. Padding slots never raise this.
	ErrUnknownRecordSize = errors.New("unknown script record size")

	// ErrNegativeCount means a length field was negative.
	ErrNegativeCount = errors.New("negative count")
)
