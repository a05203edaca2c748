package xdr

import "fmt"

// EncodeErrorKind identifies which failure an EncodeError reports.
type EncodeErrorKind int

const (
	// EncodeMapNotSupported is returned whenever a map-shaped value is encoded; XDR has no map representation.
	EncodeMapNotSupported EncodeErrorKind = iota
	// EncodeOpaqueTooLong is returned when an opaque blob's length exceeds 2^32-1.
	EncodeOpaqueTooLong
	// EncodeSequenceTooLong is returned when a sequence's length exceeds 2^32-1.
	EncodeSequenceTooLong
	// EncodeSequenceUnknownLength is returned when a sequence is started without a known length.
	EncodeSequenceUnknownLength
	// EncodeStringNotASCII is returned when a string contains a byte >= 0x80.
	EncodeStringNotASCII
	// EncodeStringTooLong is returned when a string's length exceeds 2^32-1.
	EncodeStringTooLong
	// EncodeIoError wraps a failure from the underlying sink.
	EncodeIoError
	// EncodeFailure wraps an inner error with the location at which it occurred.
	EncodeFailure
	// EncodeFatalStructState is returned when a consumed struct/tuple sub-encoder is reused.
	EncodeFatalStructState
	// EncodeFatalSequenceState is returned when a consumed sequence sub-encoder is reused.
	EncodeFatalSequenceState
	// EncodeCustom wraps a message supplied by the data-model layer.
	EncodeCustom
)

// EncodeError is the closed, causally-chained error taxonomy produced by Encoder
// operations. Exactly one group of payload fields is meaningful, selected by Kind.
type EncodeError struct {
	Kind    EncodeErrorKind
	Length  uint64 // OpaqueTooLong, SequenceTooLong, StringTooLong (string length)
	String  string // StringNotASCII, StringTooLong
	Name    string // FatalStructState, FatalSequenceState
	What    string // IoError, Failure: human-readable location
	Message string // Custom
	Cause   error  // IoError, Failure
}

func (e *EncodeError) Error() string {
	switch e.Kind {
	case EncodeMapNotSupported:
		return "XDR does not support a map type"
	case EncodeOpaqueTooLong:
		return fmt.Sprintf("opaque data too long: %d bytes", e.Length)
	case EncodeSequenceTooLong:
		return fmt.Sprintf("sequence too long: %d elements", e.Length)
	case EncodeSequenceUnknownLength:
		return "cannot encode a sequence with unknown length"
	case EncodeStringNotASCII:
		return fmt.Sprintf("string is not ASCII: %q", e.String)
	case EncodeStringTooLong:
		return fmt.Sprintf("string too long: %d bytes", e.Length)
	case EncodeIoError:
		return fmt.Sprintf("IO error while encoding %s: %s", e.What, e.Cause)
	case EncodeFailure:
		return fmt.Sprintf("%s: %s", e.What, e.Cause)
	case EncodeFatalStructState:
		return fmt.Sprintf("struct encoder %s used after being consumed", e.Name)
	case EncodeFatalSequenceState:
		return fmt.Sprintf("sequence encoder %s used after being consumed", e.Name)
	case EncodeCustom:
		return e.Message
	default:
		return "unknown encode error"
	}
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *EncodeError) Unwrap() error { return e.Cause }

// NewEncodeCustomError builds the Custom variant required by the data-model
// framework's error contract (a `custom(message)` constructor).
func NewEncodeCustomError(message string) *EncodeError {
	return &EncodeError{Kind: EncodeCustom, Message: message}
}

func wrapEncodeIo(what string, cause error) error {
	return &EncodeError{Kind: EncodeIoError, What: what, Cause: cause}
}

// wrapEncodeFailure nests cause under a Failure naming where it occurred,
// unless cause is already nil (nothing to wrap).
func wrapEncodeFailure(what string, cause error) error {
	if cause == nil {
		return nil
	}
	return &EncodeError{Kind: EncodeFailure, What: what, Cause: cause}
}

// DecodeErrorKind identifies which failure a DecodeError reports.
type DecodeErrorKind int

const (
	// DecodeUnknownType is returned when the decoder is asked to decode a kind it has no handler for.
	DecodeUnknownType DecodeErrorKind = iota
	// DecodeIdentifierNotSupported is returned for identifier/metadata decode requests.
	DecodeIdentifierNotSupported
	// DecodeMapNotSupported is returned for map-shaped decode requests; XDR has no map representation.
	DecodeMapNotSupported
	// DecodeInvalidBool is returned when a bool slot holds neither 0 nor 1.
	DecodeInvalidBool
	// DecodeInvalidChar is returned when a char slot holds an invalid Unicode scalar value.
	DecodeInvalidChar
	// DecodeInvalidOption is returned when an option discriminant is neither 0 nor 1.
	DecodeInvalidOption
	// DecodeInvalidSignedInteger is returned when a narrow signed integer slot is out of range.
	DecodeInvalidSignedInteger
	// DecodeInvalidUnsignedInteger is returned when a narrow unsigned integer slot is out of range.
	DecodeInvalidUnsignedInteger
	// DecodeInvalidUTF8 is returned when a string's bytes are not valid UTF-8.
	DecodeInvalidUTF8
	// DecodeInvalidEnumVariant is returned when an enum discriminant is outside the known variant range.
	DecodeInvalidEnumVariant
	// DecodeIoError wraps a failure from the underlying source.
	DecodeIoError
	// DecodeFailure wraps an inner error with the location at which it occurred.
	DecodeFailure
	// DecodeTupleTooLong is returned when a tuple's declared element count exceeds 2^32-1.
	DecodeTupleTooLong
	// DecodeCustom wraps a message supplied by the data-model layer.
	DecodeCustom
)

// DecodeError is the closed, causally-chained error taxonomy produced by Decoder
// operations. Exactly one group of payload fields is meaningful, selected by Kind.
type DecodeError struct {
	Kind     DecodeErrorKind
	Raw      uint32   // InvalidBool, InvalidChar, InvalidOption (unused there)
	Bits     uint8    // InvalidSignedInteger, InvalidUnsignedInteger
	Value    int64    // InvalidSignedInteger, InvalidUnsignedInteger (sign-extended/widened)
	Variant  uint32   // InvalidEnumVariant
	Variants []string // InvalidEnumVariant
	Length   uint64   // TupleTooLong
	What     string   // IoError, Failure
	Message  string   // Custom
	Cause    error    // IoError, Failure
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case DecodeUnknownType:
		return "cannot decode unknown type"
	case DecodeIdentifierNotSupported:
		return "decoding an identifier is not supported"
	case DecodeMapNotSupported:
		return "XDR does not support a map type"
	case DecodeInvalidBool:
		return fmt.Sprintf("decoded an invalid bool: %d", e.Raw)
	case DecodeInvalidChar:
		return fmt.Sprintf("decoded an invalid char: 0x%x", e.Raw)
	case DecodeInvalidOption:
		return "decoded an invalid option discriminant"
	case DecodeInvalidSignedInteger:
		return fmt.Sprintf("decoded invalid %d-bit signed integer: %d", e.Bits, e.Value)
	case DecodeInvalidUnsignedInteger:
		return fmt.Sprintf("decoded invalid %d-bit unsigned integer: %d", e.Bits, e.Value)
	case DecodeInvalidUTF8:
		return "decoded an invalid UTF-8 string"
	case DecodeInvalidEnumVariant:
		return fmt.Sprintf("decoded an invalid enum variant: index %d, valid variants %v", e.Variant, e.Variants)
	case DecodeIoError:
		return fmt.Sprintf("IO error while decoding %s: %s", e.What, e.Cause)
	case DecodeFailure:
		return fmt.Sprintf("%s: %s", e.What, e.Cause)
	case DecodeTupleTooLong:
		return fmt.Sprintf("tuple has too many elements: %d", e.Length)
	case DecodeCustom:
		return e.Message
	default:
		return "unknown decode error"
	}
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *DecodeError) Unwrap() error { return e.Cause }

// NewDecodeCustomError builds the Custom variant required by the data-model
// framework's error contract (a `custom(message)` constructor).
func NewDecodeCustomError(message string) *DecodeError {
	return &DecodeError{Kind: DecodeCustom, Message: message}
}

func wrapDecodeIo(what string, cause error) error {
	return &DecodeError{Kind: DecodeIoError, What: what, Cause: cause}
}

// wrapDecodeFailure nests cause under a Failure naming where it occurred,
// unless cause is already nil (nothing to wrap).
func wrapDecodeFailure(what string, cause error) error {
	if cause == nil {
		return nil
	}
	return &DecodeError{Kind: DecodeFailure, What: what, Cause: cause}
}
