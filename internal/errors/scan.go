package errors

import "fmt"

// AnnotationNotFound reports an identifier that does not resolve to a
// registered annotation declaration.
func AnnotationNotFound(identifier string) *BaseError {
	return New(AnnotationNotFoundCode, fmt.Sprintf("annotation not found: %s", identifier)).
		WithContext("annotation", identifier)
}

// ScanFailure wraps any other introspection error raised while scanning.
func ScanFailure(identifier string, cause error) *BaseError {
	return Wrap(ScanFailureCode, fmt.Sprintf("error scanning types with annotation: %s", identifier), cause).
		WithContext("annotation", identifier)
}

// IsAnnotationNotFound reports whether err, or anything it wraps, is an
// AnnotationNotFound error.
func IsAnnotationNotFound(err error) bool {
	return HasCode(err, AnnotationNotFoundCode)
}

// IsScanFailure reports whether err, or anything it wraps, is a ScanFailure.
func IsScanFailure(err error) bool {
	return HasCode(err, ScanFailureCode)
}
