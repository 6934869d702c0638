// Package errors provides structured error handling for challenge operations.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Configuration errors
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Method errors
	CodeUnknownMethod     Code = "UNKNOWN_METHOD"
	CodeUnsupportedMethod Code = "UNSUPPORTED_METHOD"

	// Embedding errors
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	CodeImageDimensions  Code = "IMAGE_DIMENSIONS"

	// Artifact errors
	CodeImageIO          Code = "IMAGE_IO"
	CodeArtifactModified Code = "ARTIFACT_MODIFIED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// ExitCode maps domain codes to process exit statuses for command entrypoints.
func (c Code) ExitCode() int {
	switch c {
	// Caller supplied something we cannot act on
	case CodeInvalidConfig,
		CodeUnknownMethod,
		CodeImageDimensions:
		return 2

	// The request was understood but cannot be carried out
	case CodeUnsupportedMethod,
		CodeCapacityExceeded:
		return 3

	// Artifact problems
	case CodeImageIO,
		CodeArtifactModified,
		CodeNotFound:
		return 4

	default:
		return 1
	}
}
