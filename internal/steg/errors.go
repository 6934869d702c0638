package steg

import (
	"strconv"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

var (
	// ErrCapacityExceeded indicates the message does not fit the image for
	// the selected method.
	ErrCapacityExceeded = apperrors.New(apperrors.CodeCapacityExceeded, "message exceeds image capacity")
	// ErrUnsupportedMethod indicates a declared method with no codec.
	ErrUnsupportedMethod = apperrors.New(apperrors.CodeUnsupportedMethod, "method is not implemented")
	// ErrUnknownMethod indicates a method value outside the declared set.
	ErrUnknownMethod = apperrors.New(apperrors.CodeUnknownMethod, "unknown method")
	// ErrImageDimensions indicates an image that does not match the engine
	// configuration.
	ErrImageDimensions = apperrors.New(apperrors.CodeImageDimensions, "image dimensions do not match configuration")
	// ErrInvalidConfig indicates an engine configuration that cannot be used.
	ErrInvalidConfig = apperrors.New(apperrors.CodeInvalidConfig, "invalid configuration")
)

func capacityError(method Method, needBits, haveBits int) error {
	return apperrors.WithMetadata(apperrors.CodeCapacityExceeded, "message exceeds image capacity", map[string]string{
		"method":    method.String(),
		"need_bits": strconv.Itoa(needBits),
		"have_bits": strconv.Itoa(haveBits),
	})
}

func unsupportedError(method Method) error {
	return apperrors.WithMetadata(apperrors.CodeUnsupportedMethod, "method is not implemented", map[string]string{
		"method": method.String(),
	})
}
