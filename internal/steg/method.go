package steg

import (
	"strings"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
)

// Method identifies a concealment technique.
type Method int

const (
	// MethodUnspecified asks the engine to draw a method from the seed.
	MethodUnspecified Method = iota

	// Concealment methods, in draw table order. BPCS, DCT, DWT and DFT are
	// declared but have no codec.
	MethodLSB
	MethodRed
	MethodGreen
	MethodBlue
	MethodAlpha
	MethodPVD
	MethodBPCS
	MethodDCT
	MethodDWT
	MethodDFT
)

// drawTable maps a method draw (mod its length) to a method. Order is part
// of the seed contract.
var drawTable = [...]Method{
	MethodLSB,
	MethodRed,
	MethodGreen,
	MethodBlue,
	MethodAlpha,
	MethodPVD,
	MethodBPCS,
	MethodDCT,
	MethodDWT,
	MethodDFT,
}

var methodNames = map[Method]string{
	MethodUnspecified: "UNSPECIFIED",
	MethodLSB:         "LSB",
	MethodRed:         "RED",
	MethodGreen:       "GREEN",
	MethodBlue:        "BLUE",
	MethodAlpha:       "ALPHA",
	MethodPVD:         "PVD",
	MethodBPCS:        "BPCS",
	MethodDCT:         "DCT",
	MethodDWT:         "DWT",
	MethodDFT:         "DFT",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether m is a declared method, including MethodUnspecified.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Implemented reports whether m has a working embed/extract pair.
func (m Method) Implemented() bool {
	switch m {
	case MethodLSB, MethodRed, MethodGreen, MethodBlue, MethodAlpha, MethodPVD:
		return true
	default:
		return false
	}
}

// Methods returns every drawable method in draw-table order.
func Methods() []Method {
	out := make([]Method, len(drawTable))
	copy(out, drawTable[:])
	return out
}

// MethodFromDraw selects a method from one raw generator draw.
func MethodFromDraw(draw uint64) Method {
	return drawTable[draw%uint64(len(drawTable))]
}

// ParseMethod resolves a method name case-insensitively. An empty name
// yields MethodUnspecified.
func ParseMethod(name string) (Method, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return MethodUnspecified, nil
	}
	for method, label := range methodNames {
		if label == name {
			return method, nil
		}
	}
	return MethodUnspecified, apperrors.WithMetadata(apperrors.CodeUnknownMethod, "unknown method", map[string]string{
		"method": name,
	})
}
