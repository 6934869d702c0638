package steg

import (
	"errors"
	"testing"
)

func TestParseMethodRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", m, err)
		}
		if got != m {
			t.Fatalf("ParseMethod(%q) = %s", m, got)
		}
	}
}

func TestParseMethodCaseAndEmpty(t *testing.T) {
	got, err := ParseMethod(" pvd ")
	if err != nil || got != MethodPVD {
		t.Fatalf("ParseMethod(pvd) = %s, %v", got, err)
	}
	got, err = ParseMethod("")
	if err != nil || got != MethodUnspecified {
		t.Fatalf("ParseMethod(\"\") = %s, %v", got, err)
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("jpeg")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("ParseMethod(jpeg) error = %v, want ErrUnknownMethod", err)
	}
}

func TestMethodFromDrawTable(t *testing.T) {
	want := []Method{
		MethodLSB, MethodRed, MethodGreen, MethodBlue, MethodAlpha,
		MethodPVD, MethodBPCS, MethodDCT, MethodDWT, MethodDFT,
	}
	for i, m := range want {
		if got := MethodFromDraw(uint64(i)); got != m {
			t.Fatalf("MethodFromDraw(%d) = %s, want %s", i, got, m)
		}
		if got := MethodFromDraw(uint64(i + 10*12345)); got != m {
			t.Fatalf("MethodFromDraw(%d) = %s, want %s", i+10*12345, got, m)
		}
	}
}

func TestImplemented(t *testing.T) {
	implemented := map[Method]bool{
		MethodLSB: true, MethodRed: true, MethodGreen: true,
		MethodBlue: true, MethodAlpha: true, MethodPVD: true,
	}
	for _, m := range Methods() {
		if m.Implemented() != implemented[m] {
			t.Fatalf("%s.Implemented() = %v", m, m.Implemented())
		}
	}
	if MethodUnspecified.Implemented() {
		t.Fatal("unspecified must not be implemented")
	}
	if Method(42).Valid() {
		t.Fatal("method 42 must not be valid")
	}
}
