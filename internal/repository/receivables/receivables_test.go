package receivables

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	oid, err := ParseID("507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("valid hex rejected: %v", err)
	}
	if oid.Hex() != "507f1f77bcf86cd799439011" {
		t.Fatalf("round trip changed id: %s", oid.Hex())
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	for _, in := range []string{"abc", "", "507f1f77bcf86cd79943901", "zzzzzzzzzzzzzzzzzzzzzzzz", "507f1f77bcf86cd7994390111"} {
		if _, err := ParseID(in); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID for %q, got %v", in, err)
		}
	}
}
