package detect

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractIntel_Basic(t *testing.T) {
	intel := ExtractIntel("Refund pending, click https://fake.link and enter UPI fraud@upi or call 9876543210")

	if !reflect.DeepEqual(intel.Links, []string{"https://fake.link"}) {
		t.Fatalf("links = %v", intel.Links)
	}
	if !reflect.DeepEqual(intel.PaymentHandles, []string{"fraud@upi"}) {
		t.Fatalf("handles = %v", intel.PaymentHandles)
	}
	if !reflect.DeepEqual(intel.PhoneNumbers, []string{"9876543210"}) {
		t.Fatalf("phones = %v", intel.PhoneNumbers)
	}
}

func TestExtractIntel_PhoneAccountOverlap(t *testing.T) {
	// A 10-digit token is both a phone number and an account-like number.
	intel := ExtractIntel("send to 9876543210 now")

	if len(intel.PhoneNumbers) != 1 || intel.PhoneNumbers[0] != "9876543210" {
		t.Fatalf("phones = %v", intel.PhoneNumbers)
	}
	if len(intel.AccountLikeNumbers) != 1 || intel.AccountLikeNumbers[0] != "9876543210" {
		t.Fatalf("accounts = %v", intel.AccountLikeNumbers)
	}
}

func TestExtractIntel_AccountLengthBounds(t *testing.T) {
	// 16 digits is account-like but too long for a phone number.
	intel := ExtractIntel("account 1234567890123456 listed")
	if len(intel.PhoneNumbers) != 0 {
		t.Fatalf("expected no phones, got %v", intel.PhoneNumbers)
	}
	if len(intel.AccountLikeNumbers) != 1 {
		t.Fatalf("accounts = %v", intel.AccountLikeNumbers)
	}

	// 17 digits matches neither.
	intel = ExtractIntel("ref 12345678901234567 end")
	if len(intel.AccountLikeNumbers) != 0 {
		t.Fatalf("expected no accounts, got %v", intel.AccountLikeNumbers)
	}
}

func TestExtractIntel_CapAndDedup(t *testing.T) {
	var parts []string
	for i := 0; i < 8; i++ {
		parts = append(parts, "https://evil.example/"+strings.Repeat("x", i+1))
	}
	// Repeat the first link so dedup has something to drop.
	parts = append(parts, parts[0])

	intel := ExtractIntel(strings.Join(parts, " "))
	if len(intel.Links) != maxPerList {
		t.Fatalf("expected %d links, got %d", maxPerList, len(intel.Links))
	}
	// First-seen order preserved.
	if intel.Links[0] != "https://evil.example/x" {
		t.Fatalf("unexpected first link: %s", intel.Links[0])
	}
}

func TestExtractIntel_EmptyText(t *testing.T) {
	intel := ExtractIntel("")
	if len(intel.PaymentHandles)+len(intel.PhoneNumbers)+len(intel.Links)+len(intel.AccountLikeNumbers) != 0 {
		t.Fatalf("expected all lists empty: %+v", intel)
	}
	// Lists must be empty, not nil, so JSON output stays [].
	if intel.Links == nil || intel.PhoneNumbers == nil {
		t.Fatalf("expected non-nil empty slices")
	}
}
