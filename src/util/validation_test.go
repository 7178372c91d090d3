package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@sub.example.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "plain", "a@b", "@b.com", "a b@c.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice@B.com", "alice@b.com"},
		{"  alice@b.com  ", "alice@b.com"},
		{"ALICE@B.COM", "alice@b.com"},
		{"alice@b.com", "alice@b.com"},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if ValidateUsername("ab") {
		t.Error("two characters should be too short")
	}
	if !ValidateUsername("abc") {
		t.Error("three characters should be accepted")
	}
}

func TestParseEntryDate(t *testing.T) {
	got, err := ParseEntryDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseEntryDate: %v", err)
	}
	if got.Year() != 2024 || got.Month() != 1 || got.Day() != 15 {
		t.Errorf("parsed %v, want 2024-01-15", got)
	}

	if _, err := ParseEntryDate("2024-01-15T10:30:00Z"); err != nil {
		t.Errorf("RFC3339 timestamps should parse: %v", err)
	}

	if _, err := ParseEntryDate("15/01/2024"); err == nil {
		t.Error("unsupported format should fail")
	}
}
