package validate

import (
	"strings"
	"testing"

	"github.com/trainpartner/tpx/internal/models"
)

func TestMessages(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		got := TooShort("Username", 3)
		if got != "Username is too short (minimum 3 symbols needed)" {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("TooLong", func(t *testing.T) {
		got := TooLong("Email", 40)
		if got != "Email is too long (maximum 40 symbols allowed)" {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := Empty("Email"); got != "Email should not be empty" {
			t.Errorf("unexpected message: %s", got)
		}
	})

	t.Run("NotValid", func(t *testing.T) {
		if got := NotValid("Email"); got != "Email not valid" {
			t.Errorf("unexpected message: %s", got)
		}
	})
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantStatus models.ValidateStatus
		wantPart   string
	}{
		{"too short", "ab", models.StatusError, "too short"},
		{"minimum length passes neutral", "abc", models.StatusNone, ""},
		{"maximum length passes neutral", strings.Repeat("a", UsernameMaxLength), models.StatusNone, ""},
		{"too long", strings.Repeat("a", UsernameMaxLength+1), models.StatusError, "too long"},
		{"empty counts as too short", "", models.StatusError, "too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Username(tt.value)
			if v.Status != tt.wantStatus {
				t.Errorf("expected status %v, got %v", tt.wantStatus, v.Status)
			}
			if tt.wantPart != "" && !strings.Contains(v.Message, tt.wantPart) {
				t.Errorf("expected message containing %q, got %q", tt.wantPart, v.Message)
			}
			if tt.wantStatus != models.StatusError && v.Message != "" {
				t.Errorf("expected no message on pass, got %q", v.Message)
			}
		})
	}

	t.Run("never reaches success from format alone", func(t *testing.T) {
		if v := Username("validname"); v.Status == models.StatusSuccess {
			t.Error("username format pass must stay neutral pending availability check")
		}
	})
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantStatus models.ValidateStatus
		wantPart   string
	}{
		{"empty", "", models.StatusError, "should not be empty"},
		{"missing at", "alice.example.com", models.StatusError, "not valid"},
		{"missing tld", "alice@example", models.StatusError, "not valid"},
		{"contains space", "alice smith@example.com", models.StatusError, "not valid"},
		{"well formed passes neutral", "alice@example.com", models.StatusNone, ""},
		{"too long", strings.Repeat("a", EmailMaxLength) + "@example.com", models.StatusError, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Email(tt.value)
			if v.Status != tt.wantStatus {
				t.Errorf("expected status %v, got %v (message %q)", tt.wantStatus, v.Status, v.Message)
			}
			if tt.wantPart != "" && !strings.Contains(v.Message, tt.wantPart) {
				t.Errorf("expected message containing %q, got %q", tt.wantPart, v.Message)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		v := Password("12345")
		if v.Status != models.StatusError || !strings.Contains(v.Message, "too short") {
			t.Errorf("expected too-short error, got %v %q", v.Status, v.Message)
		}
	})

	t.Run("in bounds reaches success directly", func(t *testing.T) {
		v := Password("123456")
		if v.Status != models.StatusSuccess {
			t.Errorf("expected success, got %v", v.Status)
		}
	})

	t.Run("too long", func(t *testing.T) {
		v := Password(strings.Repeat("x", PasswordMaxLength+1))
		if v.Status != models.StatusError || !strings.Contains(v.Message, "too long") {
			t.Errorf("expected too-long error, got %v %q", v.Status, v.Message)
		}
	})
}

func TestName(t *testing.T) {
	t.Run("empty is allowed", func(t *testing.T) {
		if v := Name(""); v.Status != models.StatusSuccess {
			t.Errorf("expected success for empty name, got %v", v.Status)
		}
	})

	t.Run("too long", func(t *testing.T) {
		v := Name(strings.Repeat("n", NameMaxLength+1))
		if v.Status != models.StatusError {
			t.Errorf("expected error, got %v", v.Status)
		}
	})
}

func TestProgramTitle(t *testing.T) {
	t.Run("bounds", func(t *testing.T) {
		if v := ProgramTitle("ab"); v.Status != models.StatusError {
			t.Error("expected error below minimum length")
		}
		if v := ProgramTitle("Push Pull Legs!!"); v.Status != models.StatusError {
			t.Error("expected error above maximum length")
		}
	})

	t.Run("pass is neutral", func(t *testing.T) {
		v := ProgramTitle("My Program")
		if v.Status != models.StatusNone {
			t.Errorf("expected neutral status pending availability check, got %v", v.Status)
		}
	})
}
