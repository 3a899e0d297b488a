package auth

import (
	"testing"

	"github.com/radelytskyi20/TaskManagement/internal/config"
)

func TestPasswordValidator(t *testing.T) {
	v := NewPasswordValidator(config.PasswordComplexityOptions{
		MinimumLength:           8,
		RequireUppercase:        true,
		RequireLowercase:        true,
		RequireDigit:            true,
		RequireSpecialCharacter: true,
	})

	cases := []struct {
		name     string
		password string
		want     []string
	}{
		{"all good", "Str0ng!pass", nil},
		{"too short", "S0r!t", []string{ErrPasswordTooShort}},
		{"no uppercase", "weak0!pass", []string{ErrPasswordNoUppercase}},
		{"no lowercase", "WEAK0!PASS", []string{ErrPasswordNoLowercase}},
		{"no digit", "Weakk!pass", []string{ErrPasswordNoDigit}},
		{"no special", "Weak0passw", []string{ErrPasswordNoSpecial}},
		{"everything wrong", "aaaaaaaa", []string{
			ErrPasswordNoUppercase, ErrPasswordNoDigit, ErrPasswordNoSpecial,
		}},
	}

	for _, tc := range cases {
		res := v.Validate(tc.password)
		if len(tc.want) == 0 {
			if !res.Succeeded() {
				t.Fatalf("%s: expected success, got %v", tc.name, res.Errors)
			}
			continue
		}
		if res.Succeeded() {
			t.Fatalf("%s: expected failure", tc.name)
		}
		if len(res.Errors) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, res.Errors)
		}
		for i, msg := range tc.want {
			if res.Errors[i] != msg {
				t.Fatalf("%s: error %d mismatch: expected %q, got %q", tc.name, i, msg, res.Errors[i])
			}
		}
	}
}

func TestPasswordValidatorDisabledChecks(t *testing.T) {
	v := NewPasswordValidator(config.PasswordComplexityOptions{MinimumLength: 4})
	if res := v.Validate("aaaa"); !res.Succeeded() {
		t.Fatalf("expected success with all checks disabled, got %v", res.Errors)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash must not equal plaintext")
	}
	if !VerifyPassword(hash, "Str0ng!pass") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
