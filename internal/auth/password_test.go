package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"valid password", "mysecretpassword"},
		{"long password", strings.Repeat("a", 72)},
		{"unicode password", "パスワード123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == "" || hash == tt.password {
				t.Errorf("HashPassword() = %q", hash)
			}
			if !isBcryptHash(hash) {
				t.Errorf("HashPassword() returned non-bcrypt hash %q", hash)
			}
		})
	}
}

func TestCredentialsMatch(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name  string
		creds Credentials
		user  string
		pass  string
		want  bool
	}{
		{"plain match", Credentials{"admin", "s3cret"}, "admin", "s3cret", true},
		{"plain wrong pass", Credentials{"admin", "s3cret"}, "admin", "s3cre", false},
		{"plain wrong user", Credentials{"admin", "s3cret"}, "root", "s3cret", false},
		{"bcrypt match", Credentials{"admin", hash}, "admin", "s3cret", true},
		{"bcrypt wrong", Credentials{"admin", hash}, "admin", "nope", false},
		{"bcrypt hash as password", Credentials{"admin", hash}, "admin", hash, false},
		{"unconfigured", Credentials{}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.Match(tt.user, tt.pass); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.user, tt.pass, got, tt.want)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("GenerateCode() = %q, want 6 digits", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("GenerateCode() = %q has non-digit", code)
			}
		}
		if code[0] == '0' {
			t.Fatalf("GenerateCode() = %q has leading zero", code)
		}
		seen[code] = true
	}
	if len(seen) < 190 {
		t.Errorf("only %d distinct codes in 200 draws", len(seen))
	}
}

func TestHashCode(t *testing.T) {
	if HashCode("123456") != HashCode("123456") {
		t.Error("HashCode() is not deterministic")
	}
	if HashCode("123456") == HashCode("123457") {
		t.Error("HashCode() collides on adjacent codes")
	}
	if strings.Contains(HashCode("123456"), "123456") {
		t.Error("HashCode() leaks the code")
	}
}
