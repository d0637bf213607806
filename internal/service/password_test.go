package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid 14 chars", "Abcdefghi1234!", true},
		{"valid long", "SuperSecret2024#pass", true},
		{"all symbol kinds", "aB3@$!%*#?&aB3", true},
		{"too short", "short1!", false},
		{"13 chars", "Abcdefgh1234!", false},
		{"no digit", "Abcdefghijklm!", false},
		{"no letter", "12345678901234!", false},
		{"no symbol", "Abcdefghi12345", false},
		{"disallowed symbol", "Abcdefghi1234^", false},
		{"space not allowed", "Abcdefghi 1234!", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ok, ValidatePassword(tc.password))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a.b@c-d.com", true},
		{"alice@example.com", true},
		{"first.last@sub.domain.org", true},
		{"not-an-email", false},
		{"@missing-local.com", false},
		{"missing-domain@", false},
		{"no-tld@domain", false},
		{"long-tld@domain.superlong", false},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			require.Equal(t, tc.ok, ValidateEmail(tc.email))
		})
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Abcdefghi1234!")
	require.NoError(t, err)
	require.NotEqual(t, "Abcdefghi1234!", hash)

	require.NoError(t, ComparePassword(hash, "Abcdefghi1234!"))
	require.Error(t, ComparePassword(hash, "Abcdefghi1234!x"))

	// 相同密碼兩次哈希應因隨機 salt 而不同
	hash2, err := HashPassword("Abcdefghi1234!")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}
