package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"surname and given name", "Иванов Иван", true},
		{"three tokens", "Иванов Иван Иванович", true},
		{"single token", "Иванов", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFullName(tt.input))
		})
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plus seven compact", "+79161234567", true},
		{"seven compact", "79161234567", true},
		{"eight compact", "89161234567", true},
		{"grouped with spaces", "+7 916 123 45 67", true},
		{"grouped with parens", "8(916)123-45-67", true},
		{"too short", "+7916123", false},
		{"foreign prefix", "+19161234567", false},
		{"letters", "+7916abc4567", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.input))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("user@example.com"))
	assert.True(t, IsEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("user@"))
	assert.False(t, IsEmail("@example.com"))
}

func TestIsPassword(t *testing.T) {
	assert.True(t, IsPassword("secret"))
	assert.True(t, IsPassword("longer password"))
	assert.False(t, IsPassword("12345"))
	assert.False(t, IsPassword(""))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.True(t, IsDate("2024-01-01"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-13-01"))
	assert.False(t, IsDate("01-01-2024"))
	assert.False(t, IsDate("2024-1-1"))
	assert.False(t, IsDate(""))
}

func TestIsTime(t *testing.T) {
	assert.True(t, IsTime("09:30"))
	assert.True(t, IsTime("9:30"))
	assert.True(t, IsTime("23:59:59"))
	assert.False(t, IsTime("24:00"))
	assert.False(t, IsTime("12:60"))
	assert.False(t, IsTime("noon"))
}

func TestIsSex(t *testing.T) {
	assert.True(t, IsSex("M"))
	assert.True(t, IsSex("F"))
	assert.False(t, IsSex("m"))
	assert.False(t, IsSex("X"))
	assert.False(t, IsSex(""))
}
