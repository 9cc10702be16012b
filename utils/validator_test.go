package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsName(t *testing.T) {
	assert.True(t, IsName("John Doe"))
	assert.False(t, IsName("Jo"))
	assert.False(t, IsName("John123"))
}

func TestIsFoodName(t *testing.T) {
	assert.True(t, IsFoodName("banana"))
	assert.True(t, IsFoodName("2 eggs"))
	assert.False(t, IsFoodName("x"))
	assert.False(t, IsFoodName("pasta!"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("john@example.com"))
	assert.False(t, IsEmail("john@example"))
	assert.False(t, IsEmail("not an email"))
}

func TestIsPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Secret1!", true},
		{"secret1!", false},        // no upper
		{"SECRET1!", false},        // no lower
		{"Secretv!", false},        // no digit
		{"Secret12", false},        // no special
		{"Se1!", false},            // too short
		{"Secret1! padded", false}, // whitespace
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsPassword(tc.password), tc.password)
	}
}

func TestIsRole(t *testing.T) {
	assert.True(t, IsRole("admin"))
	assert.True(t, IsRole("general"))
	assert.False(t, IsRole("root"))
}

func TestIsValidDateTime(t *testing.T) {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	assert.True(t, IsValidDateTime(yesterday, "08:00"))
	assert.False(t, IsValidDateTime(tomorrow, "08:00"), "future dates are rejected")
	assert.False(t, IsValidDateTime("2024-13-40", "08:00"))
	assert.False(t, IsValidDateTime(yesterday, "8am"))
}
