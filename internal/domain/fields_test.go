package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"ten digits", "0501234567", true},
		{"all zeros", "0000000000", true},
		{"too short", "123456789", false},
		{"too long", "12345678901", false},
		{"empty", "", false},
		{"letter", "12345abcde", false},
		{"sign", "-123456789", false},
		{"decimal point", "12345.6789", false},
		{"spaces", "123 456 78", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if !tt.ok {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Equal(t, "Phone number must contain exactly 10 digits.", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
		})
	}
}

func TestNewBirthday(t *testing.T) {
	valid := []string{"23.03.1998", "01.01.2000", "29.02.2024", "31.12.1999"}
	for _, in := range valid {
		t.Run("valid "+in, func(t *testing.T) {
			b, err := NewBirthday(in)
			require.NoError(t, err)
			assert.Equal(t, in, b.String())
			assert.Equal(t, time.UTC, b.Date().Location())
		})
	}

	invalid := []string{
		"",
		"1.03.1998",
		"23.3.1998",
		"23.03.98",
		"1998-03-23",
		"23/03/1998",
		"31.04.2020",
		"29.02.2023",
		"32.01.2020",
		"00.01.2020",
		"10.13.2020",
		"23.03.1998 ",
		"tomorrow",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := NewBirthday(in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", err.Error())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := NewName("  John  ")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())

	_, err = NewName("   ")
	assert.True(t, IsValidation(err))
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsNotFound(ErrContactNotFound))
	assert.False(t, IsValidation(ErrContactNotFound))
	assert.ErrorIs(t, NewNotFound("contact not found"), ErrContactNotFound)

	cause := assert.AnError
	err := NewArgument("not enough arguments", cause)
	assert.True(t, IsArgument(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorKind(""), KindOf(cause))
}
