package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister_Valid(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("a@x.com", "secret1", "Ann", "Lee")
	assert.False(t, errs.HasErrors())
}

func TestValidateRegister_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	// every field invalid at once; all four must be reported together
	errs := ValidateRegister("not-an-email", "short", "A", strings.Repeat("x", 51))

	assert.Len(t, errs, 4)
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Password must be at least 6 characters long", errs["password"])
	assert.Equal(t, "First name must be at least 2 characters long", errs["firstName"])
	assert.Equal(t, "Last name cannot exceed 50 characters", errs["lastName"])
}

func TestValidateRegister_RequiredFields(t *testing.T) {
	t.Parallel()

	errs := ValidateRegister("", "", "", "")

	assert.Len(t, errs, 4)
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.Equal(t, "First name is required", errs["firstName"])
	assert.Equal(t, "Last name is required", errs["lastName"])
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidateLogin("a@x.com", "secret1").HasErrors())

	errs := ValidateLogin("bogus", "12345")
	assert.Len(t, errs, 2)
}

func TestValidateMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"valid", "hello there", ""},
		{"exactly minimum", "12345", ""},
		{"too short", "hey", "Message must be at least 5 characters long"},
		{"empty", "", "Message content is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateMessage(tt.content)
			if tt.wantMsg == "" {
				assert.False(t, errs.HasErrors())
			} else {
				assert.Equal(t, tt.wantMsg, errs["content"])
			}
		})
	}
}
