package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomValidators(t *testing.T) {
	RegisterCustomValidators()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Name string `binding:"notblank"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain text is valid", "Lisbon", false},
		{"text with surrounding spaces is valid", "  Lisbon  ", false},
		{"empty string is invalid", "", true},
		{"whitespace only is invalid", "   \t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(payload{Name: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
