package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/sanitizer"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses internal runs",
			input:    "João   da  Silva",
			expected: "João da Silva",
		},
		{
			name:     "trims and collapses mixed whitespace",
			input:    "\t Maria \n  Souza ",
			expected: "Maria Souza",
		},
		{
			name:     "handles whitespace-only input",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "leaves single-spaced input alone",
			input:    "Ana Paula",
			expected: "Ana Paula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.CollapseWhitespace(tt.input))
		})
	}
}

func TestTrimToLower(t *testing.T) {
	assert.Equal(t, "user@example.com", sanitizer.TrimToLower("  User@Example.COM "))
	assert.Equal(t, "", sanitizer.TrimToLower("   "))
}

func TestHasEdgeWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "leading space",
			input:    " secret",
			expected: true,
		},
		{
			name:     "trailing tab",
			input:    "secret\t",
			expected: true,
		},
		{
			name:     "clean value",
			input:    "secret",
			expected: false,
		},
		{
			name:     "internal whitespace only",
			input:    "pass phrase",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.HasEdgeWhitespace(tt.input))
		})
	}
}

func TestCompose(t *testing.T) {
	canon := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
	assert.Equal(t, "user@example.com", canon("  User@Example.COM "))

	identity := sanitizer.Compose[string]()
	assert.Equal(t, "unchanged", identity("unchanged"))
}
