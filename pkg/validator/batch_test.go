package validator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/validator"
)

func TestValidateBatch(t *testing.T) {
	t.Parallel()

	t.Run("returns one result per item in input order", func(t *testing.T) {
		items := []validator.BatchItem{
			{Type: validator.TypeCPF, Value: "111.444.777-35"},
			{Type: validator.TypeCPF, Value: "111.444.777-36"},
			{Type: validator.TypeEmail, Value: "User@Example.com"},
			{Type: "xpto", Value: "anything"},
			{Type: validator.TypeCEP, Value: "01310100"},
		}

		results := validator.ValidateBatch(items)
		require.Len(t, results, len(items))

		assert.True(t, results[0].Valid)
		assert.Equal(t, "111.444.777-35", results[0].Normalized)

		assert.False(t, results[1].Valid)
		assert.Equal(t, validator.CodeInvalidCheckDigit, results[1].ErrorCode)

		assert.True(t, results[2].Valid)
		assert.Equal(t, "user@example.com", results[2].Normalized)

		assert.False(t, results[3].Valid)
		assert.Equal(t, validator.CodeUnsupportedType, results[3].ErrorCode)

		assert.True(t, results[4].Valid)
		assert.Equal(t, "01310-100", results[4].Normalized)
	})

	t.Run("items carry their own password policies", func(t *testing.T) {
		items := []validator.BatchItem{
			{Type: validator.TypePassword, Value: "abc"},
			{Type: validator.TypePassword, Value: "abc", Policy: &validator.PasswordPolicy{MinLength: 3}},
		}

		results := validator.ValidateBatch(items)
		require.Len(t, results, 2)
		assert.False(t, results[0].Valid, "default policy should reject a weak password")
		assert.True(t, results[1].Valid, "per-item policy should accept it")
	})

	t.Run("empty batch yields an empty result slice", func(t *testing.T) {
		results := validator.ValidateBatch(nil)
		assert.Empty(t, results)

		results = validator.ValidateBatch([]validator.BatchItem{})
		assert.Empty(t, results)
	})

	t.Run("a failing item never affects its neighbors", func(t *testing.T) {
		items := make([]validator.BatchItem, 0, 100)
		for i := range 100 {
			if i%3 == 0 {
				items = append(items, validator.BatchItem{Type: validator.TypeCPF, Value: "not a cpf"})
				continue
			}
			items = append(items, validator.BatchItem{Type: validator.TypeCEP, Value: fmt.Sprintf("%08d", i)})
		}

		results := validator.ValidateBatch(items)
		require.Len(t, results, 100)
		for i, res := range results {
			if i%3 == 0 {
				assert.False(t, res.Valid, "item %d should be invalid", i)
			} else {
				assert.True(t, res.Valid, "item %d should be valid", i)
			}
		}
	})
}
