package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseJunior1001/API-Validacao-Dados/pkg/validator"
)

func TestValidatePhoneBR(t *testing.T) {
	t.Parallel()

	t.Run("mobile numbers normalize to the international mask", func(t *testing.T) {
		inputs := []string{
			"11987654321",
			"(11) 98765-4321",
			"+55 11 98765-4321",
			"5511987654321",
		}

		for _, input := range inputs {
			res := validator.ValidatePhoneBR(input)
			require.True(t, res.Valid, "phone should be valid: %q", input)
			assert.Equal(t, "+55 (11) 98765-4321", res.Normalized)
			assert.Equal(t, "mobile", res.Metadata["subtype"])
			assert.Equal(t, "11", res.Metadata["area_code"])
			assert.Equal(t, "SP", res.Metadata["state"])
		}
	})

	t.Run("landline numbers keep the shorter mask", func(t *testing.T) {
		res := validator.ValidatePhoneBR("(21) 3456-7890")
		require.True(t, res.Valid)
		assert.Equal(t, "+55 (21) 3456-7890", res.Normalized)
		assert.Equal(t, "landline", res.Metadata["subtype"])
		assert.Equal(t, "RJ", res.Metadata["state"])
	})

	t.Run("DDD 55 local numbers are not mistaken for the country code", func(t *testing.T) {
		// 10 digits starting with 55: area code 55 (RS), nothing dropped.
		res := validator.ValidatePhoneBR("5534567890")
		require.True(t, res.Valid)
		assert.Equal(t, "55", res.Metadata["area_code"])
		assert.Equal(t, "RS", res.Metadata["state"])

		// Country code plus DDD 55: the leading 55 is dropped once.
		res = validator.ValidatePhoneBR("+55 55 98765-4321")
		require.True(t, res.Valid)
		assert.Equal(t, "+55 (55) 98765-4321", res.Normalized)
		assert.Equal(t, "mobile", res.Metadata["subtype"])
	})

	t.Run("rejects unassigned area codes", func(t *testing.T) {
		for _, input := range []string{"2098765432", "0198765432", "5298765432"} {
			res := validator.ValidatePhoneBR(input)
			require.False(t, res.Valid, "phone should be invalid: %q", input)
			assert.Equal(t, validator.CodeInvalidDDD, res.ErrorCode)
		}
	})

	t.Run("rejects 11-digit numbers without the mobile 9", func(t *testing.T) {
		res := validator.ValidatePhoneBR("11887654321")
		require.False(t, res.Valid)
		assert.Equal(t, validator.CodeInvalidCellFormat, res.ErrorCode)
	})

	t.Run("rejects wrong digit counts", func(t *testing.T) {
		inputs := []string{
			"",
			"123",
			"119876543",       // 9 digits
			"119876543210",    // 12 digits, no country code to drop
			"551198765432100", // 15 digits even after dropping 55
		}

		for _, input := range inputs {
			res := validator.ValidatePhoneBR(input)
			require.False(t, res.Valid, "phone should be invalid: %q", input)
			assert.Equal(t, validator.CodeInvalidLength, res.ErrorCode)
		}
	})

	t.Run("state metadata follows the DDD table", func(t *testing.T) {
		cases := []struct {
			input string
			state string
		}{
			{"31998765432", "MG"},
			{"47998765432", "SC"},
			{"61998765432", "DF"},
			{"71998765432", "BA"},
			{"85998765432", "CE"},
			{"92998765432", "AM"},
		}

		for _, tc := range cases {
			res := validator.ValidatePhoneBR(tc.input)
			require.True(t, res.Valid, "phone should be valid: %q", tc.input)
			assert.Equal(t, tc.state, res.Metadata["state"])
		}
	})
}
