package checksum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteLetters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "digits pass through", input: "0123456789", want: "0123456789"},
		{name: "upper case letters", input: "AZ", want: "1035"},
		{name: "lower case letters match upper case", input: "az", want: "1035"},
		{name: "mixed", input: "RF00", want: "271500"},
		{name: "empty", input: "", want: ""},
		{name: "space is rejected", input: "RF 00", wantErr: true},
		{name: "umlaut is rejected", input: "Ä1", wantErr: true},
		{name: "punctuation is rejected", input: "AB-12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubstituteLetters(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotAlphanumeric)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMod97(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "small number", input: "98", want: 1},
		{name: "exact multiple", input: "194", want: 0},
		{name: "leading zeros", input: "000097", want: 0},
		// 3214282912345698765432161182 mod 97 == 1 (GB82WEST12345698765432 rearranged)
		{name: "wider than uint64", input: "3214282912345698765432161182", want: 1},
		{name: "empty", input: "", wantErr: ErrEmptyInput},
		{name: "letters are not numeric", input: "12A4", wantErr: ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mod97(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIBANCheckValid(t *testing.T) {
	valid := []string{
		"DE89500105179394767432",
		"NL79RABO2423554788",
		"CH8589144649296413173",
		"DE33100205000001194700",
		"GB82WEST12345698765432",
		"AT611904300234573201",
		"BE68539007547034",
	}

	for _, iban := range valid {
		t.Run(iban, func(t *testing.T) {
			assert.True(t, IBANCheckValid(iban))
			assert.True(t, IBANCheckValid(strings.ToLower(iban)), "letter case must not matter")

			mutated := mutateLastDigit(iban)
			assert.False(t, IBANCheckValid(mutated), "single digit mutation %s must fail", mutated)
		})
	}

	t.Run("spaces are ignored", func(t *testing.T) {
		assert.True(t, IBANCheckValid("DE89 5001 0517 9394 7674 32"))
	})

	t.Run("rearrangement moves the first four characters to the end", func(t *testing.T) {
		// swapping the check digits keeps the characters but breaks the arrangement
		assert.False(t, IBANCheckValid("DE98500105179394767432"))
	})

	t.Run("malformed input", func(t *testing.T) {
		assert.False(t, IBANCheckValid(""))
		assert.False(t, IBANCheckValid("DE89"))
		assert.False(t, IBANCheckValid("DE89-5001-0517"))
	})
}

func TestGenerateSCOR(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      string
		wantErr   error
	}{
		{name: "alphanumeric reference", reference: "4723M108", want: "RF794723M108"},
		{name: "numeric reference", reference: "539007547034", want: "RF18539007547034"},
		{name: "single letter", reference: "Z", want: "RF29Z"},
		{name: "check digits are zero padded", reference: "7", want: "RF097"},
		{name: "zero padded with longer reference", reference: "18", want: "RF0318"},
		{name: "spaces are removed", reference: "5390 0754 7034", want: "RF18539007547034"},
		{name: "lower case is upper-cased", reference: "4723m108", want: "RF794723M108"},
		{name: "empty reference", reference: "", wantErr: ErrEmptyInput},
		{name: "too long", reference: strings.Repeat("1", MaxReferenceLength+1), wantErr: ErrReferenceTooLong},
		{name: "non alphanumeric", reference: "AB-12", wantErr: ErrNotAlphanumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSCOR(tt.reference)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSCOR_AlwaysValidates(t *testing.T) {
	references := []string{
		"1", "A", "00000001", "ORDER2024", "INV12345", "G72UUR", "WOLFGANG",
		"TREKKERTJE90897867", strings.Repeat("9", MaxReferenceLength),
		strings.Repeat("Z", MaxReferenceLength), "000000000539007547034",
	}

	for _, ref := range references {
		t.Run(ref, func(t *testing.T) {
			scor, err := GenerateSCOR(ref)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(scor), MaxSCORLength)
			assert.True(t, SCORCheckValid(scor), "generated %s must validate", scor)
		})
	}
}

func TestSCORCheckValid(t *testing.T) {
	tests := []struct {
		scor string
		want bool
	}{
		{"RF45G72UUR", true},
		{"RF6518K5", true},
		{"RF18 5390 0754 7034", true},
		{"RF18000000000539007547034", true},
		{"RF48XNO3G76VUE05CW1CC0FWK", true},
		{"RF9157QT3D9OD", true},
		{"RF29Z", true},
		{"RF89M", true},
		{"RF13HO6YZPQJ27", true},
		{"RF29B99", true},
		{"RF42U0SR08RDVSXQEAUQCQJ0R", true},
		{"RF2290897867TREKKERTJE", true},
		{"RF35WOLFGANG", true},
		{"RF4714508655422864", true},
		{"RF794723M108", true},
		{"RF35C4", false},
		{"RF214377", false},
		{"Rv45G72UUR", false},
		{"rf45G72UUR", false},
		{"RFX5G72UUR", false},
		{"RF45", false},
		{"", false},
		{"RF45G72-UUR", false},
	}

	for _, tt := range tests {
		t.Run(tt.scor, func(t *testing.T) {
			assert.Equal(t, tt.want, SCORCheckValid(tt.scor))
		})
	}
}

// mutateLastDigit changes the final digit of s by one
func mutateLastDigit(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] >= '0' && b[i] <= '9' {
			b[i] = '0' + (b[i]-'0'+1)%10
			break
		}
	}
	return string(b)
}
