package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", English},
		{"mr", Marathi},
		{"mr-IN,en;q=0.8", Marathi},
		{"en-IN", English},
		{"fr-FR", English},
		{"de;q=0.9,mr;q=0.5", Marathi},
		{"not a header;;", English},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header))
		})
	}
}

func TestParseAndCode(t *testing.T) {
	tag, ok := Parse("mr")
	assert.True(t, ok)
	assert.Equal(t, "mr", Code(tag))

	tag, ok = Parse("xx-invalid-@@")
	assert.False(t, ok)
	assert.Equal(t, "en", Code(tag))
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set(HeaderAcceptLanguage, "mr")
	assert.Equal(t, Marathi, FromRequest(r))
}

func TestMessageTranslations(t *testing.T) {
	assert.Equal(t, "Unknown tariff category.", Message(English, KeyUnknownCategory))
	assert.Equal(t, "अज्ञात दर श्रेणी.", Message(Marathi, KeyUnknownCategory))
	assert.Equal(t, "no_such_key", Message(English, "no_such_key"))
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for key, tr := range translations {
		assert.NotEmpty(t, tr.en, key)
		assert.NotEmpty(t, tr.mr, key)
	}
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1,344.00", FormatINR(English, 1344))
	assert.Equal(t, "₹0.05", FormatINR(English, 0.049))
	assert.Equal(t, "-₹12.50", FormatINR(English, -12.5))
	assert.Equal(t, "₹१,३४४.००", FormatINR(Marathi, 1344))
	assert.Equal(t, "₹१,३४४.५०", FormatINR(Marathi, 1344.5))
	assert.Equal(t, "-₹०.०५", FormatINR(Marathi, -0.05))
}
