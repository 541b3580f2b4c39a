package i18n

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// HeaderAcceptLanguage is read by FromRequest and forwarded by the gateway.
const HeaderAcceptLanguage = "Accept-Language"

// Supported portal languages. English is the fallback.
var (
	English = language.English
	Marathi = language.Marathi
)

var (
	supported = []language.Tag{English, Marathi}
	matcher   = language.NewMatcher(supported)
	messages  = buildCatalog()
)

// Match picks the best supported language for an Accept-Language value.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return supported[idx]
}

// Parse accepts a short code such as "mr" or "en-IN".
func Parse(code string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return English, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, false
	}
	return supported[idx], true
}

// Code returns the two-letter code stored with consumer profiles.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// FromRequest negotiates the response language of r.
func FromRequest(r *http.Request) language.Tag {
	return Match(r.Header.Get(HeaderAcceptLanguage))
}

// Printer returns a printer backed by the portal catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// Message translates key, falling back to the key itself.
func Message(tag language.Tag, key string, args ...interface{}) string {
	return Printer(tag).Sprintf(key, args...)
}

// FormatINR renders an amount with locale digit grouping and two decimals.
func FormatINR(tag language.Tag, amount float64) string {
	p := Printer(tag)
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	paise := int64(math.Round(amount * 100))
	frac := paise % 100
	// digits one at a time so the printer localizes them without grouping
	return fmt.Sprintf("%s₹%s.%s", sign, p.Sprintf("%d", paise/100), p.Sprintf("%d%d", frac/10, frac%10))
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(English))
	for key, tr := range translations {
		_ = b.SetString(English, key, tr.en)
		_ = b.SetString(Marathi, key, tr.mr)
	}
	return b
}
