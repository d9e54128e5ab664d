package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Message keys
const (
	KeyInvalidRequest    = "error.invalid_request"
	KeyInvalidAmount     = "error.invalid_amount"
	KeyInvalidRate       = "error.invalid_rate"
	KeyInvalidTaxStatus  = "error.invalid_tax_status"
	KeyInvalidDirection  = "error.invalid_direction"
	KeyInvalidDate       = "error.invalid_date"
	KeyNoApplicableRule  = "error.no_applicable_rule"
	KeyDivisionUndefined = "error.division_undefined"
	KeyNotFound          = "error.not_found"
	KeyRuleInUse         = "error.rule_in_use"
	KeyRuleConflict      = "error.rule_conflict"
	KeyRuleChanged       = "error.rule_changed"
	KeyUnauthorized      = "error.unauthorized"
	KeyForbidden         = "error.forbidden"
	KeyInternal          = "error.internal"
	KeyEmailTaken        = "error.email_taken"
	KeyUserExists        = "error.user_exists"
	KeyBadCredentials    = "error.bad_credentials"
	KeyLoggedOut         = "auth.logged_out"
)

// Payroll export column headers
const (
	KeyColNumber      = "export.number"
	KeyColPeriod      = "export.period"
	KeyColPersonnelNo = "export.personnel_number"
	KeyColEmployee    = "export.employee"
	KeyColTaxStatus   = "export.tax_status"
	KeyColDirection   = "export.direction"
	KeyColGross       = "export.gross"
	KeyColWithheld    = "export.withheld"
	KeyColNet         = "export.net"
	KeyColRate        = "export.rate"
	KeyColTotal       = "export.total"
	KeySheetPayroll   = "export.sheet"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Russian,
	language.Turkish,
}

// Translator is a read-only key/value lookup per locale.
type Translator struct {
	matcher  language.Matcher
	bases    []string
	messages map[string]map[string]string
}

func New() *Translator {
	bases := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		bases[i] = base.String()
	}

	return &Translator{
		matcher:  language.NewMatcher(supported),
		bases:    bases,
		messages: dictionaries,
	}
}

// Match picks the best supported locale for an Accept-Language header value.
// fallback is used when the header is empty or matches nothing.
func (t *Translator) Match(acceptLanguage, fallback string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.normalize(fallback)
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.normalize(fallback)
	}
	return t.bases[idx]
}

func (t *Translator) normalize(locale string) string {
	if _, ok := t.messages[locale]; ok {
		return locale
	}
	return t.bases[0]
}

// T looks key up in locale, then in English, and finally returns the key itself.
func (t *Translator) T(locale, key string, args ...any) string {
	msg, ok := t.messages[locale][key]
	if !ok {
		msg, ok = t.messages[t.bases[0]][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
