package agreement

import (
	"fmt"
	"strings"
	"time"
)

// OrdinalSuffix returns the English ordinal suffix for a day of month.
// 11th, 12th and 13th are special-cased.
func OrdinalSuffix(day int) string {
	if m := day % 100; m >= 11 && m <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatAgreementDate renders a YYYY-MM-DD date as legal prose, e.g.
// "28th day of January 2026". An empty or unparseable input falls back to
// today's date so the agreement never carries a blank effective date.
func FormatAgreementDate(date string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		t = time.Now()
	}
	day := t.Day()
	return fmt.Sprintf("%d%s day of %s %d", day, OrdinalSuffix(day), t.Month().String(), t.Year())
}

// ComposeAddress joins street address, city and state with commas, skipping
// whichever parts are blank.
func ComposeAddress(address, city, state string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{address, city, state} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// MaskAadhaar hides all but the last four digits of a 12-digit Aadhaar
// number. Shorter inputs are returned unchanged.
func MaskAadhaar(number string) string {
	number = strings.TrimSpace(number)
	if len(number) < 12 {
		return number
	}
	return "XXXX-XXXX-" + number[len(number)-4:]
}

// SafeFileName builds the upload file name for a generated agreement PDF,
// replacing whitespace runs in the partner name with underscores.
func SafeFileName(fullName string, now time.Time) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "Partner"
	}
	name = strings.Join(strings.Fields(name), "_")
	return fmt.Sprintf("Affiliate_Partner_Agreement_%s_%d.pdf", name, now.UnixMilli())
}
