package notification

import "strings"

// SanitizePhoneNumber normalizes a phone number for the WhatsApp API:
// digits only, Brazilian country code (55) prefixed when missing.
func SanitizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if len(cleaned) == 13 && strings.HasPrefix(cleaned, "55") {
		return cleaned
	}
	if len(cleaned) > 8 && !strings.HasPrefix(cleaned, "55") {
		return "55" + cleaned
	}
	return cleaned
}
