package importer

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhoneNumber normalizes a raw number to +<country code><national
// number> when it parses as a valid number for the given region. Anything
// that does not parse or validate is returned unchanged so no rows are lost
// on import.
func FormatPhoneNumber(raw, region string) string {
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	return fmt.Sprintf("+%d%s", parsed.GetCountryCode(), phonenumbers.GetNationalSignificantNumber(parsed))
}
