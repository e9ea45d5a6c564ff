// Package negotiate matches visitor language preferences against the
// configured language set. Matching is exact-code so the outcome is
// deterministic regardless of regional variants the visitor advertises.
package negotiate

import (
	"strings"

	"golang.org/x/text/language"
)

// Pick walks prefs in order and returns the first entry present in
// supported. When nothing matches it returns fallback. Pick never returns a
// code outside supported ∪ {fallback}.
func Pick(prefs []string, supported []string, fallback string) string {
	for _, pref := range prefs {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		for _, candidate := range supported {
			if pref == strings.TrimSpace(candidate) {
				return pref
			}
		}
	}
	return strings.TrimSpace(fallback)
}

// ParseAcceptLanguage turns an Accept-Language header into a ranked
// preference list, highest quality first. Unparseable headers yield an empty
// list rather than an error so negotiation can always proceed to fallback.
func ParseAcceptLanguage(header string) []string {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if code := tag.String(); code != "" && code != "und" {
			out = append(out, code)
		}
	}
	return out
}
