package player

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayName builds "<given> <surname>" from the provider's abbreviated full
// name (e.g. "P. Papin") and its first-name field (e.g. "Jean Pierre").
//
// With several given names, the one sharing the initial of the full name's
// first token wins; otherwise the first given name is used. The surname is
// always the last token of the full name.
func DisplayName(name, firstName string) string {
	nameParts := strings.Fields(name)
	givenParts := strings.Fields(firstName)
	if len(nameParts) == 0 {
		return strings.Join(givenParts, " ")
	}
	if len(givenParts) == 0 {
		return strings.Join(nameParts, " ")
	}

	surname := nameParts[len(nameParts)-1]
	if len(givenParts) == 1 {
		return givenParts[0] + " " + surname
	}

	initial := firstRune(nameParts[0])
	for _, part := range givenParts {
		if firstRune(part) == initial {
			return part + " " + surname
		}
	}
	return givenParts[0] + " " + surname
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r)
}
