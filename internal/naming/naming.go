// Package naming derives the identifier forms a scaffold needs from a free
// form name: a kebab-case slug for file names and a PascalCase type name.
package naming

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultName is used when the given name yields no words.
const DefaultName = "ng-service"

// Forms holds a name and the conventions derived from it.
type Forms struct {
	// Canonical is the name as given (trimmed), or the fallback.
	Canonical string
	// Slug is lowercase and hyphen separated, e.g. "my-widget".
	Slug string
	// Type is PascalCase, e.g. "MyWidget".
	Type string
}

// Derive computes Forms for input, falling back to DefaultName.
func Derive(input string) Forms {
	return DeriveOr(input, DefaultName)
}

// DeriveOr computes Forms for input. When input contains no letters or
// digits the forms of fallback are returned instead; an unusable fallback
// degrades to DefaultName.
func DeriveOr(input, fallback string) Forms {
	canonical := strings.TrimSpace(input)
	words := Words(canonical)
	if len(words) == 0 {
		canonical = strings.TrimSpace(fallback)
		words = Words(canonical)
	}
	if len(words) == 0 {
		canonical = DefaultName
		words = Words(canonical)
	}

	return Forms{
		Canonical: canonical,
		Slug:      strings.Join(words, "-"),
		Type:      typeName(words),
	}
}

// Words splits s into lowercase ASCII words. Accents are stripped first;
// any other rune outside [A-Za-z0-9] separates words, as do case changes and
// letter/digit boundaries ("myHTTPService" yields my, http, service).
func Words(s string) []string {
	plain := normalize(s)
	if plain == "" {
		return nil
	}
	return strings.Split(strcase.ToKebab(plain), "-")
}

func typeName(words []string) string {
	out := strcase.ToCamel(strings.Join(words, "-"))
	if out != "" && isDigit(rune(out[0])) {
		out = "X" + out
	}
	return out
}

// normalize folds accents and reduces s to ASCII letters and digits
// separated by single spaces.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range fold(s) {
		if isAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// fold decomposes s and drops combining marks so "Café" becomes "Cafe".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isAlnum(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
