// Package naming derives the case variants of an entity name.
package naming

import (
	"errors"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/gertd/go-pluralize"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/makeca/make-ca/internal/domain"
)

var pluralizer = pluralize.NewClient()

// ErrEmptyName is returned when a name has no letters or digits.
var ErrEmptyName = errors.New("name has no letters or digits")

// Format normalizes name to kebab-case and derives every other form from
// the normalized value. Plural forms pluralize the already-cased singulars.
func Format(name string) (domain.EntityNameFormats, error) {
	kebab := Kebab(name)
	if kebab == "" {
		return domain.EntityNameFormats{}, ErrEmptyName
	}

	camel := Camel(kebab)
	pascal := Pascal(kebab)

	return domain.EntityNameFormats{
		KebabCase:        kebab,
		CamelCase:        camel,
		PascalCase:       pascal,
		PluralKebabCase:  Plural(kebab),
		PluralCamelCase:  Plural(camel),
		PluralPascalCase: Plural(pascal),
	}, nil
}

// Kebab converts s to lower-case words joined by "-". Words are split on
// any non-alphanumeric rune and before an upper-case letter that starts a
// new word. A valid kebab-case name is returned unchanged.
func Kebab(s string) string {
	return slug.Make(strings.Join(words(s), " "))
}

// Camel converts s to camelCase.
func Camel(s string) string {
	ws := strings.Split(Kebab(s), "-")
	if len(ws) == 0 || ws[0] == "" {
		return ""
	}
	title := cases.Title(language.Und)
	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Pascal converts s to PascalCase.
func Pascal(s string) string {
	kebab := Kebab(s)
	if kebab == "" {
		return ""
	}
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range strings.Split(kebab, "-") {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// Plural returns the English plural of s. Only the last word changes and
// the case of the input is kept.
func Plural(s string) string {
	if s == "" {
		return ""
	}
	return pluralizer.Plural(s)
}

func words(s string) []string {
	var out []string
	for _, field := range strings.FieldsFunc(s, isSeparator) {
		var parts []string
		for _, part := range camelcase.Split(field) {
			// Only an upper-case letter starts a new word; camelcase also
			// splits at digits, so "user2profile" is glued back together.
			if len(parts) > 0 && !startsWithUpper(part) {
				parts[len(parts)-1] += part
				continue
			}
			parts = append(parts, part)
		}
		out = append(out, parts...)
	}
	return out
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func startsWithUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
