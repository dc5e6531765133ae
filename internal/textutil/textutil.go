// Package textutil normalises word forms and lemmas before they are counted.
package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer maps a string to its canonical spelling.
type Normalizer func(string) string

// Identity leaves strings untouched.
func Identity(s string) string { return s }

// ParseForm returns the Unicode normalisation form named by s.
// The empty string and "none" mean no normalisation.
func ParseForm(s string) (norm.Form, bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return 0, false, nil
	case "nfc":
		return norm.NFC, true, nil
	case "nfd":
		return norm.NFD, true, nil
	case "nfkc":
		return norm.NFKC, true, nil
	case "nfkd":
		return norm.NFKD, true, nil
	}
	return 0, false, fmt.Errorf("unknown normalization form %q", s)
}

// NewNormalizer builds a Normalizer applying the named Unicode form and,
// if lowercase is set, language-neutral lower casing.
// It returns Identity when neither step is requested.
func NewNormalizer(form string, lowercase bool) (Normalizer, error) {
	f, ok, err := ParseForm(form)
	if err != nil {
		return nil, err
	}
	if !ok && !lowercase {
		return Identity, nil
	}
	var lower cases.Caser
	if lowercase {
		lower = cases.Lower(language.Und)
	}
	return func(s string) string {
		if ok {
			s = f.String(s)
		}
		if lowercase {
			s = lower.String(s)
		}
		return s
	}, nil
}
