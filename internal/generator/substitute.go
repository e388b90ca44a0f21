package generator

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens recognised in templates.
const (
	NameToken      = "XNAMEX"
	UpperNameToken = "XUPPERNAMEX"
	LowerNameToken = "XLOWERNAMEX"
)

var numberPlaceholder = regexp.MustCompile(`XNUM([0-9,]*)X`)

// Substitute fills every placeholder in template.
// Number placeholders are resolved first, each with its own draw; name
// placeholders follow in upper, lower, plain order. It never fails.
func Substitute(rng Rand, template, name string) string {
	out := SubstituteNumbers(rng, template)
	return SubstituteName(out, name)
}

// SubstituteNumbers replaces each XNUM<spec>X occurrence, left to right,
// with a number drawn from the range its spec describes.
func SubstituteNumbers(rng Rand, template string) string {
	if !strings.Contains(template, "XNUM") {
		return template
	}
	return numberPlaceholder.ReplaceAllStringFunc(template, func(match string) string {
		spec := match[len("XNUM") : len(match)-1]
		start, end := ParseRange(spec)
		return strconv.FormatUint(RandomNumberInRange(rng, start, end), 10)
	})
}

// SubstituteName replaces the three name tokens. Case mapping is ASCII only.
func SubstituteName(template, name string) string {
	out := strings.ReplaceAll(template, UpperNameToken, asciiUpper(name))
	out = strings.ReplaceAll(out, LowerNameToken, asciiLower(name))
	return strings.ReplaceAll(out, NameToken, name)
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
