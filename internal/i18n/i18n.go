// Package i18n holds the locale model for the site: the supported locale
// set, preference detection, and the mapping between localized URL
// segments.
package i18n

import (
	"strings"
)

const (
	// ES is the Spanish locale, the site default.
	ES = "es"
	// EN is the English locale.
	EN = "en"

	// DefaultLocale is used when no preference can be determined.
	DefaultLocale = ES
)

// locales in declared order; the order decides Accept-Language scanning.
var locales = []string{ES, EN}

// pathMapping translates human-readable route segments between locales.
// The two directions are exact inverses of each other.
var pathMapping = map[string]map[string]string{
	ES: {
		"sobre-mi":  "about",
		"contacto":  "contact",
		"proyectos": "projects",
	},
	EN: {
		"about":    "sobre-mi",
		"contact":  "contacto",
		"projects": "proyectos",
	},
}

// Locales returns the supported locales in declared order.
func Locales() []string {
	out := make([]string, len(locales))
	copy(out, locales)
	return out
}

// IsSupported reports whether a locale tag belongs to the supported set.
func IsSupported(locale string) bool {
	for _, l := range locales {
		if l == locale {
			return true
		}
	}
	return false
}

// FromPath reports the locale a path is already prefixed with, if any.
func FromPath(path string) (string, bool) {
	for _, l := range locales {
		if path == "/"+l || strings.HasPrefix(path, "/"+l+"/") {
			return l, true
		}
	}
	return "", false
}

// Detect determines the preferred locale: a valid cookie value wins, then
// the first supported locale appearing anywhere in the Accept-Language
// value, then the default. A malformed or empty header never errors.
func Detect(cookieValue, acceptLanguage string) string {
	if IsSupported(cookieValue) {
		return cookieValue
	}

	if acceptLanguage != "" {
		for _, l := range locales {
			if strings.Contains(acceptLanguage, l) {
				return l
			}
		}
	}

	return DefaultLocale
}

// LocalizedPath translates a locale-prefixed path to its spelling in
// another locale. The first segment after the prefix is swapped when it
// is mapped ("sobre-mi" <-> "about", "proyectos" <-> "projects"); deeper
// segments such as project slugs are kept intact. The mapping is
// symmetric, so translating there and back yields the original path.
func LocalizedPath(path, fromLocale, toLocale string) string {
	cleanPath := strings.TrimPrefix(path, "/"+fromLocale)
	if cleanPath == "" || cleanPath == "/" {
		return "/" + toLocale
	}

	segments := strings.SplitN(strings.TrimPrefix(cleanPath, "/"), "/", 2)
	if mapping, ok := pathMapping[fromLocale]; ok {
		if mapped, ok := mapping[segments[0]]; ok {
			segments[0] = mapped
		}
	}

	return "/" + toLocale + "/" + strings.Join(segments, "/")
}

// PathSegment returns the localized spelling of a canonical (English)
// route segment, e.g. PathSegment(ES, "about") == "sobre-mi". Unmapped
// segments are returned as-is.
func PathSegment(locale, canonical string) string {
	if locale == EN {
		return canonical
	}
	if mapped, ok := pathMapping[EN][canonical]; ok {
		return mapped
	}
	return canonical
}

// Resolver adapts this package to the routing middleware contract.
type Resolver struct{}

func (Resolver) FromPath(path string) (string, bool) {
	return FromPath(path)
}

func (Resolver) Resolve(cookieValue, acceptLanguage string) string {
	return Detect(cookieValue, acceptLanguage)
}
