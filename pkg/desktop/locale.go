package desktop

import (
	"os"
	"strings"
)

// Languages computes the process's preference-ordered language list for
// locale-variant key selection. It consults LANGUAGE, LC_ALL, LC_MESSAGES,
// and LANG (in that order), expands each locale into its progressively less
// specific variants, and deduplicates the result. The C and POSIX locales
// yield no entries, so a process running without locale configuration gets
// an empty list and falls through to untranslated keys.
func Languages() []string {
	// Determine the raw locale list. LANGUAGE is already a priority list;
	// the other variables each name a single locale.
	var locales []string
	if language := os.Getenv("LANGUAGE"); language != "" {
		locales = strings.Split(language, ":")
	} else {
		for _, variable := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			if value := os.Getenv(variable); value != "" {
				locales = []string{value}
				break
			}
		}
	}

	// Expand each locale, deduplicating across the full list.
	var languages []string
	seen := make(map[string]bool)
	for _, locale := range locales {
		for _, variant := range expandLocale(locale) {
			if !seen[variant] {
				seen[variant] = true
				languages = append(languages, variant)
			}
		}
	}
	return languages
}

// expandLocale expands a POSIX locale name of the form
// lang[_COUNTRY][.codeset][@modifier] into its matching variants in
// decreasing order of specificity: lang_COUNTRY@modifier, lang_COUNTRY,
// lang@modifier, lang. The codeset never participates in matching.
func expandLocale(locale string) []string {
	// Ignore the no-translation locales.
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}

	// Split off the modifier and codeset.
	var modifier string
	if index := strings.IndexByte(locale, '@'); index >= 0 {
		modifier = locale[index+1:]
		locale = locale[:index]
	}
	if index := strings.IndexByte(locale, '.'); index >= 0 {
		locale = locale[:index]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return nil
	}

	// Split off the country.
	language := locale
	var country string
	if index := strings.IndexByte(locale, '_'); index >= 0 {
		language = locale[:index]
		country = locale[index+1:]
	}

	// Emit variants from most to least specific.
	var variants []string
	if country != "" && modifier != "" {
		variants = append(variants, language+"_"+country+"@"+modifier)
	}
	if country != "" {
		variants = append(variants, language+"_"+country)
	}
	if modifier != "" {
		variants = append(variants, language+"@"+modifier)
	}
	variants = append(variants, language)
	return variants
}
