// Package i18n supplies the English status/error prose spec.md leaves
// as plain text (e.g. §7's "Errors while loading …" summary), kept in
// one struct the way the teacher's pkg/i18n keeps every user-facing
// string in a TranslationSet rather than scattered string literals,
// with the host locale detected the same way (jibber_jabber) even
// though only an English set ships with this module.
package i18n

import (
	"github.com/cloudfoundry/jibber_jabber"
)

// TranslationSet holds every prose string this module surfaces to the
// user outside of view content itself. Grounded on
// pkg/i18n/english.go's TranslationSet, trimmed to this domain's
// vocabulary.
type TranslationSet struct {
	NotARepository     string
	PermissionDenied   string
	RepoPathMissing    string
	ConfigLoadErrors   string
	NoPreviousSearch   string
	NoMatchFound       string
	NoMatchFoundForFmt string // %s: the search pattern
	LineMatchesFmt     string // %d, %s: the matched line number and pattern
	StoppedLoadingFmt  string // %s: the view name
	UnknownOption      string
	PressEnterToReturn string
}

// English is the only shipped translation set; detected locale only
// ever selects it for now, matching spec.md's English-prose
// assumption while leaving the seam the teacher's Localizer uses for
// future sets.
func English() *TranslationSet {
	return &TranslationSet{
		NotARepository:     "not a git repository (or any parent up to mount point)",
		PermissionDenied:   "permission denied while reading the repository",
		RepoPathMissing:    "repository path does not exist",
		ConfigLoadErrors:   "Errors while loading ~/.tigrc",
		NoPreviousSearch:   "No previous search pattern",
		NoMatchFound:       "No match found",
		NoMatchFoundForFmt: "No match found for '%s'",
		LineMatchesFmt:     "Line %d matches '%s'",
		StoppedLoadingFmt:  "Stopped loading the %s view",
		UnknownOption:      "unknown option",
		PressEnterToReturn: "Press Enter to continue",
	}
}

// DetectLocale reports the host's language tag (e.g. "en_US"),
// falling back to "en" when detection fails — the same
// jibber_jabber.DetectIETF call the teacher's i18n selection uses,
// kept here as the seam a future non-English TranslationSet would key
// off of.
func DetectLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil || locale == "" {
		return "en"
	}
	return locale
}

// NewTranslationSet returns the translation set for the detected host
// locale. Every locale currently resolves to English.
func NewTranslationSet() *TranslationSet {
	_ = DetectLocale()
	return English()
}
