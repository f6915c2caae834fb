package catalog

import "strings"

// DefaultLanguage is the code used whenever a language cannot be resolved.
const DefaultLanguage = "en"

// Language pairs a display name with its code.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var languages = []Language{
	{"English", "en"},
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Italian", "it"},
	{"Portuguese", "pt"},
	{"Chinese (Simplified)", "zh"},
	{"Chinese (Traditional)", "zh-TW"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Russian", "ru"},
	{"Arabic", "ar"},
	{"Hindi", "hi"},
	{"Bengali", "bn"},
	{"Turkish", "tr"},
	{"Vietnamese", "vi"},
	{"Thai", "th"},
	{"Dutch", "nl"},
	{"Greek", "el"},
	{"Polish", "pl"},
	{"Tamil", "ta"},
	{"Telugu", "te"},
	{"Gujarati", "gu"},
	{"Kannada", "kn"},
	{"Malayalam", "ml"},
	{"Marathi", "mr"},
	{"Punjabi", "pa"},
	{"Urdu", "ur"},
	{"Indonesian", "id"},
	{"Malay", "ms"},
	{"Filipino", "fil"},
	{"Swedish", "sv"},
	{"Danish", "da"},
	{"Norwegian", "no"},
	{"Finnish", "fi"},
	{"Czech", "cs"},
	{"Romanian", "ro"},
	{"Hungarian", "hu"},
	{"Ukrainian", "uk"},
	{"Hebrew", "he"},
}

var byCode, byName = indexLanguages()

func indexLanguages() (codes, names map[string]Language) {
	codes = make(map[string]Language, len(languages))
	names = make(map[string]Language, len(languages))
	for _, l := range languages {
		codes[strings.ToLower(l.Code)] = l
		names[strings.ToLower(l.Name)] = l
	}
	return codes, names
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Lookup finds a language by code or name, ignoring case.
func Lookup(s string) (Language, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if l, ok := byCode[key]; ok {
		return l, true
	}
	l, ok := byName[key]
	return l, ok
}

// ResolveLanguage returns the code for a language code or name.
// Unknown input resolves to DefaultLanguage.
func ResolveLanguage(s string) string {
	if l, ok := Lookup(s); ok {
		return l.Code
	}
	return DefaultLanguage
}

// LanguageName returns the display name for a code or name, or the English
// name of the default language when it is unknown.
func LanguageName(s string) string {
	if l, ok := Lookup(s); ok {
		return l.Name
	}
	return byCode[DefaultLanguage].Name
}

// isoCodes maps catalog codes that are not ISO 639-1 onto the ISO code.
var isoCodes = map[string]string{
	"fil": "tl",
}

// detectedAliases maps ISO 639-1 codes a detector may report onto the
// catalog code that covers them.
var detectedAliases = map[string]string{
	"tl": "fil",
	"nb": "no",
	"nn": "no",
}

// ISO6391 returns the two-letter ISO 639-1 code of a supported language
// given by code or name. Region suffixes are dropped, so "zh-TW" yields "zh".
func ISO6391(s string) (string, bool) {
	l, ok := Lookup(s)
	if !ok {
		return "", false
	}
	code := strings.ToLower(l.Code)
	if iso, ok := isoCodes[code]; ok {
		return iso, true
	}
	base, _, _ := strings.Cut(code, "-")
	return base, true
}

// MatchDetected maps a detector's ISO 639-1 code (possibly with a region
// suffix such as "zh-cn") onto a supported code, falling back to
// DefaultLanguage.
func MatchDetected(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return DefaultLanguage
	}
	if l, ok := byCode[code]; ok {
		return l.Code
	}
	if alias, ok := detectedAliases[code]; ok {
		return alias
	}
	for _, l := range languages {
		if strings.HasPrefix(code, strings.ToLower(l.Code)) {
			return l.Code
		}
	}
	return DefaultLanguage
}
