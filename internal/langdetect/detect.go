// Package langdetect guesses the language of a piece of text and maps it
// onto the catalog of supported languages.
package langdetect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
	"github.com/phrazzld/polyglot-api/internal/catalog"
)

// reliableConfidence is the minimum confidence for a detection to count as
// reliable.
const reliableConfidence = 0.5

// Result describes a detection outcome.
type Result struct {
	// Code is a supported language code; never empty.
	Code string
	// Confidence is the detector's confidence in [0, 1].
	Confidence float64
	// Reliable is false when the detector itself doubted the answer or the
	// language had to be defaulted.
	Reliable bool
}

// detectorISO lists ISO codes the detector knows under a different code
// than the catalog uses.
var detectorISO = map[string][]string{
	"no": {"nb", "nn"},
}

// detector only considers languages from the catalog, which keeps close
// neighbours such as Galician or Catalan from winning over Spanish.
var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(catalogLanguages()...).
		Build()
})

func catalogLanguages() []lingua.Language {
	wanted := make(map[string]bool)
	for _, l := range catalog.Languages() {
		iso, ok := catalog.ISO6391(l.Code)
		if !ok {
			continue
		}
		wanted[iso] = true
		for _, alt := range detectorISO[iso] {
			wanted[alt] = true
		}
	}

	var out []lingua.Language
	for _, lang := range lingua.AllLanguages() {
		if wanted[strings.ToLower(lang.IsoCode639_1().String())] {
			out = append(out, lang)
		}
	}
	return out
}

// Detect returns the supported language that best matches text. Text that
// cannot be classified resolves to catalog.DefaultLanguage.
func Detect(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Code: catalog.DefaultLanguage}
	}

	d := detector()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return Result{Code: catalog.DefaultLanguage}
	}

	var confidence float64
	for _, cv := range d.ComputeLanguageConfidenceValues(text) {
		if cv.Language() == lang {
			confidence = cv.Value()
			break
		}
	}

	return Result{
		Code:       catalog.MatchDetected(lang.IsoCode639_1().String()),
		Confidence: confidence,
		Reliable:   confidence >= reliableConfidence,
	}
}
