// Package segment groups tokens into phrase units using part-of-speech boundary rules.
//
// A boundary part-of-speech starts a new phrase. When dependent breaks are suppressed,
// suffixes, non-independent forms and light-verb "suru" constructions stay attached to
// the phrase before them.
package segment

import (
	"slices"
	"strings"

	"phrasematch/model"
)

// Rules names the tags the segmenter tests. Tag values depend on the dictionary the
// tokenizer was built with.
type Rules struct {
	// Boundary holds the parts of speech that start a new phrase.
	Boundary []string

	Verb   string
	Prefix string

	// Markers searched for in the joined POS detail fields.
	Suffix         string
	VerbalNoun     string
	NonIndependent string

	// SuruConjugation is the conjugated type of the light verb "suru".
	SuruConjugation string
}

// IPARules matches the IPA dictionary tag set.
var IPARules = Rules{
	Boundary:        []string{"名詞", "動詞", "接頭詞", "副詞", "感動詞", "形容詞", "形容動詞", "連体詞"},
	Verb:            "動詞",
	Prefix:          "接頭詞",
	Suffix:          "接尾",
	VerbalNoun:      "サ変接続",
	NonIndependent:  "非自立",
	SuruConjugation: "サ変・スル",
}

// UniRules maps the same boundaries onto UniDic tag names.
var UniRules = Rules{
	Boundary:        []string{"名詞", "動詞", "接頭辞", "副詞", "感動詞", "形容詞", "形状詞", "連体詞"},
	Verb:            "動詞",
	Prefix:          "接頭辞",
	Suffix:          "接尾",
	VerbalNoun:      "サ変可能",
	NonIndependent:  "非自立",
	SuruConjugation: "サ行変格",
}

// RulesFor returns the rule set for a tokenizer dictionary name ("ipa" or "uni").
// Unknown names fall back to IPARules.
func RulesFor(dict string) Rules {
	if dict == "uni" {
		return UniRules
	}
	return IPARules
}

// Segment splits tokens into phrases with IPARules.
func Segment(tokens []model.Token, suppressDependentBreaks bool) []model.Phrase {
	return IPARules.Segment(tokens, suppressDependentBreaks)
}

// Segment runs a single left-to-right pass over tokens. The concatenated surfaces of
// the returned phrases always equal the concatenated token surfaces.
func (r Rules) Segment(tokens []model.Token, suppressDependentBreaks bool) []model.Phrase {
	var (
		phrases []model.Phrase
		surface strings.Builder
		pron    strings.Builder
		prev    *model.Token
	)
	flush := func() {
		if surface.Len() == 0 {
			return
		}
		phrases = append(phrases, model.Phrase{Surface: surface.String(), Pronunciation: pron.String()})
		surface.Reset()
		pron.Reset()
	}

	for i := range tokens {
		tk := &tokens[i]
		if r.breaksBefore(tk, prev, suppressDependentBreaks) {
			flush()
		}
		surface.WriteString(tk.Surface)
		pron.WriteString(tk.Pronunciation)
		prev = tk
	}
	flush()
	return phrases
}

// breaksBefore reports whether tk starts a new phrase.
func (r Rules) breaksBefore(tk, prev *model.Token, suppress bool) bool {
	if !slices.Contains(r.Boundary, tk.POS) {
		return false
	}
	if !suppress {
		return true
	}

	detail := tk.Detail()
	switch {
	case strings.Contains(detail, r.Suffix):
		return false
	case tk.POS == r.Verb && strings.Contains(detail, r.VerbalNoun):
		return false
	case strings.Contains(detail, r.NonIndependent):
		return false
	}

	if prev != nil {
		if prev.POS == r.Prefix {
			return false
		}
		if strings.Contains(prev.Detail(), r.VerbalNoun) && tk.POS == r.Verb && tk.ConjugatedType == r.SuruConjugation {
			return false
		}
	}
	return true
}
