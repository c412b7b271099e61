package model

import "strings"

// Token represents a morpheme produced by the tokenizer. Grammatical fields follow the
// MeCab/IPA feature layout.
type Token struct {
	Surface        string `json:"surface"`
	POS            string `json:"pos"`
	POSDetail1     string `json:"pos_detail_1"`
	POSDetail2     string `json:"pos_detail_2"`
	POSDetail3     string `json:"pos_detail_3"`
	ConjugatedType string `json:"conjugated_type"`
	ConjugatedForm string `json:"conjugated_form"`
	BasicForm      string `json:"basic_form"`
	Reading        string `json:"reading,omitempty"`
	Pronunciation  string `json:"pronunciation,omitempty"`
}

// NewToken builds a Token from a surface form and positional feature fields.
// Only the first nine fields are read; missing trailing fields take their defaults.
func NewToken(surface string, fields []string) Token {
	field := func(i int, def string) string {
		if i < len(fields) {
			return fields[i]
		}
		return def
	}
	return Token{
		Surface:        surface,
		POS:            field(0, ""),
		POSDetail1:     field(1, "*"),
		POSDetail2:     field(2, "*"),
		POSDetail3:     field(3, "*"),
		ConjugatedType: field(4, "*"),
		ConjugatedForm: field(5, "*"),
		BasicForm:      field(6, surface),
		Reading:        field(7, ""),
		Pronunciation:  field(8, ""),
	}
}

// Detail returns the three POS detail fields joined by ",".
func (t Token) Detail() string {
	return strings.Join([]string{t.POSDetail1, t.POSDetail2, t.POSDetail3}, ",")
}

// Phrase is a run of tokens grouped by the segmenter.
type Phrase struct {
	Surface       string `json:"surface"`
	Pronunciation string `json:"pronunciation"`
}

// WordEntry is one line of the reference word list.
type WordEntry struct {
	ID            int    `json:"id"`
	Surface       string `json:"surface"`
	Pronunciation string `json:"pronunciation"`
}

type Match struct {
	Phrase   Phrase    `json:"phrase"`
	Entry    WordEntry `json:"closest_word"`
	Distance int       `json:"distance"`
}
