package tokenize

import (
	"context"
	"fmt"

	"phrasematch/model"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// System dictionary names accepted by Options.Dict.
const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// Tokenize modes accepted by Options.Mode.
const (
	ModeNormal   = "normal"
	ModeSearch   = "search"
	ModeExtended = "extended"
)

// Options selects the kagome dictionary and analysis mode.
type Options struct {
	Dict     string
	UserDict string
	Mode     string
}

// Tokenizer is a long-lived kagome handle. It is safe for concurrent use.
type Tokenizer struct {
	kg   *tokenizer.Tokenizer
	mode tokenizer.TokenizeMode
	dict string
}

// New builds a kagome tokenizer with BOS/EOS omitted.
func New(opts Options) (*Tokenizer, error) {
	name := opts.Dict
	if name == "" {
		name = DictIPA
	}
	var d *dict.Dict
	switch name {
	case DictIPA:
		d = ipa.Dict()
	case DictUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("tokenize: unknown dictionary %q", opts.Dict)
	}

	mode, err := parseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	kopts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if opts.UserDict != "" {
		ud, err := dict.NewUserDict(opts.UserDict)
		if err != nil {
			return nil, fmt.Errorf("tokenize: user dictionary %q: %w", opts.UserDict, err)
		}
		kopts = append(kopts, tokenizer.UserDict(ud))
	}

	kg, err := tokenizer.New(d, kopts...)
	if err != nil {
		return nil, fmt.Errorf("tokenize: init kagome: %w", err)
	}
	return &Tokenizer{kg: kg, mode: mode, dict: name}, nil
}

func parseMode(s string) (tokenizer.TokenizeMode, error) {
	switch s {
	case "", ModeNormal:
		return tokenizer.Normal, nil
	case ModeSearch:
		return tokenizer.Search, nil
	case ModeExtended:
		return tokenizer.Extended, nil
	}
	return tokenizer.Normal, fmt.Errorf("tokenize: unknown mode %q", s)
}

// Dict returns the name of the system dictionary in use.
func (t *Tokenizer) Dict() string {
	return t.dict
}

// Tokenize analyzes text in the configured mode.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return convertKagomeTokens(t.kg.Analyze(text, t.mode)), nil
}

// TokenizeModes runs Normal, Search and Extended analysis and returns the tokens per
// mode name. Useful to compare segmentations.
func (t *Tokenizer) TokenizeModes(ctx context.Context, text string) (map[string][]Token, error) {
	res := make(map[string][]Token, 3)
	if text == "" {
		return res, nil
	}
	for _, m := range []struct {
		name string
		mode tokenizer.TokenizeMode
	}{
		{ModeNormal, tokenizer.Normal},
		{ModeSearch, tokenizer.Search},
		{ModeExtended, tokenizer.Extended},
	} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res[m.name] = convertKagomeTokens(t.kg.Analyze(text, m.mode))
	}
	return res, nil
}

func convertKagomeTokens(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, model.NewToken(kt.Surface, kagomeFields(kt)))
	}
	return out
}

// kagomeFields lays the kagome features out in IPA order. The accessors resolve the
// dictionary-specific feature indexes, so UniDic tokens land in the same slots.
func kagomeFields(kt tokenizer.Token) []string {
	fields := []string{"", "*", "*", "*", "*", "*", kt.Surface, "", ""}
	for i, p := range kt.POS() {
		if i >= 4 {
			break
		}
		if p != "" {
			fields[i] = p
		}
	}
	if v, ok := kt.InflectionalType(); ok && v != "" {
		fields[4] = v
	}
	if v, ok := kt.InflectionalForm(); ok && v != "" {
		fields[5] = v
	}
	if v, ok := kt.BaseForm(); ok && v != "" && v != "*" {
		fields[6] = v
	}
	if v, ok := kt.Reading(); ok && v != "*" {
		fields[7] = v
	}
	if v, ok := kt.Pronunciation(); ok && v != "*" {
		fields[8] = v
	}
	return fields
}
