package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"phrasematch/model"
)

// eosMarker terminates a sentence in MeCab output.
const eosMarker = "EOS"

// ParseMeCab reads MeCab-format analyzer output ("surface\tf1,f2,...") and returns the
// tokens of each sentence. EOS lines close a sentence and are not tokens. Lines without
// a tab are skipped.
func ParseMeCab(r io.Reader) ([][]Token, error) {
	var (
		sentences [][]Token
		current   []Token
		open      bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == eosMarker {
			sentences = append(sentences, current)
			current, open = nil, false
			continue
		}
		surface, features, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		current = append(current, model.NewToken(surface, strings.Split(features, ",")))
		open = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: read mecab output: %w", err)
	}
	if open {
		sentences = append(sentences, current)
	}
	return sentences, nil
}
