package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"phrasematch/model"
)

// ErrResourceUnavailable is returned when the word list cannot be read.
var ErrResourceUnavailable = errors.New("dictionary: resource unavailable")

// Tokenizer produces tokens for a line of the word list.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Load builds one WordEntry per line, ids starting at 0. The pronunciation of an entry
// is the concatenation of its tokens' pronunciations; lines are not segmented.
func Load(ctx context.Context, tok Tokenizer, lines []string) ([]model.WordEntry, error) {
	entries := make([]model.WordEntry, 0, len(lines))
	for id, line := range lines {
		pron, err := Pronunciation(ctx, tok, line)
		if err != nil {
			return nil, fmt.Errorf("dictionary: line %d: %w", id+1, err)
		}
		entries = append(entries, model.WordEntry{ID: id, Surface: line, Pronunciation: pron})
	}
	return entries, nil
}

// LoadReader reads one candidate per line from r. No delimiter parsing is applied
// within a line.
func LoadReader(ctx context.Context, tok Tokenizer, r io.Reader) ([]model.WordEntry, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return Load(ctx, tok, lines)
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(ctx context.Context, tok Tokenizer, path string) ([]model.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()
	return LoadReader(ctx, tok, f)
}

// Pronunciation tokenizes text and joins the token pronunciations in order.
func Pronunciation(ctx context.Context, tok Tokenizer, text string) (string, error) {
	tokens, err := tok.Tokenize(ctx, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Pronunciation)
	}
	return b.String(), nil
}
