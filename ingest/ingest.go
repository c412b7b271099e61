package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptySentence is returned for input that is blank after trimming.
var ErrEmptySentence = errors.New("ingest: empty sentence")

// Sentence represents an ingested input sentence and metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// New trims the input, validates it and assigns an ID.
func New(text string) (Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Sentence{}, ErrEmptySentence
	}
	return Sentence{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Scan reads one sentence per line from r. Blank lines are skipped.
func Scan(r io.Reader) ([]Sentence, error) {
	var out []Sentence
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		s, err := New(sc.Text())
		if errors.Is(err, ErrEmptySentence) {
			continue
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: read input: %w", err)
	}
	return out, nil
}
