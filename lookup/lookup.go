// Package lookup ranks reference entries by phonetic edit distance to a query phrase.
//
// Ranking is an exhaustive scan: every candidate's pronunciation is compared to the
// query pronunciation with a unit-cost Levenshtein distance and the candidates are
// sorted by (distance, original position). Equal distances therefore keep their
// input order.
package lookup

import (
	"errors"
	"slices"

	"github.com/antzucaro/matchr"

	"phrasematch/model"
)

// ErrEmptyCandidateSet is returned by MatchClosest when there is nothing to match.
var ErrEmptyCandidateSet = errors.New("lookup: empty candidate set")

// DistanceFunc returns a non-negative edit distance between two pronunciations.
type DistanceFunc func(a, b string) int

// Distance is the default primitive. It counts runes, so each kana is one unit.
func Distance(a, b string) int {
	return matchr.Levenshtein(a, b)
}

// Candidate is a ranked entry together with its distance to the query.
type Candidate struct {
	Entry    model.WordEntry `json:"entry"`
	Distance int             `json:"distance"`
}

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithDistance replaces the edit-distance primitive.
func WithDistance(fn DistanceFunc) Option {
	return func(m *Matcher) {
		if fn != nil {
			m.distance = fn
		}
	}
}

// WithSkipSilent drops candidates whose pronunciation is empty, so they can never be
// a perfect match for a phrase without a phonetic transcription.
func WithSkipSilent(skip bool) Option {
	return func(m *Matcher) {
		m.skipSilent = skip
	}
}

// Matcher holds a reference index and ranks queries against it. All methods are safe
// for concurrent use; the Matcher is read-only after construction.
type Matcher struct {
	entries    []model.WordEntry
	distance   DistanceFunc
	skipSilent bool
}

// New returns a [Matcher] over entries. The slice is copied.
func New(entries []model.WordEntry, opts ...Option) *Matcher {
	m := &Matcher{distance: Distance}
	for _, o := range opts {
		o(m)
	}
	m.entries = make([]model.WordEntry, 0, len(entries))
	for _, e := range entries {
		if m.skipSilent && e.Pronunciation == "" {
			continue
		}
		m.entries = append(m.entries, e)
	}
	return m
}

// Len returns the number of candidates the matcher ranks against.
func (m *Matcher) Len() int {
	return len(m.entries)
}

// RankScored returns every candidate with its distance, ascending by distance.
func (m *Matcher) RankScored(query model.Phrase) []Candidate {
	return rankScored(query, m.entries, m.distance)
}

// Rank returns the candidates ordered by ascending distance to query.
func (m *Matcher) Rank(query model.Phrase) []model.WordEntry {
	return entriesOf(m.RankScored(query))
}

// MatchClosest returns the best-ranked candidate for query.
func (m *Matcher) MatchClosest(query model.Phrase) (model.Match, error) {
	return matchClosest(query, m.entries, m.distance)
}

// Rank orders candidates by ascending distance to query using [Distance]. An empty
// candidate set yields an empty result.
func Rank(query model.Phrase, candidates []model.WordEntry) []model.WordEntry {
	return entriesOf(rankScored(query, candidates, Distance))
}

// MatchClosest returns the first element of Rank(query, candidates).
func MatchClosest(query model.Phrase, candidates []model.WordEntry) (model.Match, error) {
	return matchClosest(query, candidates, Distance)
}

func rankScored(query model.Phrase, candidates []model.WordEntry, dist DistanceFunc) []Candidate {
	scored := make([]Candidate, len(candidates))
	for i, c := range candidates {
		scored[i] = Candidate{Entry: c, Distance: dist(query.Pronunciation, c.Pronunciation)}
	}
	slices.SortStableFunc(scored, func(a, b Candidate) int {
		return a.Distance - b.Distance
	})
	return scored
}

func matchClosest(query model.Phrase, candidates []model.WordEntry, dist DistanceFunc) (model.Match, error) {
	if len(candidates) == 0 {
		return model.Match{}, ErrEmptyCandidateSet
	}
	best := rankScored(query, candidates, dist)[0]
	return model.Match{Phrase: query, Entry: best.Entry, Distance: best.Distance}, nil
}

func entriesOf(scored []Candidate) []model.WordEntry {
	out := make([]model.WordEntry, len(scored))
	for i, c := range scored {
		out[i] = c.Entry
	}
	return out
}
