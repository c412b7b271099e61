package lookup_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"phrasematch/lookup"
	"phrasematch/model"
)

func ids(entries []model.WordEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "umi", "umi", 0},
		{"empty_both", "", "", 0},
		{"empty_a", "", "sora", 4},
		{"substitution", "kawa", "kama", 1},
		{"insertion", "umi", "umii", 1},
		{"kana_are_single_units", "ヒロイ", "ヒロイナ", 1},
		{"kasa_vs_asa", "カサ", "アサ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookup.Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := lookup.Distance(tt.b, tt.a); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestMatchClosestExact(t *testing.T) {
	t.Parallel()

	candidates := []model.WordEntry{
		{ID: 0, Surface: "umi", Pronunciation: "umi"},
		{ID: 1, Surface: "sora", Pronunciation: "sora"},
		{ID: 2, Surface: "yama", Pronunciation: "yama"},
	}
	got, err := lookup.MatchClosest(model.Phrase{Surface: "海", Pronunciation: "umi"}, candidates)
	if err != nil {
		t.Fatalf("MatchClosest() error = %v", err)
	}
	if got.Entry.ID != 0 || got.Distance != 0 {
		t.Errorf("MatchClosest() = %+v, want entry 0 at distance 0", got)
	}
	if got.Phrase.Surface != "海" {
		t.Errorf("MatchClosest() phrase = %+v", got.Phrase)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	t.Parallel()

	candidates := []model.WordEntry{
		{ID: 0, Pronunciation: "yama"},
		{ID: 1, Pronunciation: "umi"},
		{ID: 2, Pronunciation: "kawa"},
		{ID: 3, Pronunciation: "sora"},
		{ID: 4, Pronunciation: "kame"},
		{ID: 5, Pronunciation: "kawa"},
	}
	got := ids(lookup.Rank(model.Phrase{Pronunciation: "kawa"}, candidates))
	if got[0] != 2 || got[1] != 5 {
		t.Errorf("Rank() ids = %v, want 2 then 5 first", got)
	}
}

func TestRankEmpty(t *testing.T) {
	t.Parallel()

	got := lookup.Rank(model.Phrase{Pronunciation: "umi"}, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Rank(nil) = %#v, want empty non-nil slice", got)
	}
	if _, err := lookup.MatchClosest(model.Phrase{Pronunciation: "umi"}, nil); !errors.Is(err, lookup.ErrEmptyCandidateSet) {
		t.Errorf("MatchClosest(nil) error = %v, want ErrEmptyCandidateSet", err)
	}
	m := lookup.New(nil)
	if _, err := m.MatchClosest(model.Phrase{Pronunciation: "umi"}); !errors.Is(err, lookup.ErrEmptyCandidateSet) {
		t.Errorf("Matcher.MatchClosest() error = %v, want ErrEmptyCandidateSet", err)
	}
}

func TestEmptyQueryPronunciation(t *testing.T) {
	t.Parallel()

	candidates := []model.WordEntry{
		{ID: 0, Pronunciation: "abc"},
		{ID: 1, Pronunciation: ""},
		{ID: 2, Pronunciation: "a"},
	}
	scored := lookup.New(candidates).RankScored(model.Phrase{Surface: "ＡＢＣ"})
	want := []lookup.Candidate{
		{Entry: candidates[1], Distance: 0},
		{Entry: candidates[2], Distance: 1},
		{Entry: candidates[0], Distance: 3},
	}
	if !reflect.DeepEqual(scored, want) {
		t.Errorf("RankScored() = %+v, want %+v", scored, want)
	}

	skipping := lookup.New(candidates, lookup.WithSkipSilent(true))
	if skipping.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", skipping.Len())
	}
	got, err := skipping.MatchClosest(model.Phrase{Surface: "ＡＢＣ"})
	if err != nil {
		t.Fatalf("MatchClosest() error = %v", err)
	}
	if got.Entry.ID != 2 || got.Distance != 1 {
		t.Errorf("MatchClosest() = %+v, want entry 2 at distance 1", got)
	}
}

func TestWithDistance(t *testing.T) {
	t.Parallel()

	byLength := func(a, b string) int {
		d := len(a) - len(b)
		if d < 0 {
			return -d
		}
		return d
	}
	m := lookup.New([]model.WordEntry{
		{ID: 0, Pronunciation: "aaaa"},
		{ID: 1, Pronunciation: "zz"},
	}, lookup.WithDistance(byLength))
	got := ids(m.Rank(model.Phrase{Pronunciation: "ab"}))
	if want := []int{1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() ids = %v, want %v", got, want)
	}
}

func TestMatcherCopiesEntries(t *testing.T) {
	t.Parallel()

	entries := []model.WordEntry{{ID: 0, Pronunciation: "umi"}}
	m := lookup.New(entries)
	entries[0].Pronunciation = "sora"
	got, err := m.MatchClosest(model.Phrase{Pronunciation: "umi"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Distance != 0 {
		t.Errorf("MatchClosest() distance = %d, want 0", got.Distance)
	}
}

func TestRankMonotonicAndDeterministic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	const alphabet = "アイウカキク"
	runes := []rune(alphabet)
	randPron := func() string {
		n := rng.Intn(5)
		out := make([]rune, n)
		for i := range out {
			out[i] = runes[rng.Intn(len(runes))]
		}
		return string(out)
	}
	for iter := 0; iter < 100; iter++ {
		candidates := make([]model.WordEntry, rng.Intn(20))
		for i := range candidates {
			candidates[i] = model.WordEntry{ID: i, Pronunciation: randPron()}
		}
		m := lookup.New(candidates)
		query := model.Phrase{Pronunciation: randPron()}
		scored := m.RankScored(query)
		if len(scored) != len(candidates) {
			t.Fatalf("RankScored() returned %d, want %d", len(scored), len(candidates))
		}
		for i := 1; i < len(scored); i++ {
			prev, cur := scored[i-1], scored[i]
			if prev.Distance > cur.Distance {
				t.Fatalf("not monotonic at %d: %+v", i, scored)
			}
			if prev.Distance == cur.Distance && prev.Entry.ID > cur.Entry.ID {
				t.Fatalf("tie-break violated at %d: %+v", i, scored)
			}
		}
		if !reflect.DeepEqual(m.Rank(query), m.Rank(query)) {
			t.Fatal("Rank() is not deterministic")
		}
	}
}
