package analyze

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"phrasematch/ingest"
	"phrasematch/lookup"
	"phrasematch/model"
	"phrasematch/segment"
)

// Tokenizer is the morphological analyzer the pipeline runs on raw text.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Report is the result of analyzing one sentence, written out as a JSON artifact.
type Report struct {
	SentenceID  string        `json:"sentence_id"`
	Text        string        `json:"text"`
	CreatedAt   time.Time     `json:"created_at"`
	PhraseCount int           `json:"phrase_count"`
	Matches     []model.Match `json:"matches"`
}

type Option func(*Analyzer)

// WithSuppressDependentBreaks toggles the dependent-break suppression rules. Default true.
func WithSuppressDependentBreaks(suppress bool) Option {
	return func(a *Analyzer) { a.suppress = suppress }
}

// WithRules sets the POS tag set used for segmentation. Default segment.IPARules.
func WithRules(r segment.Rules) Option {
	return func(a *Analyzer) { a.rules = r }
}

// WithConcurrency sets how many phrases are matched at once. Values below 2 match
// sequentially.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) { a.concurrency = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// Analyzer ties tokenizer, segmenter and matcher together. It keeps no per-call state.
type Analyzer struct {
	tok         Tokenizer
	matcher     *lookup.Matcher
	rules       segment.Rules
	suppress    bool
	concurrency int
	log         *zap.Logger
}

func New(tok Tokenizer, matcher *lookup.Matcher, opts ...Option) *Analyzer {
	a := &Analyzer{
		tok:         tok,
		matcher:     matcher,
		rules:       segment.IPARules,
		suppress:    true,
		concurrency: 1,
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Phrases tokenizes text and segments the tokens.
func (a *Analyzer) Phrases(ctx context.Context, text string) ([]model.Phrase, error) {
	tokens, err := a.tok.Tokenize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze: tokenize: %w", err)
	}
	return a.rules.Segment(tokens, a.suppress), nil
}

// FindClosestPhrases pairs every phrase of text with its closest reference entry, in
// phrase order.
func (a *Analyzer) FindClosestPhrases(ctx context.Context, text string) ([]model.Match, error) {
	phrases, err := a.Phrases(ctx, text)
	if err != nil {
		return nil, err
	}
	return a.MatchPhrases(ctx, phrases)
}

// MatchPhrases matches each phrase independently. Results are stored by phrase index,
// so the output does not depend on scheduling.
func (a *Analyzer) MatchPhrases(ctx context.Context, phrases []model.Phrase) ([]model.Match, error) {
	matches := make([]model.Match, len(phrases))
	if a.concurrency < 2 {
		for i, p := range phrases {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			m, err := a.matcher.MatchClosest(p)
			if err != nil {
				return nil, fmt.Errorf("analyze: phrase %q: %w", p.Surface, err)
			}
			matches[i] = m
		}
		return matches, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, p := range phrases {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := a.matcher.MatchClosest(p)
			if err != nil {
				return fmt.Errorf("analyze: phrase %q: %w", p.Surface, err)
			}
			matches[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

// Analyze tokenizes an ingested sentence and matches its phrases.
func (a *Analyzer) Analyze(ctx context.Context, s ingest.Sentence) (Report, error) {
	tokens, err := a.tok.Tokenize(ctx, s.Text)
	if err != nil {
		return Report{}, fmt.Errorf("analyze: tokenize: %w", err)
	}
	return a.AnalyzeTokens(ctx, s, tokens)
}

// AnalyzeTokens segments already tokenized input, e.g. parsed MeCab output, and
// matches its phrases.
func (a *Analyzer) AnalyzeTokens(ctx context.Context, s ingest.Sentence, tokens []model.Token) (Report, error) {
	matches, err := a.MatchPhrases(ctx, a.rules.Segment(tokens, a.suppress))
	if err != nil {
		return Report{}, err
	}
	a.log.Debug("sentence analyzed",
		zap.String("sentence_id", s.ID),
		zap.Int("tokens", len(tokens)),
		zap.Int("phrases", len(matches)))
	return Report{
		SentenceID:  s.ID,
		Text:        s.Text,
		CreatedAt:   s.CreatedAt,
		PhraseCount: len(matches),
		Matches:     matches,
	}, nil
}
