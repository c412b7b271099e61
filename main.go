package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"phrasematch/analyze"
	"phrasematch/config"
	"phrasematch/dictionary"
	"phrasematch/ingest"
	"phrasematch/kana"
	"phrasematch/logger"
	"phrasematch/lookup"
	"phrasematch/model"
	"phrasematch/segment"
	"phrasematch/tokenize"
)

const sampleText = "海は広いな大きいな。月がのぼるし日が沈む"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to the YAML configuration file (defaults apply when empty)")
	wordlist := flag.String("wordlist", "", "reference word list, one candidate per line (overrides match.wordlist)")
	text := flag.String("text", "", "text to analyze")
	input := flag.String("input", "", "file with one sentence per line, - for stdin")
	mecab := flag.String("mecab", "", "pre-tokenized MeCab output to analyze instead of raw text")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "phrasematch: %v\n", err)
			return 1
		}
	}
	if *wordlist != "" {
		cfg.Match.Wordlist = *wordlist
	}

	log, err := logger.New(string(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "phrasematch: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tk, err := tokenize.New(tokenize.Options{
		Dict:     cfg.Tokenizer.Dict,
		UserDict: cfg.Tokenizer.UserDict,
		Mode:     cfg.Tokenizer.Mode,
	})
	if err != nil {
		log.Error("failed to build tokenizer", zap.Error(err))
		return 1
	}

	entries, err := dictionary.LoadFile(ctx, tk, cfg.Match.Wordlist)
	if err != nil {
		log.Error("failed to load word list", zap.String("path", cfg.Match.Wordlist), zap.Error(err))
		return 1
	}
	log.Info("word list loaded", zap.String("path", cfg.Match.Wordlist), zap.Int("entries", len(entries)))

	matcher := lookup.New(entries, lookup.WithSkipSilent(cfg.Match.SkipSilent))
	an := analyze.New(tk, matcher,
		analyze.WithRules(segment.RulesFor(tk.Dict())),
		analyze.WithSuppressDependentBreaks(cfg.Segment.SuppressDependentBreaks),
		analyze.WithConcurrency(cfg.Match.Concurrency),
		analyze.WithLogger(log),
	)

	if cfg.Output.ReportDir != "" {
		if err := logger.InitLogs(cfg.Output.ReportDir); err != nil {
			log.Error("failed to init report dir", zap.String("dir", cfg.Output.ReportDir), zap.Error(err))
			return 1
		}
	}

	var reports []analyze.Report
	if *mecab != "" {
		reports, err = analyzeMeCab(ctx, an, *mecab)
	} else {
		reports, err = analyzeText(ctx, an, *text, *input)
	}
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return 1
	}

	for _, r := range reports {
		for _, m := range r.Matches {
			fmt.Println(kana.Display(m.Phrase.Pronunciation, cfg.Output.Kana), kana.Display(m.Entry.Pronunciation, cfg.Output.Kana))
		}
		if cfg.Output.ReportDir == "" {
			continue
		}
		if err := logger.LogJSON(cfg.Output.ReportDir, r.SentenceID, r); err != nil {
			log.Warn("failed to write report", zap.String("sentence_id", r.SentenceID), zap.Error(err))
		}
	}
	return 0
}

func analyzeText(ctx context.Context, an *analyze.Analyzer, text, input string) ([]analyze.Report, error) {
	var sentences []ingest.Sentence
	switch {
	case input != "":
		r, closeFn, err := openInput(input)
		if err != nil {
			return nil, err
		}
		defer closeFn()
		if sentences, err = ingest.Scan(r); err != nil {
			return nil, err
		}
	default:
		if text == "" {
			text = sampleText
		}
		s, err := ingest.New(text)
		if err != nil {
			return nil, err
		}
		sentences = []ingest.Sentence{s}
	}

	reports := make([]analyze.Report, 0, len(sentences))
	for _, s := range sentences {
		r, err := an.Analyze(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("sentence %s: %w", s.ID, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func analyzeMeCab(ctx context.Context, an *analyze.Analyzer, path string) ([]analyze.Report, error) {
	r, closeFn, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	sentences, err := tokenize.ParseMeCab(r)
	if err != nil {
		return nil, err
	}

	var reports []analyze.Report
	for _, tokens := range sentences {
		s, err := ingest.New(joinSurfaces(tokens))
		if errors.Is(err, ingest.ErrEmptySentence) {
			continue
		}
		rep, err := an.AnalyzeTokens(ctx, s, tokens)
		if err != nil {
			return nil, fmt.Errorf("sentence %s: %w", s.ID, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func joinSurfaces(tokens []model.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Surface)
	}
	return b.String()
}
