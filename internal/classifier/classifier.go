package classifier

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"codeclass/internal/bayes"
	"codeclass/internal/corpus"
	"codeclass/internal/freq"
	"codeclass/internal/lexer"
	"codeclass/internal/matchtree"
	"codeclass/internal/modelcache"
	"codeclass/internal/observ"
	"codeclass/internal/progress"
	"codeclass/internal/token"
)

// ErrUnknownModel is returned when the frequency model is not recognized.
var ErrUnknownModel = errors.New("classifier: unknown frequency model")

// Classifier is safe for concurrent use. Training happens at most once;
// its outcome, success or failure, is permanent.
type Classifier struct {
	loader    corpus.Loader
	logger    *log.Logger
	mtOpts    matchtree.Options
	freqOpts  freq.Options
	bayesOpts bayes.Options
	model     FrequencyModel
	cache     *modelcache.Cache
	sink      progress.Sink
	timer     *observ.Timer
	workers   int

	once sync.Once
	err  error

	// published by train, read-only afterwards
	trees     []*matchtree.Tree // sorted by language
	languages []string
	freqModel bayes.Model
	vocab     freq.Vocabulary
	stats     Stats
}

// New returns an untrained classifier over the corpus produced by loader.
func New(loader corpus.Loader, opts ...Option) *Classifier {
	c := &Classifier{
		loader:    loader,
		logger:    discardLogger(),
		mtOpts:    matchtree.DefaultOptions(),
		freqOpts:  freq.DefaultOptions(),
		bayesOpts: bayes.DefaultOptions(),
		model:     FreqGaussian,
		sink:      progress.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Train loads the corpus and builds every model. Only the first call does
// any work; later calls return the first call's error.
func (c *Classifier) Train(ctx context.Context) error {
	c.once.Do(func() {
		c.err = c.train(ctx)
		if c.err != nil {
			c.logger.Error("training failed", "err", c.err)
		}
	})
	return c.err
}

// Languages returns the trained languages in sorted order.
func (c *Classifier) Languages() ([]string, error) {
	if err := c.Train(context.Background()); err != nil {
		return nil, err
	}
	return append([]string(nil), c.languages...), nil
}

// languageResult is the per-language output of the parallel phase,
// indexed like the corpus languages.
type languageResult struct {
	tree    *matchtree.Tree
	samples []freq.Table
	tokens  int
}

func (c *Classifier) train(ctx context.Context) error {
	if c.loader == nil {
		return errors.New("classifier: no corpus loader")
	}
	if c.model != FreqGaussian && c.model != FreqDifference {
		return fmt.Errorf("%w: %q", ErrUnknownModel, c.model)
	}
	start := time.Now()

	c.emit("", progress.StageLoad, progress.StatusWorking, 0)
	endLoad := c.timer.Track("load")
	corp, err := c.loader.Load(ctx)
	if err == nil {
		err = corp.Validate()
	}
	if err != nil {
		endLoad("failed")
		c.fail("", progress.StageLoad, err)
		return fmt.Errorf("classifier: load corpus: %w", err)
	}
	endLoad(fmt.Sprintf("%d languages, %d documents", len(corp.Languages), corp.DocumentCount()))
	c.emit("", progress.StageLoad, progress.StatusDone, time.Since(start))
	for _, lang := range corp.Languages {
		c.emit(lang.Name, progress.StageLoad, progress.StatusDone, 0)
	}

	key := c.cacheKey(corp)
	if c.restore(key, corp) {
		c.logger.Info("models restored from cache", "languages", len(c.languages), "dir", c.cache.Dir())
		return nil
	}

	results, err := c.trainLanguages(ctx, corp)
	if err != nil {
		return err
	}

	endFreq := c.timer.Track("train.frequency")
	model, vocab, err := c.trainFrequency(corp, results)
	if err != nil {
		endFreq("failed")
		return err
	}
	endFreq(fmt.Sprintf("%s, %d features", c.model, len(vocab)))

	c.publish(corp, results, model, vocab)
	c.logger.Info("training finished",
		"languages", len(c.languages),
		"vocabulary", len(vocab),
		"model", c.model,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if c.cache != nil {
		if err := c.cache.Put(key, c.snapshot()); err != nil {
			// a failed write only costs the next run a retrain
			c.logger.Warn("model cache write failed", "err", err)
		}
	}
	return nil
}

func (c *Classifier) trainLanguages(ctx context.Context, corp *corpus.Corpus) ([]languageResult, error) {
	endTree := c.timer.Track("train.matchtree")
	workers := c.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]languageResult, len(corp.Languages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(corp.Languages))))
	for i, lang := range corp.Languages {
		c.emit(lang.Name, progress.StageTokenize, progress.StatusQueued, 0)
		g.Go(func() error {
			res, err := c.trainLanguage(gctx, lang)
			if err != nil {
				c.fail(lang.Name, progress.StageTokenize, err)
				return fmt.Errorf("classifier: train %s: %w", lang.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		endTree("failed")
		return nil, err
	}
	endTree(fmt.Sprintf("%d trees", len(results)))
	return results, nil
}

func (c *Classifier) trainLanguage(ctx context.Context, lang corpus.Language) (languageResult, error) {
	started := time.Now()
	c.emit(lang.Name, progress.StageTokenize, progress.StatusWorking, 0)
	seqs := make([][]token.Token, len(lang.Documents))
	tokens := 0
	for i, doc := range lang.Documents {
		if err := ctx.Err(); err != nil {
			return languageResult{}, err
		}
		seqs[i] = lexer.Tokenize(doc.Text)
		tokens += len(seqs[i])
	}

	c.emit(lang.Name, progress.StageMatchTree, progress.StatusWorking, time.Since(started))
	b := matchtree.NewBuilder(lang.Name, c.mtOpts)
	for _, seq := range seqs {
		if err := ctx.Err(); err != nil {
			return languageResult{}, err
		}
		b.Add(seq)
	}
	tree := b.Tree()

	c.emit(lang.Name, progress.StageFrequency, progress.StatusWorking, time.Since(started))
	samples := make([]freq.Table, len(seqs))
	for i, seq := range seqs {
		samples[i] = freq.Extract(seq, c.freqOpts)
	}

	c.emit(lang.Name, progress.StageFrequency, progress.StatusDone, time.Since(started))
	c.logger.Debug("language trained",
		"language", lang.Name,
		"documents", len(lang.Documents),
		"tokens", tokens,
		"nodes", tree.NodeCount(),
		"total", tree.TotalPossibleScore())
	return languageResult{tree: tree, samples: samples, tokens: tokens}, nil
}

func (c *Classifier) trainFrequency(corp *corpus.Corpus, results []languageResult) (bayes.Model, freq.Vocabulary, error) {
	var all []freq.Table
	for _, r := range results {
		all = append(all, r.samples...)
	}
	vocab := freq.NewVocabulary(all...)

	for _, lang := range corp.Languages {
		c.emit(lang.Name, progress.StageBayes, progress.StatusWorking, 0)
	}
	var (
		model bayes.Model
		err   error
	)
	switch c.model {
	case FreqDifference:
		aggregated := make(map[string]freq.Table, len(results))
		for i, r := range results {
			aggregated[corp.Languages[i].Name] = meanTable(r.samples)
		}
		model, err = bayes.TrainDifference(vocab, aggregated)
	default:
		samples := make(map[string][]freq.Table, len(results))
		for i, r := range results {
			samples[corp.Languages[i].Name] = r.samples
		}
		model, err = bayes.TrainGaussian(vocab, samples, c.bayesOpts)
	}
	if err != nil {
		err = fmt.Errorf("classifier: train %s model: %w", c.model, err)
		for _, lang := range corp.Languages {
			c.fail(lang.Name, progress.StageBayes, err)
		}
		return nil, nil, err
	}
	for _, lang := range corp.Languages {
		c.emit(lang.Name, progress.StageBayes, progress.StatusDone, 0)
	}
	return model, vocab, nil
}

// meanTable averages per-file tables; a value missing from a file counts
// as 0 there.
func meanTable(samples []freq.Table) freq.Table {
	out := make(freq.Table)
	if len(samples) == 0 {
		return out
	}
	for _, s := range samples {
		for k, v := range s {
			out[k] += v
		}
	}
	n := float64(len(samples))
	for k := range out {
		out[k] /= n
	}
	return out
}

func (c *Classifier) publish(corp *corpus.Corpus, results []languageResult, model bayes.Model, vocab freq.Vocabulary) {
	c.trees = make([]*matchtree.Tree, len(results))
	c.languages = make([]string, len(results))
	c.stats = Stats{
		Model:      c.model,
		Vocabulary: len(vocab),
		Languages:  make([]LanguageStats, len(results)),
	}
	for i, r := range results {
		lang := corp.Languages[i]
		c.trees[i] = r.tree
		c.languages[i] = lang.Name
		c.stats.Languages[i] = LanguageStats{
			Language:           lang.Name,
			Documents:          len(lang.Documents),
			Tokens:             r.tokens,
			Nodes:              r.tree.NodeCount(),
			TotalPossibleScore: r.tree.TotalPossibleScore(),
		}
	}
	c.freqModel = model
	c.vocab = vocab
}

func (c *Classifier) emit(lang string, stage progress.Stage, status progress.Status, elapsed time.Duration) {
	c.sink.OnEvent(progress.Event{Language: lang, Stage: stage, Status: status, Elapsed: elapsed})
}

func (c *Classifier) fail(lang string, stage progress.Stage, err error) {
	c.sink.OnEvent(progress.Event{Language: lang, Stage: stage, Status: progress.StatusError, Err: err})
}
