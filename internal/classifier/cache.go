package classifier

import (
	"fmt"

	"codeclass/internal/bayes"
	"codeclass/internal/corpus"
	"codeclass/internal/freq"
	"codeclass/internal/matchtree"
	"codeclass/internal/modelcache"
)

func (c *Classifier) cacheKey(corp *corpus.Corpus) corpus.Digest {
	if c.cache == nil {
		return corpus.Digest{}
	}
	return corp.Digest()
}

// restore publishes the cached models for key. Anything unusable is a miss.
func (c *Classifier) restore(key corpus.Digest, corp *corpus.Corpus) bool {
	if c.cache == nil {
		return false
	}
	var s modelcache.Snapshot
	ok, err := c.cache.Get(key, &s)
	if err != nil {
		c.logger.Warn("model cache read failed", "err", err)
		return false
	}
	if !ok {
		c.logger.Debug("model cache miss")
		return false
	}
	if s.MatchTree != c.mtOpts || s.Frequency != c.freqOpts || s.Bayes != c.bayesOpts || s.Model != string(c.model) {
		c.logger.Debug("model cache stale", "reason", "options changed")
		return false
	}
	results, model, vocab, err := c.fromSnapshot(&s, corp)
	if err != nil {
		c.logger.Warn("model cache entry unusable", "err", err)
		return false
	}
	c.publish(corp, results, model, vocab)
	c.stats.FromCache = true
	c.logger.Debug("model cache hit", "languages", len(results))
	return true
}

func (c *Classifier) fromSnapshot(s *modelcache.Snapshot, corp *corpus.Corpus) ([]languageResult, bayes.Model, freq.Vocabulary, error) {
	if len(s.Trees) != len(corp.Languages) {
		return nil, nil, nil, fmt.Errorf("%d trees for %d languages", len(s.Trees), len(corp.Languages))
	}
	results := make([]languageResult, len(s.Trees))
	for i, ts := range s.Trees {
		if ts.Language != corp.Languages[i].Name {
			return nil, nil, nil, fmt.Errorf("tree %d is %q, want %q", i, ts.Language, corp.Languages[i].Name)
		}
		tree, err := matchtree.FromSnapshot(ts)
		if err != nil {
			return nil, nil, nil, err
		}
		results[i] = languageResult{tree: tree, tokens: s.Tokens[ts.Language]}
	}

	switch FrequencyModel(s.Model) {
	case FreqGaussian:
		if s.Gaussian == nil {
			return nil, nil, nil, fmt.Errorf("missing gaussian model")
		}
		g, err := bayes.GaussianFromSnapshot(*s.Gaussian)
		if err != nil {
			return nil, nil, nil, err
		}
		return results, g, g.Vocabulary(), nil
	case FreqDifference:
		if s.Difference == nil {
			return nil, nil, nil, fmt.Errorf("missing difference model")
		}
		d, err := bayes.DifferenceFromSnapshot(*s.Difference)
		if err != nil {
			return nil, nil, nil, err
		}
		return results, d, d.Vocabulary(), nil
	}
	return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownModel, s.Model)
}

func (c *Classifier) snapshot() *modelcache.Snapshot {
	s := &modelcache.Snapshot{
		MatchTree: c.mtOpts,
		Frequency: c.freqOpts,
		Bayes:     c.bayesOpts,
		Model:     string(c.model),
		Trees:     make([]matchtree.TreeSnapshot, len(c.trees)),
		Tokens:    make(map[string]int, len(c.trees)),
	}
	for i, t := range c.trees {
		s.Trees[i] = t.Snapshot()
		s.Tokens[t.Language()] = c.stats.Languages[i].Tokens
	}
	switch m := c.freqModel.(type) {
	case *bayes.Gaussian:
		gs := m.Snapshot()
		s.Gaussian = &gs
	case *bayes.Difference:
		ds := m.Snapshot()
		s.Difference = &ds
	}
	return s
}
