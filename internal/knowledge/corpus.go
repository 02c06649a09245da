package knowledge

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"go.uber.org/zap"
)

// vector is a term-frequency vector with its precomputed norm
type vector struct {
	terms map[string]float64
	norm  float64
}

func newVector(text string) vector {
	v := vector{terms: map[string]float64{}}
	for _, t := range tokenize(text) {
		v.terms[t]++
	}
	for _, f := range v.terms {
		v.norm += f * f
	}
	v.norm = math.Sqrt(v.norm)
	return v
}

func (v vector) cosine(o vector) float64 {
	if v.norm == 0 || o.norm == 0 {
		return 0
	}
	small, large := v, o
	if len(small.terms) > len(large.terms) {
		small, large = large, small
	}
	var dot float64
	for t, f := range small.terms {
		dot += f * large.terms[t]
	}
	return dot / (v.norm * o.norm)
}

// Corpus is an in-memory index over document chunks. It is read-only after
// construction and safe for concurrent use.
type Corpus struct {
	docs    []Document
	vectors []vector
	k       int
	logger  *zap.Logger
}

// NewCorpus indexes docs. k is the default result count when Retrieve gets k <= 0.
func NewCorpus(docs []Document, k int, logger *zap.Logger) (*Corpus, error) {
	if len(docs) == 0 {
		return nil, apperrors.Startup("knowledge.NewCorpus", fmt.Errorf("no documents to index"))
	}
	if k <= 0 {
		k = 3
	}

	c := &Corpus{
		docs:    make([]Document, 0, len(docs)),
		vectors: make([]vector, 0, len(docs)),
		k:       k,
		logger:  logger,
	}
	for _, d := range docs {
		if d.Source == "" {
			d.Source = UnknownSource
		}
		c.docs = append(c.docs, d)
		c.vectors = append(c.vectors, newVector(d.Content))
	}

	return c, nil
}

// LoadCorpus reads every .txt and .md file under dir and indexes its paragraphs.
// A missing directory or an empty corpus is a startup failure.
func LoadCorpus(dir string, k int, logger *zap.Logger) (*Corpus, error) {
	var docs []Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		source, err := filepath.Rel(dir, path)
		if err != nil {
			source = path
		}
		for _, chunk := range splitParagraphs(string(data)) {
			docs = append(docs, Document{Content: chunk, Source: filepath.ToSlash(source)})
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to load knowledge base", zap.String("dir", dir), zap.Error(err))
		return nil, apperrors.Startup("knowledge.LoadCorpus", err)
	}

	if len(docs) == 0 {
		logger.Error("knowledge base is empty", zap.String("dir", dir))
		return nil, apperrors.Startup("knowledge.LoadCorpus", fmt.Errorf("no documents found in %s", dir))
	}

	logger.Info("knowledge base loaded", zap.String("dir", dir), zap.Int("chunks", len(docs)))
	return NewCorpus(docs, k, logger)
}

// splitParagraphs breaks text on blank lines and drops empty chunks
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var chunks []string
	var current []string
	flush := func() {
		if chunk := strings.TrimSpace(strings.Join(current, "\n")); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return chunks
}

// Retrieve returns up to k chunks with a positive similarity to query, best first.
// Ties keep corpus order.
func (c *Corpus) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Collaborator("knowledge.Retrieve", err)
	}
	if k <= 0 {
		k = c.k
	}

	q := newVector(query)

	type scored struct {
		idx   int
		score float64
	}
	var hits []scored
	for i, v := range c.vectors {
		if s := q.cosine(v); s > 0 {
			hits = append(hits, scored{idx: i, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > k {
		hits = hits[:k]
	}

	results := make([]Document, 0, len(hits))
	for _, h := range hits {
		results = append(results, c.docs[h.idx])
	}

	c.logger.Debug("knowledge retrieval",
		zap.String("query", query),
		zap.Int("k", k),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// Len returns the number of indexed chunks
func (c *Corpus) Len() int {
	return len(c.docs)
}
