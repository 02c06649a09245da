package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"github.com/aescanero/dago-bank-assistant/internal/eval/template"
	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"github.com/aescanero/dago-bank-assistant/internal/prompts"
	"go.uber.org/zap"
)

// QA answers questions by stuffing retrieved chunks into the knowledge prompt
type QA struct {
	retriever      Retriever
	completer      llm.Completer
	templateEngine *template.Engine
	k              int
	logger         *zap.Logger
}

// NewQA creates a QA over retriever. A nil completer makes every
// RetrieveAndGenerate call fail with llm.ErrNotConfigured.
func NewQA(retriever Retriever, completer llm.Completer, k int, logger *zap.Logger) *QA {
	if k <= 0 {
		k = 3
	}
	return &QA{
		retriever:      retriever,
		completer:      completer,
		templateEngine: template.NewEngine(),
		k:              k,
		logger:         logger,
	}
}

// Retrieve delegates to the underlying retriever
func (q *QA) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	return q.retriever.Retrieve(ctx, query, k)
}

// RetrieveAndGenerate retrieves the top chunks for query and asks the language
// model for an answer grounded in them
func (q *QA) RetrieveAndGenerate(ctx context.Context, query string) (*Answer, error) {
	docs, err := q.retriever.Retrieve(ctx, query, q.k)
	if err != nil {
		if apperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, apperrors.Collaborator("knowledge.RetrieveAndGenerate", err)
	}

	if q.completer == nil {
		return nil, apperrors.Collaborator("knowledge.RetrieveAndGenerate", llm.ErrNotConfigured)
	}

	chunks := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		chunks = append(chunks, map[string]interface{}{
			"content": d.Content,
			"source":  d.Source,
		})
	}

	prompt, err := q.templateEngine.Render(prompts.KnowledgeAnswer, map[string]interface{}{
		"question":  query,
		"documents": chunks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render knowledge prompt: %w", err)
	}

	text, err := q.completer.Complete(ctx, prompt)
	if err != nil {
		q.logger.Error("knowledge answer generation failed", zap.Error(err))
		if apperrors.KindOf(err) != "" {
			return nil, err
		}
		return nil, apperrors.Collaborator("knowledge.RetrieveAndGenerate", err)
	}

	q.logger.Info("knowledge answer generated",
		zap.Int("sources", len(docs)),
		zap.Int("answer_len", len(text)),
	)

	return &Answer{
		Text:    strings.TrimSpace(text),
		Sources: docs,
	}, nil
}
