package knowledge

import "context"

// UnknownSource labels documents that carry no source
const UnknownSource = "Unknown"

// Document is one retrievable chunk of the corpus
type Document struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// Answer is a generated reply plus the documents it was grounded on
type Answer struct {
	Text    string     `json:"result"`
	Sources []Document `json:"source_documents"`
}

// Retriever returns up to k documents ordered by relevance to query
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Document, error)
}

// Index is the knowledge collaborator consumed by the dispatcher
type Index interface {
	Retriever
	RetrieveAndGenerate(ctx context.Context, query string) (*Answer, error)
}
