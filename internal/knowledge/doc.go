// Package knowledge provides the bank knowledge-base collaborator: a local corpus
// index ranked by term-frequency cosine similarity, and a question-answering
// step that grounds a language-model answer in the retrieved chunks.
package knowledge
