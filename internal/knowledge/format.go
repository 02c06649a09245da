package knowledge

import (
	"fmt"
	"path"
	"strings"
)

// NoResultsMessage is shown when retrieval returns nothing
const NoResultsMessage = "No se encontró información relevante en la base de conocimientos."

// FormatKnowledgeResponse renders retrieved documents for display without
// generating an answer
func FormatKnowledgeResponse(docs []Document, query string) string {
	if len(docs) == 0 {
		return NoResultsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Información encontrada sobre: %s\n\n", query)

	for i, d := range docs {
		source := d.Source
		if source == "" {
			source = UnknownSource
		}
		fmt.Fprintf(&b, "Fuente %d: %s\n", i+1, path.Base(source))
		b.WriteString(strings.TrimSpace(d.Content))
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("─", 50))
		b.WriteString("\n\n")
	}

	return b.String()
}
