// Package template provides a Handlebars template engine for rendering LLM prompts.
//
// Prompts interpolate raw customer text, so templates should use the
// triple-stash form ({{{query}}}) to skip HTML escaping.
//
// Example usage:
//
//	engine := template.NewEngine()
//
//	data := map[string]interface{}{
//	    "query": "¿Cómo abrir una cuenta?",
//	    "documents": []map[string]string{{"content": "Requisitos..."}},
//	}
//
//	tmpl := "Pregunta: {{{query}}}\n{{#each documents}}[{{inc @index}}] {{{trim content}}}\n{{/each}}"
//	result, err := engine.Render(tmpl, data)
//
// Built-in helpers:
//   - trim - Trim whitespace from string
//   - default - Return default value if first arg is empty
//   - inc - Add one to an integer (for @index numbering)
package template
