// Package cel provides a CEL (Common Expression Language) evaluator for rule classification.
//
// CEL is a non-Turing complete expression language that provides fast, safe evaluation
// of conditions. Each condition is evaluated against the lower-cased customer query,
// bound to the variable query.
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	matched, err := evaluator.Match(ctx, `query.matches(r'estado.*cuenta')`, "estado de cuenta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// matched == true
//
// Useful operations:
//   - String operations: contains, startsWith, endsWith, matches (RE2, unanchored)
//   - Boolean logic: &&, ||, !
//   - size(query)
package cel
