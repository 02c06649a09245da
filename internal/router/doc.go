// Package router classifies customer queries for the dispatcher.
//
// Classification runs in two tiers:
//   - Fast: an ordered table of CEL conditions over the lower-cased query,
//     first match wins
//   - Slow: a language model prompted to answer one of "balance",
//     "knowledge" or "general"
//
// Any failure of the slow tier (no client, network, quota, odd reply)
// resolves to General, so ClassifyQuery never fails.
//
// Example:
//
//	r, err := router.NewRouter(completer, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch r.ClassifyQuery(ctx, "Balance V-12345678") {
//	case router.Balance:
//	    cedula, _ := r.ExtractCedula("Balance V-12345678") // "V-12345678"
//	}
//
// The rule order matters and is kept as a list: the standalone cédula rule
// is evaluated after the knowledge rules.
package router
