// Package llm exposes the language model as a narrow Completer capability.
//
// The provider itself is built by dago-adapters and reached through the
// dago-libs LLMClient port. Callers only ever see Complete(prompt) -> text;
// every failure comes back as an apperrors.KindCollaborator error.
//
//	client := llm.NewClient(port, llm.Options{Model: "gpt-4-0125-preview"}, logger)
//	reply, err := client.Complete(ctx, "Hola")
//
// Tests substitute a CompleterFunc.
package llm
