package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

func newChatCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, root.verbose)
		},
	}
}

func runChat(cmd *cobra.Command, verbose bool) error {
	a, err := newApp(verbose)
	if err != nil {
		return err
	}
	defer a.close()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Asistente bancario de BANCO HENRY. Escribe /help para ver los comandos.")

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				printStats(out, a.dispatcher.Stats())
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if !handleSlashCommand(out, a, input) {
				printStats(out, a.dispatcher.Stats())
				return nil
			}
			continue
		}

		result := a.dispatcher.ProcessQuery(cmd.Context(), input)
		printResult(out, input, result, verbose)
	}
}

// handleSlashCommand runs a REPL command and reports whether the session continues
func handleSlashCommand(w io.Writer, a *app, input string) bool {
	switch strings.ToLower(strings.Fields(input)[0]) {
	case "/help":
		fmt.Fprintln(w, helpText)
	case "/stats":
		printStats(w, a.dispatcher.Stats())
	case "/clear":
		a.dispatcher.Clear()
		fmt.Fprintln(w, "Historial y estadísticas reiniciados.")
	case "/exit", "/quit":
		fmt.Fprintln(w, "¡Hasta luego!")
		return false
	default:
		fmt.Fprintf(w, "Comando desconocido: %s. Escribe /help para ver los comandos.\n", input)
	}
	return true
}
