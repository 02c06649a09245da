package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(root *rootOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Process a single query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" && len(args) == 1 {
				query = args[0]
			}
			if query == "" {
				return fmt.Errorf("a query is required")
			}
			return runAsk(cmd, root.verbose, query)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "query text")
	return cmd
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process one query per line from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, root.verbose, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "b", "", "file with one query per line")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runAsk(cmd *cobra.Command, verbose bool, query string) error {
	a, err := newApp(verbose)
	if err != nil {
		return err
	}
	defer a.close()

	result := a.dispatcher.ProcessQuery(cmd.Context(), query)
	printResult(cmd.OutOrStdout(), query, result, verbose)
	return nil
}

func runBatch(cmd *cobra.Command, verbose bool, path string) error {
	queries, err := readQueries(path)
	if err != nil {
		return err
	}

	a, err := newApp(verbose)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	for i, query := range queries {
		fmt.Fprintf(out, "\n[%d/%d]\n", i+1, len(queries))
		result := a.dispatcher.ProcessQuery(cmd.Context(), query)
		printResult(out, query, result, verbose)
	}

	printStats(out, a.dispatcher.Stats())
	return nil
}

// readQueries returns the non-empty lines of path
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch file not found: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			queries = append(queries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return queries, nil
}
