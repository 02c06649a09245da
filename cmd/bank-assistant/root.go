package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	query   string
	file    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bank-assistant",
		Short:         "Customer support assistant for BANCO HENRY",
		Long:          "Answers balance, knowledge-base and general questions from bank customers.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case opts.query != "":
				return runAsk(cmd, opts.verbose, opts.query)
			case opts.file != "":
				return runBatch(cmd, opts.verbose, opts.file)
			default:
				return runChat(cmd, opts.verbose)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "process a single query and exit")
	cmd.Flags().StringVarP(&opts.file, "file", "b", "", "process one query per line from a file")
	cmd.MarkFlagsMutuallyExclusive("query", "file")

	cmd.AddCommand(
		newAskCmd(opts),
		newBatchCmd(opts),
		newChatCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}
