package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOpts struct {
	url   string
	token string
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}
	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect and review a shift board server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.url, "url", envOr("BOARD_URL", "http://localhost:3000"), "server base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("BOARD_TOKEN"), "admin bearer token")

	root.AddCommand(
		newHealthCmd(opts),
		newSlotsCmd(opts),
		newRequestsCmd(opts),
		newReviewCmd(opts, "approve"),
		newReviewCmd(opts, "reject"),
		newCoverageCmd(opts),
		newPublishCmd(opts),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
