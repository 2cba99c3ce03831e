package cli

import (
	"context"

	"github.com/spf13/cobra"

	"alfredoptarigan/ai-interviewer/internal/config"
)

type configKeyType struct{}

var configKey = configKeyType{}

var rootCmd = &cobra.Command{
	Use:   "ai-interviewer",
	Short: "AI interview question and report service",
	Long: `ai-interviewer serves AI-generated interview questions for a job role,
domain and round, and evaluates a candidate's answers into a stored report.`,
	SilenceUsage: true,
}

func Execute(ctx context.Context, cfg *config.Config) error {
	ctx = context.WithValue(ctx, configKey, cfg)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context")
}

func init() {
	// bare invocation starts the server
	rootCmd.RunE = runServe
	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
