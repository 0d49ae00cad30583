// Command nutritionctl is the operator CLI for the meal-consumption services.
package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"carehome/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	gateway string
	verbose bool
	timeout time.Duration
	logger  *zap.Logger
	http    *http.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := config.Default("nutritionctl")
	cfg.ApplyEnv()

	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:          "nutritionctl",
		Short:        "Inspect resident meal consumption",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.verbose {
				logger, err := config.NewLogger("nutritionctl", true)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			a.http = &http.Client{Timeout: a.timeout}
			return nil
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.gateway, "gateway", cfg.PublicURL, "API gateway base URL")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", cfg.Verbose, "log requests to stderr")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", cfg.Timeout, "HTTP timeout")

	root.AddCommand(newWeeklyCmd(a), newClassifyCmd(a))
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
