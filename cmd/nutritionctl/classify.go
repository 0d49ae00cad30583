package main

import (
	"fmt"
	"strings"

	"carehome/consumption"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newClassifyCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Classify a care-log text without calling any service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logStatus := consumption.LogStatus(status)
			if status != "" && !logStatus.Valid() {
				return fmt.Errorf("invalid status %q: want pending, in_progress or completed", status)
			}
			text := strings.Join(args, " ")
			info := consumption.ClassifyText(text, logStatus)
			a.logger.Debug("Classified", zap.String("text", text), zap.String("label", info.Label))
			fmt.Fprintln(cmd.OutOrStdout(), renderConsumption(info))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "care-log status used when the text says nothing")
	return cmd
}
