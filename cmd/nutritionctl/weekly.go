package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"carehome/consumption"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// weeklySummary is the subset of nutrition-svc's weekly summary the CLI shows.
type weeklySummary struct {
	ResidentID int                           `json:"resident_id"`
	WeekStart  string                        `json:"week_start"`
	Timezone   string                        `json:"timezone"`
	Progress   consumption.WeeklyProgress    `json:"progress"`
	Meals      []consumption.MenuConsumption `json:"meals"`
	Warnings   []string                      `json:"warnings"`
}

func newWeeklyCmd(a *app) *cobra.Command {
	var (
		resident int
		week     string
	)
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Show how much of a week's menu a resident ate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resident <= 0 {
				return fmt.Errorf("--resident must be a positive id, got %d", resident)
			}
			summary, err := a.fetchWeekly(cmd.Context(), resident, week)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderWeekly(summary))
			return nil
		},
	}
	cmd.Flags().IntVar(&resident, "resident", 0, "resident id")
	cmd.Flags().StringVar(&week, "week", "", "any date in the week, YYYY-MM-DD (default current week)")
	_ = cmd.MarkFlagRequired("resident")
	return cmd
}

func (a *app) fetchWeekly(ctx context.Context, residentID int, week string) (*weeklySummary, error) {
	target := fmt.Sprintf("%s/api/residents/%d/nutrition/weekly", strings.TrimRight(a.gateway, "/"), residentID)
	if week != "" {
		target += "?" + url.Values{"week_start": {week}}.Encode()
	}
	a.logger.Debug("Fetching weekly summary", zap.String("url", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weekly summary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read weekly summary: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway answered %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var summary weeklySummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("decode weekly summary: %w", err)
	}
	return &summary, nil
}
