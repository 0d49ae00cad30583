package client

import (
	"context"
	"net/url"

	"carehome/consumption"
	"carehome/nutrition-svc/internal/domain"
)

type MenuClient struct {
	*Client
}

func NewMenuClient(baseURL string, httpClient HTTPClient) *MenuClient {
	return &MenuClient{Client: New(baseURL, httpClient)}
}

func (c *MenuClient) WeeklyMenu(ctx context.Context, weekStart string) ([]consumption.WeeklyMenuItem, error) {
	var menu struct {
		WeekStart string                       `json:"week_start"`
		Items     []consumption.WeeklyMenuItem `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/menus/"+url.PathEscape(weekStart), nil, &menu); err != nil {
		return nil, err
	}
	return menu.Items, nil
}

func (c *MenuClient) NutritionReport(ctx context.Context, weekStart string) (*domain.NutritionReport, error) {
	var report domain.NutritionReport
	if err := c.getJSON(ctx, "/api/menus/"+url.PathEscape(weekStart)+"/nutrition-report", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
