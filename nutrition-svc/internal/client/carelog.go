package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"carehome/consumption"
)

// MaxPages bounds how far ListCareLogs follows pagination.
const MaxPages = 50

type CareLogClient struct {
	*Client
	PageSize int
}

func NewCareLogClient(baseURL string, httpClient HTTPClient, pageSize int) *CareLogClient {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &CareLogClient{Client: New(baseURL, httpClient), PageSize: pageSize}
}

type careLogPage struct {
	Data    []consumption.CareLog `json:"data"`
	Page    int                   `json:"page"`
	Total   int                   `json:"total"`
	HasMore bool                  `json:"has_more"`
}

// ListCareLogs returns every log of residentID starting in [from, to),
// following pages until the backend reports no more.
func (c *CareLogClient) ListCareLogs(ctx context.Context, residentID int, from, to time.Time) ([]consumption.CareLog, error) {
	query := url.Values{}
	query.Set("resident_id", strconv.Itoa(residentID))
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(c.PageSize))

	logs := []consumption.CareLog{}
	for page := 1; page <= MaxPages; page++ {
		query.Set("page", strconv.Itoa(page))

		var resp careLogPage
		if err := c.getJSON(ctx, "/api/care-logs", query, &resp); err != nil {
			return nil, err
		}
		logs = append(logs, resp.Data...)
		if !resp.HasMore || len(resp.Data) == 0 {
			return logs, nil
		}
	}
	return nil, fmt.Errorf("care logs for resident %d exceed %d pages", residentID, MaxPages)
}
