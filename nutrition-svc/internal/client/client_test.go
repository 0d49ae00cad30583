package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyMenu(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/menus/2026-10-12", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"week_start":"2026-10-12","items":[
			{"id":1,"day_of_week":0,"meal_slot":"Lunch","servings":1,"dish":{"id":3,"name":"Phở"}},
			{"id":2,"day_of_week":"Tuesday","meal_slot":"Dinner","servings":2,"dish":{"id":4,"name":"Cá kho"}}]}`)
	}))
	defer server.Close()

	items, err := NewMenuClient(server.URL+"/", nil).WeeklyMenu(context.Background(), "2026-10-12")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Phở", items[0].Dish.Name)
	offset, ok := items[1].DayOfWeek.Offset()
	assert.True(t, ok)
	assert.Equal(t, 1, offset)
}

func TestNutritionReportUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/menus/2026-10-12/nutrition-report", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":{"week_start":"2026-10-12","week":{"calories":2940,"servings":7}}}`)
	}))
	defer server.Close()

	report, err := NewMenuClient(server.URL, nil).NutritionReport(context.Background(), "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", report.WeekStart)
	assert.Equal(t, 2940.0, report.Week.Calories)
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Data  string `json:"data"`
		Other string `json:"other"`
	}

	tests := []struct {
		name string
		body string
		want payload
	}{
		{
			name: "bare object",
			body: `{"data":"x","other":"y"}`,
			want: payload{Data: "x", Other: "y"},
		},
		{
			name: "envelope",
			body: `{"success":true,"data":{"other":"inner"}}`,
			want: payload{Other: "inner"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var got payload
			require.NoError(t, decodeBody([]byte(testCase.body), &got))
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "week_start must be a YYYY-MM-DD date", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewMenuClient(server.URL, nil).WeeklyMenu(context.Background(), "nope")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Equal(t, "week_start must be a YYYY-MM-DD date", statusErr.Message)
}

func TestListCareLogsFollowsPages(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)
	from := time.Date(2026, 10, 12, 0, 0, 0, 0, hcm)
	var pages []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/api/care-logs", r.URL.Path)
		assert.Equal(t, "7", query.Get("resident_id"))
		assert.Equal(t, "2026-10-12T00:00:00+07:00", query.Get("from"))
		assert.Equal(t, "2026-10-19T00:00:00+07:00", query.Get("to"))
		assert.Equal(t, "2", query.Get("limit"))

		page := query.Get("page")
		pages = append(pages, page)
		switch page {
		case "1":
			fmt.Fprint(w, `{"data":[{"id":1,"start_time":"2026-10-12T11:30:00+07:00"},{"id":2}],"page":1,"total":3,"has_more":true}`)
		default:
			fmt.Fprint(w, `{"data":[{"id":3,"status":"completed"}],"page":2,"total":3,"has_more":false}`)
		}
	}))
	defer server.Close()

	logs, err := NewCareLogClient(server.URL, nil, 2).ListCareLogs(context.Background(), 7, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)
	require.Len(t, logs, 3)
	assert.Equal(t, "2026-10-12T11:30:00+07:00", logs[0].StartTime)
	assert.Equal(t, 3, logs[2].ID)
}

func TestListCareLogsPageLimit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"data":[{"id":%s}],"has_more":true}`, strconv.Itoa(calls))
	}))
	defer server.Close()

	_, err := NewCareLogClient(server.URL, nil, 0).ListCareLogs(context.Background(), 7, time.Now(), time.Now())
	assert.Error(t, err)
	assert.Equal(t, MaxPages, calls)
}

func TestListCareLogsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"data":[],"has_more":false}`)
	}))
	defer server.Close()

	logs, err := NewCareLogClient(server.URL, nil, 0).ListCareLogs(context.Background(), 7, time.Now(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestRequestCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMenuClient(server.URL, nil).WeeklyMenu(ctx, "2026-10-12")
	assert.ErrorIs(t, err, context.Canceled)
}
