package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"carehome/carelog-svc/internal/domain"
	"carehome/carelog-svc/internal/service"
	"carehome/consumption"
	"carehome/httpmw"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	CareLogs service.CareLogServiceInterface
	Location *time.Location
	Logger   *zap.Logger
}

func NewHandler(careLogs service.CareLogServiceInterface, loc *time.Location, logger *zap.Logger) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{CareLogs: careLogs, Location: loc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpmw.Health("carelog-svc")).Methods("GET")
	r.HandleFunc("/api/care-logs", h.createCareLog).Methods("POST")
	r.HandleFunc("/api/care-logs", h.listCareLogs).Methods("GET")
	r.HandleFunc("/api/care-logs/bulk", h.createBulkCareLogs).Methods("POST")
	r.HandleFunc("/api/care-logs/{id:[0-9]+}", h.getCareLog).Methods("GET")
	r.HandleFunc("/api/care-logs/{id:[0-9]+}/status", h.updateStatus).Methods("PATCH")
}

// careLogRequest carries timestamps as text so staff tools may send either
// RFC 3339 or a local "YYYY-MM-DD HH:MM".
type careLogRequest struct {
	ResidentID   int    `json:"resident_id"`
	StaffID      int    `json:"staff_id"`
	Title        string `json:"title"`
	ActivityType string `json:"activity_type"`
	MealType     string `json:"meal_type"`
	Quantity     string `json:"quantity"`
	Notes        string `json:"notes"`
	FoodItems    string `json:"food_items"`
	Status       string `json:"status"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

func (h *Handler) toCareLog(req careLogRequest) (*domain.CareLog, error) {
	log := &domain.CareLog{
		ResidentID:   req.ResidentID,
		StaffID:      req.StaffID,
		Title:        req.Title,
		ActivityType: req.ActivityType,
		MealType:     req.MealType,
		Quantity:     req.Quantity,
		Notes:        req.Notes,
		FoodItems:    req.FoodItems,
		Status:       req.Status,
	}
	if req.StartTime != "" {
		start, ok := consumption.ParseTimestamp(req.StartTime, h.Location)
		if !ok {
			return nil, errors.New("start_time is not a valid timestamp")
		}
		log.StartTime = start
	}
	if req.EndTime != "" {
		end, ok := consumption.ParseTimestamp(req.EndTime, h.Location)
		if !ok {
			return nil, errors.New("end_time is not a valid timestamp")
		}
		log.EndTime = &end
	}
	return log, nil
}

func (h *Handler) createCareLog(w http.ResponseWriter, r *http.Request) {
	var req careLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log, err := h.toCareLog(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.CareLogs.Record(r.Context(), log); err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusCreated, log)
}

func (h *Handler) listCareLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ListFilter{}

	var err error
	if filter.ResidentID, err = strconv.Atoi(query.Get("resident_id")); err != nil {
		http.Error(w, "resident_id must be an integer", http.StatusBadRequest)
		return
	}
	for name, dst := range map[string]*time.Time{"from": &filter.From, "to": &filter.To} {
		if raw := query.Get(name); raw != "" {
			ts, ok := consumption.ParseTimestamp(raw, h.Location)
			if !ok {
				http.Error(w, name+" is not a valid timestamp", http.StatusBadRequest)
				return
			}
			*dst = ts
		}
	}
	for name, dst := range map[string]*int{"page": &filter.Page, "limit": &filter.Limit} {
		if raw := query.Get(name); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				http.Error(w, name+" must be a positive integer", http.StatusBadRequest)
				return
			}
			*dst = n
		}
	}

	page, err := h.CareLogs.List(filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) getCareLog(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	log, err := h.CareLogs.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	log, err := h.CareLogs.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, log)
}

// createBulkCareLogs records one meal service for many residents at once.
func (h *Handler) createBulkCareLogs(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		StaffID   int    `json:"staff_id"`
		Title     string `json:"title"`
		MealType  string `json:"meal_type"`
		StartTime string `json:"start_time"`
		Status    string `json:"status"`
		Entries   []struct {
			ResidentID int    `json:"resident_id"`
			Quantity   string `json:"quantity"`
			Notes      string `json:"notes"`
			FoodItems  string `json:"food_items"`
			Status     string `json:"status"`
		} `json:"entries"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if payload.StartTime == "" || len(payload.Entries) == 0 {
		http.Error(w, "Missing start_time or entries", http.StatusBadRequest)
		return
	}

	type entryResult struct {
		ResidentID int    `json:"resident_id"`
		CareLogID  int    `json:"care_log_id,omitempty"`
		Status     string `json:"status"`
		Message    string `json:"message,omitempty"`
	}

	results := make([]entryResult, 0, len(payload.Entries))
	successCount := 0

	for _, entry := range payload.Entries {
		status := entry.Status
		if status == "" {
			status = payload.Status
		}
		log, err := h.toCareLog(careLogRequest{
			ResidentID: entry.ResidentID,
			StaffID:    payload.StaffID,
			Title:      payload.Title,
			MealType:   payload.MealType,
			Quantity:   entry.Quantity,
			Notes:      entry.Notes,
			FoodItems:  entry.FoodItems,
			Status:     status,
			StartTime:  payload.StartTime,
		})
		if err == nil {
			err = h.CareLogs.Record(r.Context(), log)
		}
		if err != nil {
			results = append(results, entryResult{
				ResidentID: entry.ResidentID,
				Status:     "error",
				Message:    err.Error(),
			})
			continue
		}

		successCount++
		results = append(results, entryResult{
			ResidentID: entry.ResidentID,
			CareLogID:  log.ID,
			Status:     "ok",
		})
	}

	code := http.StatusCreated
	if successCount == 0 {
		code = http.StatusBadRequest
	}
	httpmw.WriteJSON(w, code, map[string]interface{}{
		"processed": results,
		"created":   successCount,
		"failed":    len(results) - successCount,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCareLog),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidFilter):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDuplicateCareLog):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.Logger.Error("care log request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
