package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"carehome/httpmw"
	"carehome/nutrition-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Nutrition service.NutritionServiceInterface
	Logger    *zap.Logger
}

func NewHandler(svc service.NutritionServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Nutrition: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpmw.Health("nutrition-svc")).Methods("GET")
	r.HandleFunc("/api/residents/{residentId}/nutrition/weekly", h.getWeeklySummary).Methods("GET")
	r.HandleFunc("/api/nutrition/activity", h.getActivity).Methods("GET")
	r.HandleFunc("/api/nutrition/classify", h.classify).Methods("GET")
}

func (h *Handler) getWeeklySummary(w http.ResponseWriter, r *http.Request) {
	residentID, err := strconv.Atoi(mux.Vars(r)["residentId"])
	if err != nil {
		http.Error(w, service.ErrInvalidResident.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.Nutrition.WeeklySummary(r.Context(), residentID, r.URL.Query().Get("week_start"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	report, err := h.Nutrition.Activity(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	info, err := h.Nutrition.Classify(query.Get("text"), query.Get("status"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidResident),
		errors.Is(err, service.ErrInvalidWeekStart),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Error("nutrition request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
