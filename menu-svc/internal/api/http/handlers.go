package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"carehome/httpmw"
	"carehome/menu-svc/internal/domain"
	"carehome/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Dishes    service.DishServiceInterface
	Menus     service.MenuServiceInterface
	UploadDir string
	Logger    *zap.Logger
}

func NewHandler(dishSvc service.DishServiceInterface, menuSvc service.MenuServiceInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Dishes:    dishSvc,
		Menus:     menuSvc,
		UploadDir: "./uploads",
		Logger:    logger,
	}
}

const weekPattern = "{weekStart:[0-9]{4}-[0-9]{2}-[0-9]{2}}"

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpmw.Health("menu-svc")).Methods("GET")

	r.HandleFunc("/api/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/dishes", h.getDishes).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/dishes/{id:[0-9]+}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/dishes/{id:[0-9]+}/image", h.uploadDishImage).Methods("POST")

	r.HandleFunc("/api/menus/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menus/items/{id:[0-9]+}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menus/"+weekPattern, h.getWeeklyMenu).Methods("GET")
	r.HandleFunc("/api/menus/"+weekPattern+"/nutrition-report", h.getNutritionReport).Methods("GET")
	r.HandleFunc("/api/menus/"+weekPattern+"/qrcode", h.getMenuQRCode).Methods("GET")
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Create(&dish); err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dish, err := h.Dishes.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = id
	if err := h.Dishes.Update(&dish); err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Dishes.Delete(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadDishImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedTypes[header.Header.Get("Content-Type")] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, WebP allowed", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		http.Error(w, "Failed to create upload directory", http.StatusInternalServerError)
		return
	}

	filename := "dish_" + strconv.Itoa(id) + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		http.Error(w, "Failed to create file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Dishes.UpdateImage(id, imageURL); err != nil {
		h.writeError(w, err)
		return
	}

	httpmw.WriteJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menus.AddItem(&item); err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Menus.RemoveItem(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if rows == 0 {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getWeeklyMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menus.Week(mux.Vars(r)["weekStart"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, menu)
}

func (h *Handler) getNutritionReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Menus.NutritionReport(mux.Vars(r)["weekStart"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpmw.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Menus.QRCode(mux.Vars(r)["weekStart"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDish),
		errors.Is(err, service.ErrInvalidMenuItem),
		errors.Is(err, service.ErrInvalidWeekStart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		h.Logger.Error("menu request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
