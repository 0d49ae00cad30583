package httpapi

import (
	"net/http"

	"carehome/httpmw"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(httpmw.RequestLogger(handler.Logger))
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler, logger *zap.Logger) {
	logger.Info("Nutrition Service starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Nutrition Service stopped", zap.Error(err))
	}
}
