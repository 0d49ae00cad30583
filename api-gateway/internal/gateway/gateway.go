package gateway

import (
	"io"
	"net/http"
	"strings"

	"carehome/httpmw"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL      string
	CareLogSvcURL   string
	NutritionSvcURL string
}

type route struct {
	prefix   string
	contains string
	target   func(Config) string
}

// Longer, more specific prefixes first: /api/residents is only nutrition
// traffic when the path goes on to /nutrition.
var routes = []route{
	{prefix: "/api/dishes", target: func(c Config) string { return c.MenuSvcURL }},
	{prefix: "/api/menus", target: func(c Config) string { return c.MenuSvcURL }},
	{prefix: "/uploads/", target: func(c Config) string { return c.MenuSvcURL }},
	{prefix: "/api/care-logs", target: func(c Config) string { return c.CareLogSvcURL }},
	{prefix: "/api/residents/", contains: "/nutrition", target: func(c Config) string { return c.NutritionSvcURL }},
	{prefix: "/api/nutrition", target: func(c Config) string { return c.NutritionSvcURL }},
}

// hopHeaders are dropped when copying headers across the proxy.
var hopHeaders = []string{
	"Connection", "Keep-Alive", "Proxy-Authenticate", "Proxy-Authorization",
	"Te", "Trailer", "Transfer-Encoding", "Upgrade",
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

// Resolve returns the upstream base URL serving path, or "" when no service
// owns it.
func (g *Gateway) Resolve(path string) string {
	for _, rt := range routes {
		if !strings.HasPrefix(path, rt.prefix) {
			continue
		}
		if rest := path[len(rt.prefix):]; rest != "" && !strings.HasSuffix(rt.prefix, "/") && rest[0] != '/' {
			continue
		}
		if rt.contains != "" && !strings.Contains(path[len(rt.prefix):], rt.contains) {
			continue
		}
		return rt.target(g.config)
	}
	return ""
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.logger.Debug("Proxying request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("upstream", url))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("Failed to create upstream request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req.ContentLength = r.ContentLength
	copyHeaders(req.Header, r.Header)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("Upstream unavailable", zap.String("upstream", targetURL), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("Failed to copy upstream response", zap.Error(err))
	}
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	for _, h := range hopHeaders {
		dst.Del(h)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.Resolve(r.URL.Path)
	if target == "" {
		g.logger.Info("Unmatched route", zap.String("path", r.URL.Path))
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(httpmw.RequestLogger(g.logger))
	r.HandleFunc("/health", httpmw.Health("api-gateway")).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/uploads/").HandlerFunc(g.RouteHandler)
	return r
}
