package http

import "net/http"

type routeDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Protected   bool   `json:"protected,omitempty"`
}

type docsResponse struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	Routes  []routeDoc `json:"routes"`
}

// docs describes the API surface. The route is mounted only when enabled in
// the configuration.
func (h *Handler) docs(w http.ResponseWriter, r *http.Request) error {
	return h.writeData(w, r, docsResponse{
		Name:    "go-user-api",
		Version: h.cfg.App.Version,
		Routes: []routeDoc{
			{Method: http.MethodGet, Path: "/", Description: "welcome message"},
			{Method: http.MethodGet, Path: "/healthz", Description: "liveness probe"},
			{Method: http.MethodGet, Path: "/v1/users", Description: "list users with pagination"},
			{Method: http.MethodPost, Path: "/v1/users", Description: "create a user"},
			{Method: http.MethodGet, Path: "/v1/users/{id}", Description: "get a user by id"},
			{Method: http.MethodPatch, Path: "/v1/users/{id}", Description: "partially update a user"},
			{Method: http.MethodDelete, Path: "/v1/users/{id}", Description: "delete a user"},
			{Method: http.MethodPost, Path: "/v1/auth/register", Description: "register an account and receive a token"},
			{Method: http.MethodPost, Path: "/v1/auth/login", Description: "authenticate and receive a token"},
			{Method: http.MethodGet, Path: "/v1/auth/me", Description: "current authenticated account", Protected: true},
		},
	}, http.StatusOK)
}
