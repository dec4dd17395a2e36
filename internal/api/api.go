// Package api assembles the API module with all domain systems and route
// registration.
package api

import (
	"net/http"

	"github.com/codepromptu/server/internal/config"
	"github.com/codepromptu/server/internal/infrastructure"
	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/pkg/middleware"
	"github.com/codepromptu/server/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// The authenticator runs innermost so every handler sees the resolved caller
// context (or the anonymous scope) on the request.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(users.Authenticator(domain.Users, runtime.Logger))

	return m, nil
}
