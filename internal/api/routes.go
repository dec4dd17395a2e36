package api

import (
	"net/http"

	"github.com/codepromptu/server/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Users.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	)
}
