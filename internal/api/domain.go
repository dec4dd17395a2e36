package api

import (
	"github.com/codepromptu/server/internal/prompts"
	"github.com/codepromptu/server/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users   users.System
	Prompts prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	usersSystem := users.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Users:   usersSystem,
		Prompts: promptsSystem,
	}
}
