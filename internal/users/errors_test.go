package users_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/codepromptu/server/internal/users"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", users.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", users.ErrNotFound, http.StatusNotFound},
		{"duplicate", users.ErrDuplicate, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped duplicate", fmt.Errorf("create failed: %w", users.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := users.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
