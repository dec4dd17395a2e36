// Command seed loads demonstration users and prompts through the repository
// facade, for local development against a migrated database.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codepromptu/server/internal/config"
	"github.com/codepromptu/server/internal/prompts"
	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/pkg/database"
)

type seedPrompt struct {
	content     string
	displayName string
	tags        []string
	owner       string
}

var seedUsers = []users.CreateCommand{
	{Username: "ada", Password: "ada-pass", ClassKey: "demo"},
	{Username: "grace", Password: "grace-pass", ClassKey: "demo"},
}

var seedPrompts = []seedPrompt{
	{
		content:     "Summarize the following text in three sentences.",
		displayName: "summarize",
		tags:        []string{"summary", "general"},
	},
	{
		content:     "Translate the following text to French.",
		displayName: "translate-fr",
		tags:        []string{"translation"},
	},
	{
		content:     "Review this Go code and point out concurrency issues.",
		displayName: "go-review",
		tags:        []string{"code", "go"},
		owner:       "ada",
	},
	{
		content:     "Write a COBOL subroutine that validates a date.",
		displayName: "cobol-date",
		tags:        []string{"code", "legacy"},
		owner:       "grace",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		log.Fatal("database init failed:", err)
	}
	conn := db.Connection()
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		log.Fatal("database ping failed:", err)
	}

	userSystem := users.New(conn, logger)
	promptSystem := prompts.New(conn, logger)

	seeded := make(map[string]*users.User, len(seedUsers))
	for _, cmd := range seedUsers {
		u, err := userSystem.Create(ctx, cmd)
		if errors.Is(err, users.ErrDuplicate) {
			u, err = userSystem.Find(ctx, cmd.Username)
		}
		if err != nil {
			log.Fatalf("seed user %s failed: %v", cmd.Username, err)
		}
		seeded[u.Username] = u
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, sp := range seedPrompts {
		g.Go(func() error {
			cmd := prompts.CreateCommand{
				Content:     sp.content,
				DisplayName: sp.displayName,
				Tags:        sp.tags,
			}

			guid, err := promptSystem.Create(gctx, cmd, seeded[sp.owner])
			if err != nil {
				return err
			}

			usage := prompts.UsageCommand{Model: "gpt-4", Provider: "openai", Status: "success"}
			if err := promptSystem.RecordUsage(gctx, guid, usage, seeded[sp.owner]); err != nil {
				return err
			}

			logger.Info("prompt seeded", "guid", guid, "display_name", sp.displayName, "owner", sp.owner)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("seed failed:", err)
	}

	logger.Info("seed complete", "users", len(seedUsers), "prompts", len(seedPrompts))
}
