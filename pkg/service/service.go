// Package service is the terminal front end over app.App: it prompts
// for missing input, runs the action and prints the result.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/client"
	"github.com/zfogg/streamline/pkg/config"
	"github.com/zfogg/streamline/pkg/credentials"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/views"
)

type consoleNotifier struct{}

// Notify prints non-fatal problems as warnings.
func (consoleNotifier) Notify(err *apperrors.AppError) {
	switch err.Kind {
	case apperrors.KindPartial, apperrors.KindAIUnavailable:
		output.PrintWarning("%s", err.Message)
	default:
		// Action failures are returned to the command and printed there.
	}
}

// NewApp wires an App from configuration: the configured backend, the
// default credentials file and console notifications.
func NewApp() *app.App {
	backend := api.New(client.FromConfig())
	return NewAppWith(backend, credentials.Default())
}

// NewAppWith wires an App around the given backend and credentials.
func NewAppWith(backend app.API, creds app.CredentialStore) *app.App {
	return app.New(backend, creds, consoleNotifier{}, app.Options{
		DownloadDir:   config.GetString("output.download_dir"),
		ActivityLimit: config.GetInt("activities.limit"),
		Feed: views.FeedOptions{
			Todos:   config.GetInt("dashboard.recent_todos"),
			Tickets: config.GetInt("dashboard.recent_tickets"),
			Limit:   config.GetInt("dashboard.feed_size"),
		},
	})
}

// boot restores the stored session once per App.
func boot(ctx context.Context, a *app.App) error {
	if !a.State().Loading {
		return nil
	}
	return a.Boot(ctx)
}

// requireLogin boots a and fails unless a session was restored.
func requireLogin(ctx context.Context, a *app.App) error {
	if err := boot(ctx, a); err != nil {
		return err
	}
	if !a.State().Authenticated() {
		return apperrors.NotLoggedIn()
	}
	return nil
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// matchID resolves ref against ids: an exact match wins, otherwise a
// unique suffix match (as printed by formatter.ShortID) is accepted.
func matchID(ref string, ids []string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", apperrors.Validation("id", "is required")
	}

	var found []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasSuffix(id, ref) {
			found = append(found, id)
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", apperrors.New(apperrors.KindNotFound, fmt.Sprintf("Nothing matches %q", ref), nil)
	default:
		return "", apperrors.Validation("id", fmt.Sprintf("%q is ambiguous (%d matches)", ref, len(found)))
	}
}

// showID resolves ref with resolve but keeps an unmatched reference as
// a full id, so the app can fetch an entity created since the last
// refresh.
func showID(a *app.App, ref string, resolve func(*app.App, string) (string, error)) (string, error) {
	id, err := resolve(a, ref)
	if apperrors.IsKind(err, apperrors.KindNotFound) {
		return strings.TrimSpace(ref), nil
	}
	return id, err
}

func todoID(a *app.App, ref string) (string, error) {
	todos := a.Todos.Snapshot()
	ids := make([]string, 0, len(todos))
	for _, t := range todos {
		ids = append(ids, t.ID)
	}
	return matchID(ref, ids)
}

func ticketID(a *app.App, ref string) (string, error) {
	tickets := a.Tickets.Snapshot()
	ids := make([]string, 0, len(tickets))
	for _, t := range tickets {
		ids = append(ids, t.ID)
		// The human ticket code works as a reference too.
		if strings.EqualFold(t.TicketID, strings.TrimSpace(ref)) {
			return t.ID, nil
		}
	}
	return matchID(ref, ids)
}
