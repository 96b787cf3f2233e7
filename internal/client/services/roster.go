package services

import (
	"context"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/api"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/models"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/notify"
)

// Action names a user-triggered operation that may require the roster to be
// fetched again afterwards.
type Action string

const (
	ActionSignup     Action = "signup"
	ActionUnregister Action = "unregister"
	ActionLogin      Action = "login"
	ActionLogout     Action = "logout"
)

// refetchAfter is the one place that decides which actions invalidate the
// displayed roster. Every entry refetches: the displayed roster is always
// server truth, never a local guess.
var refetchAfter = map[Action]bool{
	ActionSignup:     true,
	ActionUnregister: true,
	ActionLogin:      true,
	ActionLogout:     true,
}

// RefetchAfter reports whether the roster must be fetched again once the
// given action has completed successfully.
func RefetchAfter(a Action) bool {
	return refetchAfter[a]
}

// Messages surfaced by the mutation flows. GateMessage is produced locally
// without any network round trip; the fallbacks cover responses without a
// usable detail and transport failures.
const (
	GateMessage            = "Teacher login required"
	FetchFailureMessage    = "Failed to load activities. Please try again later."
	genericFailureMessage  = "An error occurred"
	signupTransportFailure = "Failed to sign up. Please try again."
	removeTransportFailure = "Failed to unregister. Please try again."
)

// Outcome is the user-visible result of a mutation attempt.
type Outcome struct {
	Message string
	Kind    notify.Kind
	Refetch bool
}

// RosterService fetches roster snapshots and performs the gated mutations.
// It never touches the token store; the session passed in by the caller is
// the single source of authorization truth.
type RosterService interface {
	Fetch(ctx context.Context) (*models.RosterSnapshot, error)
	Signup(ctx context.Context, session models.AuthSession, activity, email string) Outcome
	Unregister(ctx context.Context, session models.AuthSession, activity, email string) Outcome
}

type rosterService struct {
	client api.Client
}

func NewRosterService(client api.Client) RosterService {
	return &rosterService{client: client}
}

func (r *rosterService) Fetch(ctx context.Context) (*models.RosterSnapshot, error) {
	return r.client.FetchActivities(ctx)
}

func (r *rosterService) Signup(ctx context.Context, session models.AuthSession, activity, email string) Outcome {
	if !session.Authenticated {
		return Outcome{Message: GateMessage, Kind: notify.KindError}
	}

	msg, err := r.client.Signup(ctx, activity, email, session.Token)
	if err != nil {
		return mutationFailure(err, signupTransportFailure)
	}
	return Outcome{Message: msg, Kind: notify.KindSuccess, Refetch: RefetchAfter(ActionSignup)}
}

func (r *rosterService) Unregister(ctx context.Context, session models.AuthSession, activity, email string) Outcome {
	if !session.Authenticated {
		return Outcome{Message: GateMessage, Kind: notify.KindError}
	}

	msg, err := r.client.Unregister(ctx, activity, email, session.Token)
	if err != nil {
		return mutationFailure(err, removeTransportFailure)
	}
	return Outcome{Message: msg, Kind: notify.KindSuccess, Refetch: RefetchAfter(ActionUnregister)}
}

// mutationFailure maps an application failure to the server's detail (or a
// generic message when the body carried none) and a transport failure to
// the operation-specific fallback.
func mutationFailure(err error, transportFallback string) Outcome {
	if se, ok := api.AsStatusError(err); ok {
		detail := se.Detail
		if detail == "" {
			detail = genericFailureMessage
		}
		return Outcome{Message: detail, Kind: notify.KindError}
	}
	return Outcome{Message: transportFallback, Kind: notify.KindError}
}
