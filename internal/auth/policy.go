package auth

import (
	"context"
	"net/http"

	"github.com/reinvvay/airport-api/internal/domain"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID  int64
	IsStaff bool
}

type Role int

const (
	Anonymous Role = iota
	Authenticated
	Staff
)

func (r Role) String() string {
	switch r {
	case Authenticated:
		return "authenticated"
	case Staff:
		return "staff"
	default:
		return "anonymous"
	}
}

// RoleOf maps an optional actor to its role.
func RoleOf(actor *Actor) Role {
	switch {
	case actor == nil:
		return Anonymous
	case actor.IsStaff:
		return Staff
	default:
		return Authenticated
	}
}

// Authorize decides whether role may perform an HTTP method on airport resources.
// Reads need any authenticated user, writes need staff.
func Authorize(role Role, method string) error {
	switch role {
	case Staff:
		return nil
	case Authenticated:
		if isSafe(method) {
			return nil
		}
		return domain.ErrForbidden
	default:
		return domain.ErrUnauthenticated
	}
}

func isSafe(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
