package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/athletiq/athletiq_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
)

// SubjectFromContext extracts the GroupSubject (user ID) from context.
// The resolved actor takes precedence; token claims are the fallback for
// code running before actor resolution.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	if a, ok := reqctx.ActorFromContext(ctx); ok && a.ID != uuid.Nil {
		return GroupSubject(a.ID.String()), nil
	}

	claims := reqctx.ClaimsFromContext(ctx)
	if claims != nil {
		userID := claims.GetUserID()
		if userID != uuid.Nil {
			return GroupSubject(userID.String()), nil
		}
	}

	return "", ErrNoSubjectInContext
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only behind auth middleware.
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	if a, ok := reqctx.ActorFromContext(ctx); ok && a.ID != uuid.Nil {
		return a.ID, nil
	}

	claims := reqctx.ClaimsFromContext(ctx)
	if claims != nil {
		userID := claims.GetUserID()
		if userID != uuid.Nil {
			return userID, nil
		}
	}

	return uuid.Nil, ErrNoSubjectInContext
}
