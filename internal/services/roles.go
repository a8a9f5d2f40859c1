package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/requestdata"
	"github.com/samson-vesta/credmapping/internal/types"
)

// ErrForbidden marks role-check failures so handlers can answer 403
// instead of a generic 400.
var ErrForbidden = errors.New("forbidden")

// roleLevel orders the roles: each level may do everything the levels
// below it can.
func roleLevel(role string) int {
	switch role {
	case types.RoleAdmin:
		return 2
	case types.RoleEditor:
		return 1
	case types.RoleViewer:
		return 0
	}
	return -1
}

func actorFromContext(ctx context.Context) (*requestdata.RequestData, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("no authenticated actor in context: %w", ErrForbidden)
	}
	return rd, nil
}

// requireRole returns the actor when their role meets the minimum,
// otherwise a wrapped ErrForbidden. Mutations never proceed past a
// failed check.
func requireRole(ctx context.Context, minimum string) (*requestdata.RequestData, error) {
	rd, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if roleLevel(rd.Role) < roleLevel(minimum) {
		return nil, fmt.Errorf("requires %s role: %w", minimum, ErrForbidden)
	}
	return rd, nil
}
