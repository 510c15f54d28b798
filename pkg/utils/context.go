package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	AdminIDKey contextKey = "admin_id"
	RoleKey    contextKey = "role"
)

func GetAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	adminIDVal := ctx.Value(AdminIDKey)
	if adminIDVal == nil {
		return uuid.Nil, false
	}

	adminIDStr, ok := adminIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return adminID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetPrincipalContext(ctx context.Context, adminID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, AdminIDKey, adminID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
