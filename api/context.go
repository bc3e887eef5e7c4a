package api

import (
	"context"
)

type keyType string

const adminEmailKey keyType = "adminEmail"

// ctxWithAdminEmail adds the verified admin email to the context
func ctxWithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxAdminEmail retrieves the verified admin email from the context
func ctxAdminEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(adminEmailKey).(string)
	return email, ok
}
