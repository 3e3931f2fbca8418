package api_context

import "context"

type ctxKey string

const (
	VideoIDKey   ctxKey = "videoID"
	AuthUserKey  ctxKey = "authUser"
	AuthRolesKey ctxKey = "authRoles"
)

func VideoIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(VideoIDKey).(string)
	return id, ok
}

func AuthUserFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthUserKey).(string)
	return sub, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
