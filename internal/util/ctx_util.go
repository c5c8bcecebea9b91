package util

import (
	"context"

	"github.com/RoyceAzure/lab/ecommerce-admin/internal/constants"
	"github.com/RoyceAzure/lab/ecommerce-admin/internal/infra/auth"
)

func GetTokenPayloadFromContext(ctx context.Context) *auth.Payload {
	var tokenPayload *auth.Payload

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload, _ = v.(*auth.Payload)
	}

	return tokenPayload
}

// GetUserIDFromContext 未登入時回傳空字串
func GetUserIDFromContext(ctx context.Context) string {
	if payload := GetTokenPayloadFromContext(ctx); payload != nil {
		return payload.UserID
	}
	return ""
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(constants.RequestIDKey).(string); ok {
		return v
	}
	return "unknown"
}
