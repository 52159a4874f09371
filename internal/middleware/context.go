package middleware

import "context"

type contextKey string

const (
	ContextUserID   contextKey = "userID"
	ContextUserName contextKey = "userName"
	ContextToken    contextKey = "token"
)

func GetUserID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserID).(string)
	return val, ok && val != ""
}

func GetUserName(ctx context.Context) string {
	val, _ := ctx.Value(ContextUserName).(string)
	return val
}
