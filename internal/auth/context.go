package auth

import (
	"context"
	"errors"
)

type ctxKey int

const ctxAccountID ctxKey = iota

func WithAccount(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, ctxAccountID, accountID)
}

func AccountID(ctx context.Context) (string, error) {
	v := ctx.Value(ctxAccountID)
	if s, ok := v.(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("account_id not in context")
}
