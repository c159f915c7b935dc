package interfaces

import "context"

// ITokenSource yields the partner API access token for one invocation.
type ITokenSource interface {
	Token(ctx context.Context) (string, error)
}
