package auth

import "context"

// Identity is the server-attested caller context for one request.
type Identity struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number,omitempty"`
}

type ctxKey struct{}

var ctxKeyIdentity = ctxKey{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the caller identity, or a zero Identity for
// an anonymous request.
func IdentityFromContext(ctx context.Context) Identity {
	if v := ctx.Value(ctxKeyIdentity); v != nil {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}
