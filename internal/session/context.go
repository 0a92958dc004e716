package session

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying slot.
func NewContext(ctx context.Context, slot *Slot) context.Context {
	return context.WithValue(ctx, contextKey{}, slot)
}

// FromContext returns the session slot stored by the middleware.
func FromContext(ctx context.Context) (*Slot, bool) {
	slot, ok := ctx.Value(contextKey{}).(*Slot)
	return slot, ok && slot != nil
}
