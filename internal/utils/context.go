package utils

import "context"

type ctxKey string

// AgentIDCtxKey is the context key under which the auth middleware stores the
// authenticated agent's ID.
const AgentIDCtxKey ctxKey = "agent_id"

// AgentIDFromContext returns the authenticated agent ID stored in ctx by the
// auth middleware, or false if the request was not authenticated.
func AgentIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AgentIDCtxKey).(int64)
	return id, ok
}
