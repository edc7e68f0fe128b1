package models

// Token is an issued bearer token together with the agent it authenticates.
type Token struct {
	SignedString string `json:"token"`
	AgentID      int64  `json:"agent_id"`
}
