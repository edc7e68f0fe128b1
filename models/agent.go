package models

// Agent is a field auditor account.
type Agent struct {
	AgentID      int64  `json:"agent_id,omitempty"`
	Login        string `json:"login"`
	Password     string `json:"password,omitempty"`
	Name         string `json:"name,omitempty"`
	PasswordHash string `json:"-"`
}
