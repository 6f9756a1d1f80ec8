package models

import "time"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Conversation is the chat state of one user identifier. SystemPrompt embeds
// the resume text the conversation was created with.
type Conversation struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	SystemPrompt string     `json:"system_prompt"`
	History      []ChatTurn `json:"history"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Clone returns a copy whose history can be appended to independently.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.History = append([]ChatTurn(nil), c.History...)
	return &cp
}

func (c *Conversation) AppendExchange(message, reply string) {
	c.History = append(c.History,
		ChatTurn{Role: RoleUser, Content: message},
		ChatTurn{Role: RoleAssistant, Content: reply},
	)
	c.UpdatedAt = time.Now()
}
