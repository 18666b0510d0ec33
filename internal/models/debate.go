package models

// DebateRequest is the payload sent to the debate endpoint.
// Fields are pointers so an absent field can be told apart from an empty one.
type DebateRequest struct {
	Topic       *string `json:"topic"`
	UserMessage *string `json:"userMessage"`
	Role        *string `json:"role"` // accepted, not read
}

// DebateReply is the successful response of the debate endpoint.
type DebateReply struct {
	Reply string `json:"reply"`
}

// ErrorReply is the flat failure body of the debate endpoint.
type ErrorReply struct {
	Error string `json:"error"`
}
