package models

// ChatTurn carries one chat request. Context and InitialAnalysis are supplied
// by the caller on every turn; nothing is remembered between turns.
type ChatTurn struct {
	UserID          string
	Message         string
	Context         string
	InitialAnalysis string
}
