package models

// Result is the tagged outcome produced by service.Safe for callers that
// prefer not to branch on errors.
type Result[T any] struct {
	// OK is true when the call succeeded and Res is valid.
	OK bool `json:"ok"`
	// Res is the call's value on success.
	Res T `json:"res,omitempty"`
	// Msg is the failure message when OK is false.
	Msg string `json:"msg,omitempty"`
}
