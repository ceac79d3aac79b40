package models

// ChatProvider describes a chat backend and whether its credential is set.
type ChatProvider struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Model       string `json:"model"`
	Configured  bool   `json:"configured"`
}
