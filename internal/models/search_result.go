package models

const (
	SearchKindModel      = "model"
	SearchKindRepository = "repository"
)

// SearchResult is one entry on the model search page: either a catalog model
// or a configured model repository.
type SearchResult struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
}
