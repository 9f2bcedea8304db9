package model

import "time"

// GitHubToken is a stored GitHub personal access credential scoped to a
// project. The secret itself is write-only: it is sent on create and the
// backend never returns it.
type GitHubToken struct {
	// ID is the token identifier
	ID int64 `json:"id"`

	// Name is the user-chosen display name
	Name string `json:"name"`

	// Active indicates whether the token is enabled for commit aggregation
	Active bool `json:"active"`

	// CreatedAt is when the token was registered
	CreatedAt time.Time `json:"created_at"`

	// CreatedBy is the display name of the user who registered it
	CreatedBy string `json:"created_by"`
}

// ActiveToken returns the first token whose active flag is set, along with
// how many tokens claim to be active. The backend is trusted to keep at most
// one active per project; callers should warn when the count disagrees.
func ActiveToken(tokens []GitHubToken) (*GitHubToken, int) {
	var (
		first *GitHubToken
		count int
	)

	for i := range tokens {
		if tokens[i].Active {
			if first == nil {
				first = &tokens[i]
			}

			count++
		}
	}

	return first, count
}
