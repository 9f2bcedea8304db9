package model

// Config holds the client-side settings persisted in the local store.
type Config struct {
	// ServerURL is the base URL of the backend API
	ServerURL string `json:"server_url"`

	// DefaultProject is the project identifier used when none is given on
	// the command line. Kept as a string: project ids coming from templates
	// or ini overrides may be non-numeric, which short-circuits loads.
	DefaultProject string `json:"default_project"`

	// CommitPageSize is how many commits the feed requests per load
	CommitPageSize int `json:"commit_page_size"`
}

// DefaultCommitPageSize matches the feed's fixed page request.
const DefaultCommitPageSize = 8

// DefaultConfig returns the configuration used before `linkr configure`
// has ever been run.
func DefaultConfig() Config {
	return Config{
		ServerURL:      "http://localhost:3000",
		CommitPageSize: DefaultCommitPageSize,
	}
}
