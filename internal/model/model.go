package model

// LinkType classifies what a repository link points at.
type LinkType string

const (
	LinkTypeSourceControl LinkType = "source-control"
	LinkTypeDesign        LinkType = "design"
	LinkTypeDocumentation LinkType = "documentation"
	LinkTypeOther         LinkType = "other"
)

// Valid reports whether t is one of the known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeSourceControl, LinkTypeDesign, LinkTypeDocumentation, LinkTypeOther:
		return true
	}

	return false
}

// ParseLinkType converts a string to a LinkType, defaulting to "other"
// for anything unrecognized.
func ParseLinkType(s string) LinkType {
	t := LinkType(s)
	if !t.Valid() {
		return LinkTypeOther
	}

	return t
}

// RepoRecord is the database-backed portion of a repository link. Links
// created from static project templates carry no record; only links with a
// record can be toggled on the backend.
type RepoRecord struct {
	// ID is the backend row identifier
	ID int64 `json:"id"`

	// Active indicates whether the repository is enabled for commit aggregation
	Active bool `json:"active"`
}

// RepoLink is a user-managed reference to an external project resource
// (GitHub repository, design document, documentation site, ...).
type RepoLink struct {
	// ID is the link identifier
	ID int64 `json:"id"`

	// Label is the display name shown in lists
	Label string `json:"label"`

	// Description is an optional free-form note
	Description string `json:"description,omitempty"`

	// URL is the external resource location
	URL string `json:"url"`

	// Type classifies the link
	Type LinkType `json:"type"`

	// Record is set when the link is backed by a real database row
	Record *RepoRecord `json:"repository,omitempty"`
}

// Active reports whether the link's backing record is enabled. Links without
// a record are considered inactive for toggling purposes.
func (l RepoLink) Active() bool {
	return l.Record != nil && l.Record.Active
}
