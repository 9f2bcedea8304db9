package model

import (
	"encoding/json"
	"time"
)

// CommitKind discriminates the two commit record shapes the backend emits.
type CommitKind string

const (
	// CommitKindLive is a commit fetched from a provider API
	CommitKindLive CommitKind = "live"

	// CommitKindStatic is a pre-rendered fallback entry from a project template
	CommitKindStatic CommitKind = "static"
)

// LiveCommit is a commit pulled from a provider through the backend.
type LiveCommit struct {
	Hash        string    `json:"hash"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"author_email"`
	Message     string    `json:"message"`
	URL         string    `json:"url"`
	Repo        string    `json:"repo"`
	Timestamp   time.Time `json:"timestamp"`
}

// StaticCommit is the fallback shape carried by static project templates.
// Its timestamp is a pre-formatted display string, not a parseable time.
type StaticCommit struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Message   string `json:"message"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

// CommitEntry is a tagged union of the two commit shapes. Exactly one of
// Live/Static is non-nil, matching Kind.
type CommitEntry struct {
	Kind   CommitKind
	Live   *LiveCommit
	Static *StaticCommit
}

// NewLiveEntry wraps a live commit in a tagged entry.
func NewLiveEntry(c LiveCommit) CommitEntry {
	return CommitEntry{Kind: CommitKindLive, Live: &c}
}

// NewStaticEntry wraps a static commit in a tagged entry.
func NewStaticEntry(c StaticCommit) CommitEntry {
	return CommitEntry{Kind: CommitKindStatic, Static: &c}
}

// Author returns the author display name regardless of shape.
func (e CommitEntry) Author() string {
	switch e.Kind {
	case CommitKindLive:
		return e.Live.Author
	case CommitKindStatic:
		return e.Static.Author
	}

	return ""
}

// Message returns the commit message regardless of shape.
func (e CommitEntry) Message() string {
	switch e.Kind {
	case CommitKindLive:
		return e.Live.Message
	case CommitKindStatic:
		return e.Static.Message
	}

	return ""
}

// Hash returns the commit hash regardless of shape.
func (e CommitEntry) Hash() string {
	switch e.Kind {
	case CommitKindLive:
		return e.Live.Hash
	case CommitKindStatic:
		return e.Static.Hash
	}

	return ""
}

// commitWire is the raw backend shape. The API does not tag records: live
// commits are recognized by carrying both a URL and an author email. The tag
// is assigned here, at the decode boundary, so nothing downstream has to
// sniff fields.
type commitWire struct {
	ID          int64  `json:"id,omitempty"`
	Hash        string `json:"hash"`
	Author      string `json:"author"`
	AuthorEmail string `json:"author_email,omitempty"`
	Message     string `json:"message"`
	URL         string `json:"url,omitempty"`
	Repo        string `json:"repo,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// UnmarshalJSON decodes a backend commit record into the tagged union.
func (e *CommitEntry) UnmarshalJSON(data []byte) error {
	var w commitWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	if w.URL != "" && w.AuthorEmail != "" {
		ts, err := time.Parse(time.RFC3339, w.Timestamp)
		if err != nil {
			return err
		}

		*e = NewLiveEntry(LiveCommit{
			Hash:        w.Hash,
			Author:      w.Author,
			AuthorEmail: w.AuthorEmail,
			Message:     w.Message,
			URL:         w.URL,
			Repo:        w.Repo,
			Timestamp:   ts,
		})

		return nil
	}

	*e = NewStaticEntry(StaticCommit{
		ID:        w.ID,
		Author:    w.Author,
		Message:   w.Message,
		Hash:      w.Hash,
		Timestamp: w.Timestamp,
	})

	return nil
}

// MarshalJSON re-encodes the entry in the backend wire shape.
func (e CommitEntry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case CommitKindLive:
		return json.Marshal(commitWire{
			Hash:        e.Live.Hash,
			Author:      e.Live.Author,
			AuthorEmail: e.Live.AuthorEmail,
			Message:     e.Live.Message,
			URL:         e.Live.URL,
			Repo:        e.Live.Repo,
			Timestamp:   e.Live.Timestamp.Format(time.RFC3339),
		})
	case CommitKindStatic:
		return json.Marshal(commitWire{
			ID:        e.Static.ID,
			Hash:      e.Static.Hash,
			Author:    e.Static.Author,
			Message:   e.Static.Message,
			Timestamp: e.Static.Timestamp,
		})
	}

	return []byte("null"), nil
}
