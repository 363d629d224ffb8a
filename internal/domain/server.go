package domain

import "time"

// Server represents one chat server record, read-only from this service's
// perspective. Members carries the raw membership relation rows, duplicates
// included; distinct counting happens at annotation time.
type Server struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerID     int64     `json:"owner_id"`
	Members     []int64   `json:"-"`
	NumMembers  int       `json:"num_members,omitempty"` // derived, populated only when requested
	CreatedAt   time.Time `json:"created_at"`
}

// HasMember reports whether the given account belongs to this server.
func (s Server) HasMember(accountID int64) bool {
	for _, id := range s.Members {
		if id == accountID {
			return true
		}
	}
	return false
}

// DistinctMemberCount counts unique member accounts. The relation can hold
// duplicate rows, so the raw length is not reliable.
func (s Server) DistinctMemberCount() int {
	seen := make(map[int64]struct{}, len(s.Members))
	for _, id := range s.Members {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Category represents a server category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
