package listing

// ServerRecord is the wire shape for one server in a listing response.
// NumMembers is present only when the outcome carries the annotation.
type ServerRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	NumMembers  *int   `json:"num_members,omitempty"`
}

// RenderServers maps a filter outcome onto wire records.
func RenderServers(outcome Outcome) []ServerRecord {
	records := make([]ServerRecord, len(outcome.Servers))
	for i, server := range outcome.Servers {
		record := ServerRecord{
			ID:          server.ID,
			Name:        server.Name,
			Category:    server.Category,
			Description: server.Description,
		}
		if outcome.NumMembersIncluded {
			count := server.NumMembers
			record.NumMembers = &count
		}
		records[i] = record
	}
	return records
}
