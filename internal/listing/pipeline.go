package listing

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/domain"
)

// Params is the raw query parameter bag for the server listing. All fields
// are optional; an empty string means the parameter was not supplied.
// Boolean parameters count as set only when their value is exactly "true".
type Params struct {
	Category       string
	Qty            string
	ByUser         string
	ByServerID     string
	WithNumMembers string
}

const boolTrue = "true"

// ParamsFromQuery extracts the listing parameters from a URL query.
func ParamsFromQuery(values url.Values) Params {
	return Params{
		Category:       values.Get("category"),
		Qty:            values.Get("qty"),
		ByUser:         values.Get("by_user"),
		ByServerID:     values.Get("by_serverid"),
		WithNumMembers: values.Get("with_num_members"),
	}
}

// Outcome is the filtered view handed to the serializer. NumMembersIncluded
// tells it whether each server carries a computed member count.
type Outcome struct {
	Servers            []domain.Server
	NumMembersIncluded bool
}

// Apply runs the filter pipeline over one read snapshot of the server
// collection. Stage order must not be rearranged: category narrowing,
// by_user narrowing, member-count annotation, by_serverid narrowing, qty
// truncation. The snapshot itself is never mutated.
func Apply(params Params, identity auth.Identity, snapshot []domain.Server) (Outcome, error) {
	servers := make([]domain.Server, len(snapshot))
	copy(servers, snapshot)

	if params.Category != "" {
		servers = narrow(servers, func(s domain.Server) bool {
			return s.Category == params.Category
		})
	}

	if params.ByUser == boolTrue {
		if identity.Authenticated {
			servers = narrow(servers, func(s domain.Server) bool {
				return s.HasMember(identity.UserID)
			})
		}
		// Narrowing first, auth check second: anonymous callers fail here
		// even though the filter stage skipped them. Upstream behaves the
		// same way, so this ordering is kept.
		if !identity.Authenticated {
			return Outcome{}, domain.ErrAuthenticationRequired
		}
	}

	annotated := params.WithNumMembers == boolTrue
	if annotated {
		for i := range servers {
			servers[i].NumMembers = servers[i].DistinctMemberCount()
		}
	}

	if params.ByServerID != "" {
		if !identity.Authenticated {
			return Outcome{}, domain.ErrAuthenticationRequired
		}
		id, err := strconv.ParseInt(params.ByServerID, 10, 64)
		if err != nil {
			return Outcome{}, domain.NewInvalidQuery("Server value error")
		}
		servers = narrow(servers, func(s domain.Server) bool {
			return s.ID == id
		})
		if len(servers) == 0 {
			return Outcome{}, domain.NewInvalidQuery(fmt.Sprintf("Server with id %s not found", params.ByServerID))
		}
	}

	if params.Qty != "" {
		// A malformed qty is a caller programming error, not a validation
		// failure; it surfaces as an untyped error distinct from
		// InvalidQueryError.
		n, err := strconv.Atoi(params.Qty)
		if err != nil {
			return Outcome{}, fmt.Errorf("parse qty: %w", err)
		}
		if n < 0 {
			n = 0
		}
		if n < len(servers) {
			servers = servers[:n]
		}
	}

	return Outcome{Servers: servers, NumMembersIncluded: annotated}, nil
}

func narrow(servers []domain.Server, keep func(domain.Server) bool) []domain.Server {
	result := servers[:0]
	for _, server := range servers {
		if keep(server) {
			result = append(result, server)
		}
	}
	return result
}
