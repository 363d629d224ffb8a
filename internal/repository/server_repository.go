package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpetrov/chathub/internal/domain"
)

// serverRepository implements ServerRepository over a pgx pool.
type serverRepository struct {
	pool *pgxpool.Pool
}

// NewServerRepository creates a new server repository
func NewServerRepository(pool *pgxpool.Pool) ServerRepository {
	return &serverRepository{pool: pool}
}

const snapshotQuery = `
SELECT s.id, s.name, s.description, c.name AS category, s.owner_id, s.created_at
FROM servers s
JOIN categories c ON c.id = s.category_id
ORDER BY s.id`

const membersQuery = `
SELECT server_id, account_id
FROM server_members
ORDER BY server_id, account_id`

// memberRow is one raw row of the server/account membership relation.
type memberRow struct {
	ServerID  int64
	AccountID int64
}

// Snapshot loads every server with its membership rows in two statements,
// both executed within one request so the view is internally consistent.
func (r *serverRepository) Snapshot(ctx context.Context) ([]domain.Server, error) {
	rows, err := r.pool.Query(ctx, snapshotQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	servers := []domain.Server{}
	for rows.Next() {
		var server domain.Server
		if err := rows.Scan(&server.ID, &server.Name, &server.Description, &server.Category, &server.OwnerID, &server.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		servers = append(servers, server)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read server rows: %w", err)
	}

	memberRows, err := r.loadMembers(ctx)
	if err != nil {
		return nil, err
	}

	return attachMembers(servers, memberRows), nil
}

func (r *serverRepository) loadMembers(ctx context.Context) ([]memberRow, error) {
	rows, err := r.pool.Query(ctx, membersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list server members: %w", err)
	}
	defer rows.Close()

	members := []memberRow{}
	for rows.Next() {
		var row memberRow
		if err := rows.Scan(&row.ServerID, &row.AccountID); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read member rows: %w", err)
	}

	return members, nil
}

// attachMembers distributes raw membership rows onto the server slice.
// Rows referencing unknown servers are dropped; duplicates are kept as-is.
func attachMembers(servers []domain.Server, members []memberRow) []domain.Server {
	index := make(map[int64]int, len(servers))
	for i, server := range servers {
		index[server.ID] = i
	}
	for _, row := range members {
		i, ok := index[row.ServerID]
		if !ok {
			continue
		}
		servers[i].Members = append(servers[i].Members, row.AccountID)
	}
	return servers
}
