package export

import (
	"context"
	"errors"
	"testing"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/domain"
	"github.com/mpetrov/chathub/internal/listing"
)

type stubServerRepository struct {
	servers []domain.Server
	err     error
}

func (s *stubServerRepository) Snapshot(ctx context.Context) ([]domain.Server, error) {
	return s.servers, s.err
}

func exportFixture() []domain.Server {
	return []domain.Server{
		{ID: 1, Name: "Gopher Hangout", Category: "web", Members: []int64{10, 11, 12}},
		{ID: 2, Name: "Pixel Lounge", Category: "gaming", Members: []int64{10, 10, 13}},
	}
}

func TestBuildWorkbook_LaysOutListing(t *testing.T) {
	service := NewService(&stubServerRepository{servers: exportFixture()})

	workbook, err := service.BuildWorkbook(context.Background(), listing.Params{}, auth.Identity{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Name" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "Gopher Hangout" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
	if len(rows[0]) != 4 {
		t.Fatalf("expected 4 columns without annotation, got %d", len(rows[0]))
	}
}

func TestBuildWorkbook_IncludesMemberColumnWhenAnnotated(t *testing.T) {
	service := NewService(&stubServerRepository{servers: exportFixture()})

	workbook, err := service.BuildWorkbook(context.Background(), listing.Params{WithNumMembers: "true"}, auth.Identity{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if rows[0][4] != "Members" {
		t.Fatalf("expected Members header, got %v", rows[0])
	}
	// Duplicate relation rows collapse to a distinct count of 2.
	if rows[2][4] != "2" {
		t.Fatalf("expected member count 2 for second server, got %q", rows[2][4])
	}
}

func TestBuildWorkbook_PropagatesPipelineFailures(t *testing.T) {
	service := NewService(&stubServerRepository{servers: exportFixture()})

	_, err := service.BuildWorkbook(context.Background(), listing.Params{ByUser: "true"}, auth.Identity{})
	if !errors.Is(err, domain.ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestBuildWorkbook_PropagatesRepositoryFailures(t *testing.T) {
	service := NewService(&stubServerRepository{err: errors.New("connection refused")})

	_, err := service.BuildWorkbook(context.Background(), listing.Params{}, auth.Identity{})
	if err == nil {
		t.Fatalf("expected error from repository failure")
	}
}
