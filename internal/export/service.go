package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/listing"
	"github.com/mpetrov/chathub/internal/repository"
)

const sheetName = "Servers"

// Service renders filtered server listings to spreadsheet workbooks. It
// reuses the listing pipeline, so the same query parameters and auth rules
// apply.
type Service struct {
	servers repository.ServerRepository
}

func NewService(servers repository.ServerRepository) *Service {
	return &Service{servers: servers}
}

// BuildWorkbook runs the listing pipeline and lays the outcome out as a
// single-sheet workbook. Callers own closing the returned file.
func (s *Service) BuildWorkbook(ctx context.Context, params listing.Params, identity auth.Identity) (*excelize.File, error) {
	snapshot, err := s.servers.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load servers: %w", err)
	}

	outcome, err := listing.Apply(params, identity, snapshot)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []any{"ID", "Name", "Category", "Description"}
	if outcome.NumMembersIncluded {
		headers = append(headers, "Members")
	}
	if err := writeRow(f, 1, headers); err != nil {
		f.Close()
		return nil, err
	}

	for i, record := range listing.RenderServers(outcome) {
		values := []any{record.ID, record.Name, record.Category, record.Description}
		if record.NumMembers != nil {
			values = append(values, *record.NumMembers)
		}
		if err := writeRow(f, i+2, values); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("resolve cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	return nil
}
