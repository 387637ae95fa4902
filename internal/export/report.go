// Package export renders a migration run into an XLSX workbook operators can
// audit: per-table counts plus every skip reason the summary recorded.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/legacy"
)

// Service produces XLSX bytes for migration-run reports.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RunReportXLSX returns a workbook with a run-summary sheet and an entities
// sheet listing every canonical record the run produced.
func (s *Service) RunReportXLSX(result *legacy.RunResult, startedAt time.Time) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if err := s.writeSummarySheet(f, result, startedAt); err != nil {
		return nil, err
	}
	if err := s.writeEntitiesSheet(f, result.Entities); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	s.logger.Info("run report rendered",
		"entities", len(result.Entities),
		"elapsed", time.Since(start),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummarySheet(f *excelize.File, result *legacy.RunResult, startedAt time.Time) error {
	const sheet = "Run Summary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Run started")
	write(2, 1, startedAt.UTC().Format(time.RFC3339))

	headers := []string{"Table", "Parsed", "Mapped"}
	for _, reason := range constants.SkipReasons {
		headers = append(headers, "Skipped: "+string(reason))
	}
	for i, h := range headers {
		write(i+1, 3, h)
	}

	row := 4
	for _, table := range constants.KnownTables {
		st := result.Summary.Table(table)
		write(1, row, string(table))
		write(2, row, st.Parsed)
		write(3, row, st.Mapped)
		for i, reason := range constants.SkipReasons {
			write(4+i, row, st.Skipped[reason])
		}
		row++
	}

	totals := result.Summary.Totals()
	write(1, row, "total")
	write(2, row, totals.Parsed)
	write(3, row, totals.Mapped)
	for i, reason := range constants.SkipReasons {
		write(4+i, row, totals.Skipped[reason])
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	return nil
}

func (s *Service) writeEntitiesSheet(f *excelize.File, entities []entity.Canonical) error {
	const sheet = "Entities"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"Kind", "Entity ID", "Legacy Code", "Projected Harvest"}
	for i, h := range headers {
		write(i+1, 1, h)
	}

	row := 2
	for _, e := range entities {
		write(1, row, string(e.EntityKind()))
		write(2, row, e.EntityID().String())
		write(3, row, e.Legacy())
		if block, ok := e.(*entity.Block); ok {
			if date, has := block.ExpectedChanges[entity.StageHarvesting]; has {
				write(4, row, date.Format("2006-01-02"))
			}
		}
		row++
	}

	_ = f.SetColWidth(sheet, "B", "B", 38)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	return nil
}
