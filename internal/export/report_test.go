package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/legacy"
)

func sampleResult() *legacy.RunResult {
	summary := legacy.NewSummary()
	summary.Parsed(constants.TableBlocks)
	summary.Parsed(constants.TableBlocks)
	summary.Mapped(constants.TableBlocks)
	summary.Skipped(constants.TableBlocks, constants.SkipDuplicate)

	harvest := time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC)
	return &legacy.RunResult{
		Summary: summary,
		Entities: []entity.Canonical{
			&entity.Block{
				ID:         uuid.MustParse("c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234"),
				LegacyCode: "TVGH-03",
				ExpectedChanges: entity.ExpectedStatusChanges{
					entity.StageHarvesting: harvest,
				},
			},
		},
	}
}

func TestRunReportXLSX(t *testing.T) {
	svc := NewService(nil)

	raw, err := svc.RunReportXLSX(sampleResult(), time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	started, err := f.GetCellValue("Run Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01T09:00:00Z", started)

	rows, err := f.GetRows("Run Summary")
	require.NoError(t, err)
	require.Greater(t, len(rows), 3)

	// One row per known table plus a totals row.
	var blocksRow []string
	for _, row := range rows {
		if len(row) > 0 && row[0] == string(constants.TableBlocks) {
			blocksRow = row
		}
	}
	require.NotNil(t, blocksRow)
	assert.Equal(t, "2", blocksRow[1]) // parsed
	assert.Equal(t, "1", blocksRow[2]) // mapped

	kind, err := f.GetCellValue("Entities", "A2")
	require.NoError(t, err)
	assert.Equal(t, string(entity.KindBlock), kind)

	projected, err := f.GetCellValue("Entities", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-26", projected)
}
