package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrobase-io/agrobase/constants"
)

func TestSummaryTotals(t *testing.T) {
	s := NewSummary()
	s.Parsed(constants.TablePhysicalBlocks)
	s.Parsed(constants.TablePhysicalBlocks)
	s.Mapped(constants.TablePhysicalBlocks)
	s.Skipped(constants.TablePhysicalBlocks, constants.SkipDuplicate)
	s.Parsed(constants.TablePrices)
	s.Mapped(constants.TablePrices)
	s.SkippedN(constants.TablePrices, constants.SkipMalformed, 3)
	s.SkippedN(constants.TablePrices, constants.SkipMalformed, 0) // no-op

	pb := s.Table(constants.TablePhysicalBlocks)
	assert.Equal(t, 2, pb.Parsed)
	assert.Equal(t, 1, pb.Mapped)
	assert.Equal(t, 1, pb.Skipped[constants.SkipDuplicate])

	totals := s.Totals()
	assert.Equal(t, 3, totals.Parsed)
	assert.Equal(t, 2, totals.Mapped)
	assert.Equal(t, 3, totals.Skipped[constants.SkipMalformed])
	assert.Equal(t, 1, totals.Skipped[constants.SkipDuplicate])
}

func TestSummaryTableCopyIsDetached(t *testing.T) {
	s := NewSummary()
	s.Parsed(constants.TableHarvests)

	copy1 := s.Table(constants.TableHarvests)
	copy1.Skipped[constants.SkipDuplicate] = 99

	assert.Zero(t, s.Table(constants.TableHarvests).Skipped[constants.SkipDuplicate])
}
