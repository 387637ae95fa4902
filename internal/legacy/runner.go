package legacy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/timeline"
)

// Sink is the canonical-store boundary. The pipeline never issues a blind
// overwrite; created=false means the key already existed and the record was
// left untouched.
type Sink interface {
	UpsertIfAbsent(ctx context.Context, e entity.Canonical) (created bool, err error)
}

// CycleSource is the crop-catalog boundary. A missing catalog entry is a
// reportable condition, not a fatal one.
type CycleSource interface {
	GrowthCycleByName(ctx context.Context, cropName string) (entity.GrowthCycle, error)
}

// TableDump is one table's statement-dump text plus its configured identity.
type TableDump struct {
	Table constants.LegacyTable
	Text  string
}

// RunResult is what one migration run produced.
type RunResult struct {
	Summary  *Summary
	Entities []entity.Canonical
}

// Runner executes one migration run: reference table first, then per-table
// tokenize+map passes in two phases (blocks and other independent tables,
// then the tables that resolve block refs), dedup through a run-scoped
// ledger, and optional persistence through the sink.
type Runner struct {
	seeds   []FarmSeed
	sink    Sink
	catalog CycleSource
	logger  *slog.Logger
}

type Option func(*Runner)

// WithSink persists produced entities through the canonical store.
func WithSink(s Sink) Option {
	return func(r *Runner) { r.sink = s }
}

// WithCatalog enables growth-cycle projection for blocks with a crop.
func WithCatalog(c CycleSource) Option {
	return func(r *Runner) { r.catalog = c }
}

func NewRunner(seeds []FarmSeed, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{seeds: seeds, logger: logger}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run processes every dump. Malformed rows, unresolved references and
// duplicates are counted and skipped; only structural failures (no farm
// seeds, sink errors) abort the run.
func (r *Runner) Run(ctx context.Context, dumps []TableDump) (*RunResult, error) {
	if len(r.seeds) == 0 {
		return nil, errors.New("reference table: no farm seeds configured")
	}
	farms := NewReferenceTable(r.seeds)
	mapper := NewMapper(farms, NewBlockIndex(), r.logger)
	ledger := NewLedger()

	result := &RunResult{Summary: NewSummary()}
	var mu sync.Mutex // guards result.Entities

	// Blocks must be fully ingested before the tables that link to them, so
	// the block index is complete when dependent passes resolve block refs.
	var primary, dependent []TableDump
	for _, dump := range dumps {
		switch dump.Table {
		case constants.TableArchivedCycles, constants.TableHarvests:
			dependent = append(dependent, dump)
		default:
			primary = append(primary, dump)
		}
	}

	for _, phase := range [][]TableDump{primary, dependent} {
		g, gctx := errgroup.WithContext(ctx)
		for _, dump := range phase {
			g.Go(func() error {
				entities, err := r.runPass(gctx, mapper, ledger, result.Summary, dump)
				if err != nil {
					return err
				}
				mu.Lock()
				result.Entities = append(result.Entities, entities...)
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	// Persistence is a boundary step after the pure transformation: writes
	// happen in dependency order so referencing records follow their targets.
	if r.sink != nil {
		if err := r.persist(ctx, result.Entities); err != nil {
			return nil, err
		}
	}

	totals := result.Summary.Totals()
	r.logger.Info("migration run complete",
		"parsed", totals.Parsed,
		"mapped", totals.Mapped,
		"distinct_keys", ledger.Len(),
	)
	return result, nil
}

// runPass tokenizes and maps one table's dump.
func (r *Runner) runPass(ctx context.Context, mapper *Mapper, ledger *Ledger, summary *Summary, dump TableDump) ([]entity.Canonical, error) {
	var scanner *Scanner
	switch dump.Table {
	case constants.TableBlocks:
		scanner = NewAnchoredScanner(dump.Text, blocksBlobAnchor, blocksTrailingFields)
	default:
		scanner = NewTupleScanner(dump.Text)
	}

	var out []entity.Canonical
	for {
		tuple, ok := scanner.Next()
		if !ok {
			break
		}
		summary.Parsed(dump.Table)

		rec, err := mapper.Map(dump.Table, tuple)
		if err != nil {
			var me *MappingError
			if errors.As(err, &me) {
				summary.Skipped(dump.Table, me.Reason)
				r.logger.Warn("tuple skipped", "table", dump.Table, "field", me.Field, "reason", me.Reason, "error", err)
				continue
			}
			return nil, fmt.Errorf("map %s: %w", dump.Table, err)
		}

		if !ledger.Observe(rec.EntityID()) {
			summary.Skipped(dump.Table, constants.SkipDuplicate)
			continue
		}

		if block, isBlock := rec.(*entity.Block); isBlock {
			r.projectBlock(ctx, block)
		}

		summary.Mapped(dump.Table)
		out = append(out, rec)
	}

	summary.SkippedN(dump.Table, constants.SkipMalformed, scanner.Malformed())
	return out, nil
}

// persistOrder writes parents before the records that reference them.
var persistOrder = []entity.Kind{
	entity.KindFarm,
	entity.KindPhysicalBlock,
	entity.KindBlock,
	entity.KindArchivedCycle,
	entity.KindHarvest,
	entity.KindPriceRecord,
}

func (r *Runner) persist(ctx context.Context, entities []entity.Canonical) error {
	for _, kind := range persistOrder {
		for _, rec := range entities {
			if rec.EntityKind() != kind {
				continue
			}
			if _, err := r.sink.UpsertIfAbsent(ctx, rec); err != nil {
				return fmt.Errorf("persist %s %s: %w", rec.EntityKind(), rec.EntityID(), err)
			}
		}
	}
	return nil
}

// projectBlock fills the advisory expected-status-changes map when the crop
// catalog knows the block's crop. The authoritative state is never touched.
func (r *Runner) projectBlock(ctx context.Context, block *entity.Block) {
	if r.catalog == nil || block.CropName == "" {
		return
	}
	cycle, err := r.catalog.GrowthCycleByName(ctx, block.CropName)
	if err != nil {
		r.logger.Warn("no growth cycle for crop", "block", block.LegacyCode, "crop", block.CropName, "error", err)
		return
	}
	changes, err := timeline.ProjectBlock(block, cycle)
	if err != nil {
		if errors.Is(err, timeline.ErrNoActiveCycle) {
			return // nothing to project for an empty block
		}
		r.logger.Warn("projection failed", "block", block.LegacyCode, "error", err)
		return
	}
	block.ExpectedChanges = changes
}
