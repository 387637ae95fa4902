// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// PhysicalBlockQuery is the builder for querying PhysicalBlock entities.
type PhysicalBlockQuery struct {
	config
	ctx        *QueryContext
	order      []physicalblock.OrderOption
	inters     []Interceptor
	predicates []predicate.PhysicalBlock
	withFarm   *FarmQuery
	withBlocks *BlockQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PhysicalBlockQuery builder.
func (_q *PhysicalBlockQuery) Where(ps ...predicate.PhysicalBlock) *PhysicalBlockQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PhysicalBlockQuery) Limit(limit int) *PhysicalBlockQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PhysicalBlockQuery) Offset(offset int) *PhysicalBlockQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PhysicalBlockQuery) Unique(unique bool) *PhysicalBlockQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PhysicalBlockQuery) Order(o ...physicalblock.OrderOption) *PhysicalBlockQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFarm chains the current query on the "farm" edge.
func (_q *PhysicalBlockQuery) QueryFarm() *FarmQuery {
	query := (&FarmClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalblock.Table, physicalblock.FieldID, selector),
			sqlgraph.To(farm.Table, farm.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, physicalblock.FarmTable, physicalblock.FarmColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBlocks chains the current query on the "blocks" edge.
func (_q *PhysicalBlockQuery) QueryBlocks() *BlockQuery {
	query := (&BlockClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalblock.Table, physicalblock.FieldID, selector),
			sqlgraph.To(block.Table, block.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, physicalblock.BlocksTable, physicalblock.BlocksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PhysicalBlock entity from the query.
// Returns a *NotFoundError when no PhysicalBlock was found.
func (_q *PhysicalBlockQuery) First(ctx context.Context) (*PhysicalBlock, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{physicalblock.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PhysicalBlockQuery) FirstX(ctx context.Context) *PhysicalBlock {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PhysicalBlock ID from the query.
// Returns a *NotFoundError when no PhysicalBlock ID was found.
func (_q *PhysicalBlockQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{physicalblock.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PhysicalBlockQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PhysicalBlock entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PhysicalBlock entity is found.
// Returns a *NotFoundError when no PhysicalBlock entities are found.
func (_q *PhysicalBlockQuery) Only(ctx context.Context) (*PhysicalBlock, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{physicalblock.Label}
	default:
		return nil, &NotSingularError{physicalblock.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PhysicalBlockQuery) OnlyX(ctx context.Context) *PhysicalBlock {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PhysicalBlock ID in the query.
// Returns a *NotSingularError when more than one PhysicalBlock ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PhysicalBlockQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{physicalblock.Label}
	default:
		err = &NotSingularError{physicalblock.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PhysicalBlockQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PhysicalBlocks.
func (_q *PhysicalBlockQuery) All(ctx context.Context) ([]*PhysicalBlock, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PhysicalBlock, *PhysicalBlockQuery]()
	return withInterceptors[[]*PhysicalBlock](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PhysicalBlockQuery) AllX(ctx context.Context) []*PhysicalBlock {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PhysicalBlock IDs.
func (_q *PhysicalBlockQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(physicalblock.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PhysicalBlockQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PhysicalBlockQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PhysicalBlockQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PhysicalBlockQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PhysicalBlockQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PhysicalBlockQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PhysicalBlockQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PhysicalBlockQuery) Clone() *PhysicalBlockQuery {
	if _q == nil {
		return nil
	}
	return &PhysicalBlockQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]physicalblock.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PhysicalBlock{}, _q.predicates...),
		withFarm:   _q.withFarm.Clone(),
		withBlocks: _q.withBlocks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFarm tells the query-builder to eager-load the nodes that are connected to
// the "farm" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PhysicalBlockQuery) WithFarm(opts ...func(*FarmQuery)) *PhysicalBlockQuery {
	query := (&FarmClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFarm = query
	return _q
}

// WithBlocks tells the query-builder to eager-load the nodes that are connected to
// the "blocks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PhysicalBlockQuery) WithBlocks(opts ...func(*BlockQuery)) *PhysicalBlockQuery {
	query := (&BlockClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBlocks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FarmID uuid.UUID `json:"farm_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PhysicalBlock.Query().
//		GroupBy(physicalblock.FieldFarmID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PhysicalBlockQuery) GroupBy(field string, fields ...string) *PhysicalBlockGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PhysicalBlockGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = physicalblock.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FarmID uuid.UUID `json:"farm_id,omitempty"`
//	}
//
//	client.PhysicalBlock.Query().
//		Select(physicalblock.FieldFarmID).
//		Scan(ctx, &v)
func (_q *PhysicalBlockQuery) Select(fields ...string) *PhysicalBlockSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PhysicalBlockSelect{PhysicalBlockQuery: _q}
	sbuild.label = physicalblock.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PhysicalBlockSelect configured with the given aggregations.
func (_q *PhysicalBlockQuery) Aggregate(fns ...AggregateFunc) *PhysicalBlockSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PhysicalBlockQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !physicalblock.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PhysicalBlockQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PhysicalBlock, error) {
	var (
		nodes       = []*PhysicalBlock{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withFarm != nil,
			_q.withBlocks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PhysicalBlock).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PhysicalBlock{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFarm; query != nil {
		if err := _q.loadFarm(ctx, query, nodes, nil,
			func(n *PhysicalBlock, e *Farm) { n.Edges.Farm = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBlocks; query != nil {
		if err := _q.loadBlocks(ctx, query, nodes,
			func(n *PhysicalBlock) { n.Edges.Blocks = []*Block{} },
			func(n *PhysicalBlock, e *Block) { n.Edges.Blocks = append(n.Edges.Blocks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PhysicalBlockQuery) loadFarm(ctx context.Context, query *FarmQuery, nodes []*PhysicalBlock, init func(*PhysicalBlock), assign func(*PhysicalBlock, *Farm)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PhysicalBlock)
	for i := range nodes {
		fk := nodes[i].FarmID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(farm.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "farm_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PhysicalBlockQuery) loadBlocks(ctx context.Context, query *BlockQuery, nodes []*PhysicalBlock, init func(*PhysicalBlock), assign func(*PhysicalBlock, *Block)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PhysicalBlock)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(block.FieldPhysicalBlockID)
	}
	query.Where(predicate.Block(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(physicalblock.BlocksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PhysicalBlockID
		if fk == nil {
			return fmt.Errorf(`foreign-key "physical_block_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "physical_block_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PhysicalBlockQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PhysicalBlockQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(physicalblock.Table, physicalblock.Columns, sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physicalblock.FieldID)
		for i := range fields {
			if fields[i] != physicalblock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFarm != nil {
			_spec.Node.AddColumnOnce(physicalblock.FieldFarmID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PhysicalBlockQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(physicalblock.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = physicalblock.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PhysicalBlockGroupBy is the group-by builder for PhysicalBlock entities.
type PhysicalBlockGroupBy struct {
	selector
	build *PhysicalBlockQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PhysicalBlockGroupBy) Aggregate(fns ...AggregateFunc) *PhysicalBlockGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PhysicalBlockGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhysicalBlockQuery, *PhysicalBlockGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PhysicalBlockGroupBy) sqlScan(ctx context.Context, root *PhysicalBlockQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PhysicalBlockSelect is the builder for selecting fields of PhysicalBlock entities.
type PhysicalBlockSelect struct {
	*PhysicalBlockQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PhysicalBlockSelect) Aggregate(fns ...AggregateFunc) *PhysicalBlockSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PhysicalBlockSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhysicalBlockQuery, *PhysicalBlockSelect](ctx, _s.PhysicalBlockQuery, _s, _s.inters, v)
}

func (_s *PhysicalBlockSelect) sqlScan(ctx context.Context, root *PhysicalBlockQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
