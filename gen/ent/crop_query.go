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
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

// CropQuery is the builder for querying Crop entities.
type CropQuery struct {
	config
	ctx              *QueryContext
	order            []crop.OrderOption
	inters           []Interceptor
	predicates       []predicate.Crop
	withPriceRecords *PriceRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CropQuery builder.
func (_q *CropQuery) Where(ps ...predicate.Crop) *CropQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CropQuery) Limit(limit int) *CropQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CropQuery) Offset(offset int) *CropQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CropQuery) Unique(unique bool) *CropQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CropQuery) Order(o ...crop.OrderOption) *CropQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPriceRecords chains the current query on the "price_records" edge.
func (_q *CropQuery) QueryPriceRecords() *PriceRecordQuery {
	query := (&PriceRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(crop.Table, crop.FieldID, selector),
			sqlgraph.To(pricerecord.Table, pricerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crop.PriceRecordsTable, crop.PriceRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Crop entity from the query.
// Returns a *NotFoundError when no Crop was found.
func (_q *CropQuery) First(ctx context.Context) (*Crop, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{crop.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CropQuery) FirstX(ctx context.Context) *Crop {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Crop ID from the query.
// Returns a *NotFoundError when no Crop ID was found.
func (_q *CropQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{crop.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CropQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Crop entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Crop entity is found.
// Returns a *NotFoundError when no Crop entities are found.
func (_q *CropQuery) Only(ctx context.Context) (*Crop, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{crop.Label}
	default:
		return nil, &NotSingularError{crop.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CropQuery) OnlyX(ctx context.Context) *Crop {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Crop ID in the query.
// Returns a *NotSingularError when more than one Crop ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CropQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{crop.Label}
	default:
		err = &NotSingularError{crop.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CropQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Crops.
func (_q *CropQuery) All(ctx context.Context) ([]*Crop, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Crop, *CropQuery]()
	return withInterceptors[[]*Crop](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CropQuery) AllX(ctx context.Context) []*Crop {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Crop IDs.
func (_q *CropQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(crop.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CropQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CropQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CropQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CropQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CropQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CropQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CropQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CropQuery) Clone() *CropQuery {
	if _q == nil {
		return nil
	}
	return &CropQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]crop.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Crop{}, _q.predicates...),
		withPriceRecords: _q.withPriceRecords.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPriceRecords tells the query-builder to eager-load the nodes that are connected to
// the "price_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CropQuery) WithPriceRecords(opts ...func(*PriceRecordQuery)) *CropQuery {
	query := (&PriceRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPriceRecords = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Crop.Query().
//		GroupBy(crop.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CropQuery) GroupBy(field string, fields ...string) *CropGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CropGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = crop.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Crop.Query().
//		Select(crop.FieldName).
//		Scan(ctx, &v)
func (_q *CropQuery) Select(fields ...string) *CropSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CropSelect{CropQuery: _q}
	sbuild.label = crop.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CropSelect configured with the given aggregations.
func (_q *CropQuery) Aggregate(fns ...AggregateFunc) *CropSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CropQuery) prepareQuery(ctx context.Context) error {
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
		if !crop.ValidColumn(f) {
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

func (_q *CropQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Crop, error) {
	var (
		nodes       = []*Crop{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withPriceRecords != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Crop).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Crop{config: _q.config}
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
	if query := _q.withPriceRecords; query != nil {
		if err := _q.loadPriceRecords(ctx, query, nodes,
			func(n *Crop) { n.Edges.PriceRecords = []*PriceRecord{} },
			func(n *Crop, e *PriceRecord) { n.Edges.PriceRecords = append(n.Edges.PriceRecords, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CropQuery) loadPriceRecords(ctx context.Context, query *PriceRecordQuery, nodes []*Crop, init func(*Crop), assign func(*Crop, *PriceRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Crop)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pricerecord.FieldCropID)
	}
	query.Where(predicate.PriceRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(crop.PriceRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CropID
		if fk == nil {
			return fmt.Errorf(`foreign-key "crop_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "crop_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CropQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CropQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(crop.Table, crop.Columns, sqlgraph.NewFieldSpec(crop.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crop.FieldID)
		for i := range fields {
			if fields[i] != crop.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CropQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(crop.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = crop.Columns
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

// CropGroupBy is the group-by builder for Crop entities.
type CropGroupBy struct {
	selector
	build *CropQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CropGroupBy) Aggregate(fns ...AggregateFunc) *CropGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CropGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CropQuery, *CropGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CropGroupBy) sqlScan(ctx context.Context, root *CropQuery, v any) error {
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

// CropSelect is the builder for selecting fields of Crop entities.
type CropSelect struct {
	*CropQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CropSelect) Aggregate(fns ...AggregateFunc) *CropSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CropSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CropQuery, *CropSelect](ctx, _s.CropQuery, _s, _s.inters, v)
}

func (_s *CropSelect) sqlScan(ctx context.Context, root *CropQuery, v any) error {
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
