// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agrobase-io/agrobase/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ArchivedCycle is the client for interacting with the ArchivedCycle builders.
	ArchivedCycle *ArchivedCycleClient
	// Block is the client for interacting with the Block builders.
	Block *BlockClient
	// Crop is the client for interacting with the Crop builders.
	Crop *CropClient
	// Farm is the client for interacting with the Farm builders.
	Farm *FarmClient
	// Harvest is the client for interacting with the Harvest builders.
	Harvest *HarvestClient
	// PhysicalBlock is the client for interacting with the PhysicalBlock builders.
	PhysicalBlock *PhysicalBlockClient
	// PriceRecord is the client for interacting with the PriceRecord builders.
	PriceRecord *PriceRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ArchivedCycle = NewArchivedCycleClient(c.config)
	c.Block = NewBlockClient(c.config)
	c.Crop = NewCropClient(c.config)
	c.Farm = NewFarmClient(c.config)
	c.Harvest = NewHarvestClient(c.config)
	c.PhysicalBlock = NewPhysicalBlockClient(c.config)
	c.PriceRecord = NewPriceRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ArchivedCycle: NewArchivedCycleClient(cfg),
		Block:         NewBlockClient(cfg),
		Crop:          NewCropClient(cfg),
		Farm:          NewFarmClient(cfg),
		Harvest:       NewHarvestClient(cfg),
		PhysicalBlock: NewPhysicalBlockClient(cfg),
		PriceRecord:   NewPriceRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ArchivedCycle: NewArchivedCycleClient(cfg),
		Block:         NewBlockClient(cfg),
		Crop:          NewCropClient(cfg),
		Farm:          NewFarmClient(cfg),
		Harvest:       NewHarvestClient(cfg),
		PhysicalBlock: NewPhysicalBlockClient(cfg),
		PriceRecord:   NewPriceRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ArchivedCycle.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ArchivedCycle, c.Block, c.Crop, c.Farm, c.Harvest, c.PhysicalBlock,
		c.PriceRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ArchivedCycle, c.Block, c.Crop, c.Farm, c.Harvest, c.PhysicalBlock,
		c.PriceRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArchivedCycleMutation:
		return c.ArchivedCycle.mutate(ctx, m)
	case *BlockMutation:
		return c.Block.mutate(ctx, m)
	case *CropMutation:
		return c.Crop.mutate(ctx, m)
	case *FarmMutation:
		return c.Farm.mutate(ctx, m)
	case *HarvestMutation:
		return c.Harvest.mutate(ctx, m)
	case *PhysicalBlockMutation:
		return c.PhysicalBlock.mutate(ctx, m)
	case *PriceRecordMutation:
		return c.PriceRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArchivedCycleClient is a client for the ArchivedCycle schema.
type ArchivedCycleClient struct {
	config
}

// NewArchivedCycleClient returns a client for the ArchivedCycle from the given config.
func NewArchivedCycleClient(c config) *ArchivedCycleClient {
	return &ArchivedCycleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `archivedcycle.Hooks(f(g(h())))`.
func (c *ArchivedCycleClient) Use(hooks ...Hook) {
	c.hooks.ArchivedCycle = append(c.hooks.ArchivedCycle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `archivedcycle.Intercept(f(g(h())))`.
func (c *ArchivedCycleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ArchivedCycle = append(c.inters.ArchivedCycle, interceptors...)
}

// Create returns a builder for creating a ArchivedCycle entity.
func (c *ArchivedCycleClient) Create() *ArchivedCycleCreate {
	mutation := newArchivedCycleMutation(c.config, OpCreate)
	return &ArchivedCycleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ArchivedCycle entities.
func (c *ArchivedCycleClient) CreateBulk(builders ...*ArchivedCycleCreate) *ArchivedCycleCreateBulk {
	return &ArchivedCycleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArchivedCycleClient) MapCreateBulk(slice any, setFunc func(*ArchivedCycleCreate, int)) *ArchivedCycleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArchivedCycleCreateBulk{err: fmt.Errorf("calling to ArchivedCycleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArchivedCycleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArchivedCycleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ArchivedCycle.
func (c *ArchivedCycleClient) Update() *ArchivedCycleUpdate {
	mutation := newArchivedCycleMutation(c.config, OpUpdate)
	return &ArchivedCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArchivedCycleClient) UpdateOne(_m *ArchivedCycle) *ArchivedCycleUpdateOne {
	mutation := newArchivedCycleMutation(c.config, OpUpdateOne, withArchivedCycle(_m))
	return &ArchivedCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArchivedCycleClient) UpdateOneID(id uuid.UUID) *ArchivedCycleUpdateOne {
	mutation := newArchivedCycleMutation(c.config, OpUpdateOne, withArchivedCycleID(id))
	return &ArchivedCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ArchivedCycle.
func (c *ArchivedCycleClient) Delete() *ArchivedCycleDelete {
	mutation := newArchivedCycleMutation(c.config, OpDelete)
	return &ArchivedCycleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArchivedCycleClient) DeleteOne(_m *ArchivedCycle) *ArchivedCycleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArchivedCycleClient) DeleteOneID(id uuid.UUID) *ArchivedCycleDeleteOne {
	builder := c.Delete().Where(archivedcycle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArchivedCycleDeleteOne{builder}
}

// Query returns a query builder for ArchivedCycle.
func (c *ArchivedCycleClient) Query() *ArchivedCycleQuery {
	return &ArchivedCycleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArchivedCycle},
		inters: c.Interceptors(),
	}
}

// Get returns a ArchivedCycle entity by its id.
func (c *ArchivedCycleClient) Get(ctx context.Context, id uuid.UUID) (*ArchivedCycle, error) {
	return c.Query().Where(archivedcycle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArchivedCycleClient) GetX(ctx context.Context, id uuid.UUID) *ArchivedCycle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlock queries the block edge of a ArchivedCycle.
func (c *ArchivedCycleClient) QueryBlock(_m *ArchivedCycle) *BlockQuery {
	query := (&BlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(archivedcycle.Table, archivedcycle.FieldID, id),
			sqlgraph.To(block.Table, block.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, archivedcycle.BlockTable, archivedcycle.BlockColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArchivedCycleClient) Hooks() []Hook {
	return c.hooks.ArchivedCycle
}

// Interceptors returns the client interceptors.
func (c *ArchivedCycleClient) Interceptors() []Interceptor {
	return c.inters.ArchivedCycle
}

func (c *ArchivedCycleClient) mutate(ctx context.Context, m *ArchivedCycleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArchivedCycleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArchivedCycleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArchivedCycleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArchivedCycleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ArchivedCycle mutation op: %q", m.Op())
	}
}

// BlockClient is a client for the Block schema.
type BlockClient struct {
	config
}

// NewBlockClient returns a client for the Block from the given config.
func NewBlockClient(c config) *BlockClient {
	return &BlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `block.Hooks(f(g(h())))`.
func (c *BlockClient) Use(hooks ...Hook) {
	c.hooks.Block = append(c.hooks.Block, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `block.Intercept(f(g(h())))`.
func (c *BlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.Block = append(c.inters.Block, interceptors...)
}

// Create returns a builder for creating a Block entity.
func (c *BlockClient) Create() *BlockCreate {
	mutation := newBlockMutation(c.config, OpCreate)
	return &BlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Block entities.
func (c *BlockClient) CreateBulk(builders ...*BlockCreate) *BlockCreateBulk {
	return &BlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlockClient) MapCreateBulk(slice any, setFunc func(*BlockCreate, int)) *BlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlockCreateBulk{err: fmt.Errorf("calling to BlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Block.
func (c *BlockClient) Update() *BlockUpdate {
	mutation := newBlockMutation(c.config, OpUpdate)
	return &BlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlockClient) UpdateOne(_m *Block) *BlockUpdateOne {
	mutation := newBlockMutation(c.config, OpUpdateOne, withBlock(_m))
	return &BlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlockClient) UpdateOneID(id uuid.UUID) *BlockUpdateOne {
	mutation := newBlockMutation(c.config, OpUpdateOne, withBlockID(id))
	return &BlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Block.
func (c *BlockClient) Delete() *BlockDelete {
	mutation := newBlockMutation(c.config, OpDelete)
	return &BlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlockClient) DeleteOne(_m *Block) *BlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlockClient) DeleteOneID(id uuid.UUID) *BlockDeleteOne {
	builder := c.Delete().Where(block.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlockDeleteOne{builder}
}

// Query returns a query builder for Block.
func (c *BlockClient) Query() *BlockQuery {
	return &BlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a Block entity by its id.
func (c *BlockClient) Get(ctx context.Context, id uuid.UUID) (*Block, error) {
	return c.Query().Where(block.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlockClient) GetX(ctx context.Context, id uuid.UUID) *Block {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFarm queries the farm edge of a Block.
func (c *BlockClient) QueryFarm(_m *Block) *FarmQuery {
	query := (&FarmClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(block.Table, block.FieldID, id),
			sqlgraph.To(farm.Table, farm.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, block.FarmTable, block.FarmColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhysicalBlock queries the physical_block edge of a Block.
func (c *BlockClient) QueryPhysicalBlock(_m *Block) *PhysicalBlockQuery {
	query := (&PhysicalBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(block.Table, block.FieldID, id),
			sqlgraph.To(physicalblock.Table, physicalblock.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, block.PhysicalBlockTable, block.PhysicalBlockColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArchivedCycles queries the archived_cycles edge of a Block.
func (c *BlockClient) QueryArchivedCycles(_m *Block) *ArchivedCycleQuery {
	query := (&ArchivedCycleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(block.Table, block.FieldID, id),
			sqlgraph.To(archivedcycle.Table, archivedcycle.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, block.ArchivedCyclesTable, block.ArchivedCyclesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHarvests queries the harvests edge of a Block.
func (c *BlockClient) QueryHarvests(_m *Block) *HarvestQuery {
	query := (&HarvestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(block.Table, block.FieldID, id),
			sqlgraph.To(harvest.Table, harvest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, block.HarvestsTable, block.HarvestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BlockClient) Hooks() []Hook {
	return c.hooks.Block
}

// Interceptors returns the client interceptors.
func (c *BlockClient) Interceptors() []Interceptor {
	return c.inters.Block
}

func (c *BlockClient) mutate(ctx context.Context, m *BlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Block mutation op: %q", m.Op())
	}
}

// CropClient is a client for the Crop schema.
type CropClient struct {
	config
}

// NewCropClient returns a client for the Crop from the given config.
func NewCropClient(c config) *CropClient {
	return &CropClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crop.Hooks(f(g(h())))`.
func (c *CropClient) Use(hooks ...Hook) {
	c.hooks.Crop = append(c.hooks.Crop, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crop.Intercept(f(g(h())))`.
func (c *CropClient) Intercept(interceptors ...Interceptor) {
	c.inters.Crop = append(c.inters.Crop, interceptors...)
}

// Create returns a builder for creating a Crop entity.
func (c *CropClient) Create() *CropCreate {
	mutation := newCropMutation(c.config, OpCreate)
	return &CropCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Crop entities.
func (c *CropClient) CreateBulk(builders ...*CropCreate) *CropCreateBulk {
	return &CropCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CropClient) MapCreateBulk(slice any, setFunc func(*CropCreate, int)) *CropCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CropCreateBulk{err: fmt.Errorf("calling to CropClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CropCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CropCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Crop.
func (c *CropClient) Update() *CropUpdate {
	mutation := newCropMutation(c.config, OpUpdate)
	return &CropUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CropClient) UpdateOne(_m *Crop) *CropUpdateOne {
	mutation := newCropMutation(c.config, OpUpdateOne, withCrop(_m))
	return &CropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CropClient) UpdateOneID(id uuid.UUID) *CropUpdateOne {
	mutation := newCropMutation(c.config, OpUpdateOne, withCropID(id))
	return &CropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Crop.
func (c *CropClient) Delete() *CropDelete {
	mutation := newCropMutation(c.config, OpDelete)
	return &CropDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CropClient) DeleteOne(_m *Crop) *CropDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CropClient) DeleteOneID(id uuid.UUID) *CropDeleteOne {
	builder := c.Delete().Where(crop.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CropDeleteOne{builder}
}

// Query returns a query builder for Crop.
func (c *CropClient) Query() *CropQuery {
	return &CropQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCrop},
		inters: c.Interceptors(),
	}
}

// Get returns a Crop entity by its id.
func (c *CropClient) Get(ctx context.Context, id uuid.UUID) (*Crop, error) {
	return c.Query().Where(crop.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CropClient) GetX(ctx context.Context, id uuid.UUID) *Crop {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPriceRecords queries the price_records edge of a Crop.
func (c *CropClient) QueryPriceRecords(_m *Crop) *PriceRecordQuery {
	query := (&PriceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crop.Table, crop.FieldID, id),
			sqlgraph.To(pricerecord.Table, pricerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, crop.PriceRecordsTable, crop.PriceRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CropClient) Hooks() []Hook {
	return c.hooks.Crop
}

// Interceptors returns the client interceptors.
func (c *CropClient) Interceptors() []Interceptor {
	return c.inters.Crop
}

func (c *CropClient) mutate(ctx context.Context, m *CropMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CropCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CropUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CropUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CropDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Crop mutation op: %q", m.Op())
	}
}

// FarmClient is a client for the Farm schema.
type FarmClient struct {
	config
}

// NewFarmClient returns a client for the Farm from the given config.
func NewFarmClient(c config) *FarmClient {
	return &FarmClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `farm.Hooks(f(g(h())))`.
func (c *FarmClient) Use(hooks ...Hook) {
	c.hooks.Farm = append(c.hooks.Farm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `farm.Intercept(f(g(h())))`.
func (c *FarmClient) Intercept(interceptors ...Interceptor) {
	c.inters.Farm = append(c.inters.Farm, interceptors...)
}

// Create returns a builder for creating a Farm entity.
func (c *FarmClient) Create() *FarmCreate {
	mutation := newFarmMutation(c.config, OpCreate)
	return &FarmCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Farm entities.
func (c *FarmClient) CreateBulk(builders ...*FarmCreate) *FarmCreateBulk {
	return &FarmCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FarmClient) MapCreateBulk(slice any, setFunc func(*FarmCreate, int)) *FarmCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FarmCreateBulk{err: fmt.Errorf("calling to FarmClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FarmCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FarmCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Farm.
func (c *FarmClient) Update() *FarmUpdate {
	mutation := newFarmMutation(c.config, OpUpdate)
	return &FarmUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FarmClient) UpdateOne(_m *Farm) *FarmUpdateOne {
	mutation := newFarmMutation(c.config, OpUpdateOne, withFarm(_m))
	return &FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FarmClient) UpdateOneID(id uuid.UUID) *FarmUpdateOne {
	mutation := newFarmMutation(c.config, OpUpdateOne, withFarmID(id))
	return &FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Farm.
func (c *FarmClient) Delete() *FarmDelete {
	mutation := newFarmMutation(c.config, OpDelete)
	return &FarmDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FarmClient) DeleteOne(_m *Farm) *FarmDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FarmClient) DeleteOneID(id uuid.UUID) *FarmDeleteOne {
	builder := c.Delete().Where(farm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FarmDeleteOne{builder}
}

// Query returns a query builder for Farm.
func (c *FarmClient) Query() *FarmQuery {
	return &FarmQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFarm},
		inters: c.Interceptors(),
	}
}

// Get returns a Farm entity by its id.
func (c *FarmClient) Get(ctx context.Context, id uuid.UUID) (*Farm, error) {
	return c.Query().Where(farm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FarmClient) GetX(ctx context.Context, id uuid.UUID) *Farm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPhysicalBlocks queries the physical_blocks edge of a Farm.
func (c *FarmClient) QueryPhysicalBlocks(_m *Farm) *PhysicalBlockQuery {
	query := (&PhysicalBlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farm.Table, farm.FieldID, id),
			sqlgraph.To(physicalblock.Table, physicalblock.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, farm.PhysicalBlocksTable, farm.PhysicalBlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlocks queries the blocks edge of a Farm.
func (c *FarmClient) QueryBlocks(_m *Farm) *BlockQuery {
	query := (&BlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(farm.Table, farm.FieldID, id),
			sqlgraph.To(block.Table, block.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, farm.BlocksTable, farm.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FarmClient) Hooks() []Hook {
	return c.hooks.Farm
}

// Interceptors returns the client interceptors.
func (c *FarmClient) Interceptors() []Interceptor {
	return c.inters.Farm
}

func (c *FarmClient) mutate(ctx context.Context, m *FarmMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FarmCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FarmUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FarmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FarmDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Farm mutation op: %q", m.Op())
	}
}

// HarvestClient is a client for the Harvest schema.
type HarvestClient struct {
	config
}

// NewHarvestClient returns a client for the Harvest from the given config.
func NewHarvestClient(c config) *HarvestClient {
	return &HarvestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `harvest.Hooks(f(g(h())))`.
func (c *HarvestClient) Use(hooks ...Hook) {
	c.hooks.Harvest = append(c.hooks.Harvest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `harvest.Intercept(f(g(h())))`.
func (c *HarvestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Harvest = append(c.inters.Harvest, interceptors...)
}

// Create returns a builder for creating a Harvest entity.
func (c *HarvestClient) Create() *HarvestCreate {
	mutation := newHarvestMutation(c.config, OpCreate)
	return &HarvestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Harvest entities.
func (c *HarvestClient) CreateBulk(builders ...*HarvestCreate) *HarvestCreateBulk {
	return &HarvestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HarvestClient) MapCreateBulk(slice any, setFunc func(*HarvestCreate, int)) *HarvestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HarvestCreateBulk{err: fmt.Errorf("calling to HarvestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HarvestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HarvestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Harvest.
func (c *HarvestClient) Update() *HarvestUpdate {
	mutation := newHarvestMutation(c.config, OpUpdate)
	return &HarvestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HarvestClient) UpdateOne(_m *Harvest) *HarvestUpdateOne {
	mutation := newHarvestMutation(c.config, OpUpdateOne, withHarvest(_m))
	return &HarvestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HarvestClient) UpdateOneID(id uuid.UUID) *HarvestUpdateOne {
	mutation := newHarvestMutation(c.config, OpUpdateOne, withHarvestID(id))
	return &HarvestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Harvest.
func (c *HarvestClient) Delete() *HarvestDelete {
	mutation := newHarvestMutation(c.config, OpDelete)
	return &HarvestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HarvestClient) DeleteOne(_m *Harvest) *HarvestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HarvestClient) DeleteOneID(id uuid.UUID) *HarvestDeleteOne {
	builder := c.Delete().Where(harvest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HarvestDeleteOne{builder}
}

// Query returns a query builder for Harvest.
func (c *HarvestClient) Query() *HarvestQuery {
	return &HarvestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHarvest},
		inters: c.Interceptors(),
	}
}

// Get returns a Harvest entity by its id.
func (c *HarvestClient) Get(ctx context.Context, id uuid.UUID) (*Harvest, error) {
	return c.Query().Where(harvest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HarvestClient) GetX(ctx context.Context, id uuid.UUID) *Harvest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBlock queries the block edge of a Harvest.
func (c *HarvestClient) QueryBlock(_m *Harvest) *BlockQuery {
	query := (&BlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(harvest.Table, harvest.FieldID, id),
			sqlgraph.To(block.Table, block.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, harvest.BlockTable, harvest.BlockColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HarvestClient) Hooks() []Hook {
	return c.hooks.Harvest
}

// Interceptors returns the client interceptors.
func (c *HarvestClient) Interceptors() []Interceptor {
	return c.inters.Harvest
}

func (c *HarvestClient) mutate(ctx context.Context, m *HarvestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HarvestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HarvestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HarvestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HarvestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Harvest mutation op: %q", m.Op())
	}
}

// PhysicalBlockClient is a client for the PhysicalBlock schema.
type PhysicalBlockClient struct {
	config
}

// NewPhysicalBlockClient returns a client for the PhysicalBlock from the given config.
func NewPhysicalBlockClient(c config) *PhysicalBlockClient {
	return &PhysicalBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `physicalblock.Hooks(f(g(h())))`.
func (c *PhysicalBlockClient) Use(hooks ...Hook) {
	c.hooks.PhysicalBlock = append(c.hooks.PhysicalBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `physicalblock.Intercept(f(g(h())))`.
func (c *PhysicalBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhysicalBlock = append(c.inters.PhysicalBlock, interceptors...)
}

// Create returns a builder for creating a PhysicalBlock entity.
func (c *PhysicalBlockClient) Create() *PhysicalBlockCreate {
	mutation := newPhysicalBlockMutation(c.config, OpCreate)
	return &PhysicalBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhysicalBlock entities.
func (c *PhysicalBlockClient) CreateBulk(builders ...*PhysicalBlockCreate) *PhysicalBlockCreateBulk {
	return &PhysicalBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhysicalBlockClient) MapCreateBulk(slice any, setFunc func(*PhysicalBlockCreate, int)) *PhysicalBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhysicalBlockCreateBulk{err: fmt.Errorf("calling to PhysicalBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhysicalBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhysicalBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhysicalBlock.
func (c *PhysicalBlockClient) Update() *PhysicalBlockUpdate {
	mutation := newPhysicalBlockMutation(c.config, OpUpdate)
	return &PhysicalBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhysicalBlockClient) UpdateOne(_m *PhysicalBlock) *PhysicalBlockUpdateOne {
	mutation := newPhysicalBlockMutation(c.config, OpUpdateOne, withPhysicalBlock(_m))
	return &PhysicalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhysicalBlockClient) UpdateOneID(id uuid.UUID) *PhysicalBlockUpdateOne {
	mutation := newPhysicalBlockMutation(c.config, OpUpdateOne, withPhysicalBlockID(id))
	return &PhysicalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhysicalBlock.
func (c *PhysicalBlockClient) Delete() *PhysicalBlockDelete {
	mutation := newPhysicalBlockMutation(c.config, OpDelete)
	return &PhysicalBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhysicalBlockClient) DeleteOne(_m *PhysicalBlock) *PhysicalBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhysicalBlockClient) DeleteOneID(id uuid.UUID) *PhysicalBlockDeleteOne {
	builder := c.Delete().Where(physicalblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhysicalBlockDeleteOne{builder}
}

// Query returns a query builder for PhysicalBlock.
func (c *PhysicalBlockClient) Query() *PhysicalBlockQuery {
	return &PhysicalBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhysicalBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a PhysicalBlock entity by its id.
func (c *PhysicalBlockClient) Get(ctx context.Context, id uuid.UUID) (*PhysicalBlock, error) {
	return c.Query().Where(physicalblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhysicalBlockClient) GetX(ctx context.Context, id uuid.UUID) *PhysicalBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFarm queries the farm edge of a PhysicalBlock.
func (c *PhysicalBlockClient) QueryFarm(_m *PhysicalBlock) *FarmQuery {
	query := (&FarmClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalblock.Table, physicalblock.FieldID, id),
			sqlgraph.To(farm.Table, farm.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, physicalblock.FarmTable, physicalblock.FarmColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBlocks queries the blocks edge of a PhysicalBlock.
func (c *PhysicalBlockClient) QueryBlocks(_m *PhysicalBlock) *BlockQuery {
	query := (&BlockClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalblock.Table, physicalblock.FieldID, id),
			sqlgraph.To(block.Table, block.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, physicalblock.BlocksTable, physicalblock.BlocksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhysicalBlockClient) Hooks() []Hook {
	return c.hooks.PhysicalBlock
}

// Interceptors returns the client interceptors.
func (c *PhysicalBlockClient) Interceptors() []Interceptor {
	return c.inters.PhysicalBlock
}

func (c *PhysicalBlockClient) mutate(ctx context.Context, m *PhysicalBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhysicalBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhysicalBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhysicalBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhysicalBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhysicalBlock mutation op: %q", m.Op())
	}
}

// PriceRecordClient is a client for the PriceRecord schema.
type PriceRecordClient struct {
	config
}

// NewPriceRecordClient returns a client for the PriceRecord from the given config.
func NewPriceRecordClient(c config) *PriceRecordClient {
	return &PriceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pricerecord.Hooks(f(g(h())))`.
func (c *PriceRecordClient) Use(hooks ...Hook) {
	c.hooks.PriceRecord = append(c.hooks.PriceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pricerecord.Intercept(f(g(h())))`.
func (c *PriceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PriceRecord = append(c.inters.PriceRecord, interceptors...)
}

// Create returns a builder for creating a PriceRecord entity.
func (c *PriceRecordClient) Create() *PriceRecordCreate {
	mutation := newPriceRecordMutation(c.config, OpCreate)
	return &PriceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PriceRecord entities.
func (c *PriceRecordClient) CreateBulk(builders ...*PriceRecordCreate) *PriceRecordCreateBulk {
	return &PriceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PriceRecordClient) MapCreateBulk(slice any, setFunc func(*PriceRecordCreate, int)) *PriceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PriceRecordCreateBulk{err: fmt.Errorf("calling to PriceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PriceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PriceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PriceRecord.
func (c *PriceRecordClient) Update() *PriceRecordUpdate {
	mutation := newPriceRecordMutation(c.config, OpUpdate)
	return &PriceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PriceRecordClient) UpdateOne(_m *PriceRecord) *PriceRecordUpdateOne {
	mutation := newPriceRecordMutation(c.config, OpUpdateOne, withPriceRecord(_m))
	return &PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PriceRecordClient) UpdateOneID(id uuid.UUID) *PriceRecordUpdateOne {
	mutation := newPriceRecordMutation(c.config, OpUpdateOne, withPriceRecordID(id))
	return &PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PriceRecord.
func (c *PriceRecordClient) Delete() *PriceRecordDelete {
	mutation := newPriceRecordMutation(c.config, OpDelete)
	return &PriceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PriceRecordClient) DeleteOne(_m *PriceRecord) *PriceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PriceRecordClient) DeleteOneID(id uuid.UUID) *PriceRecordDeleteOne {
	builder := c.Delete().Where(pricerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PriceRecordDeleteOne{builder}
}

// Query returns a query builder for PriceRecord.
func (c *PriceRecordClient) Query() *PriceRecordQuery {
	return &PriceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePriceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PriceRecord entity by its id.
func (c *PriceRecordClient) Get(ctx context.Context, id uuid.UUID) (*PriceRecord, error) {
	return c.Query().Where(pricerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PriceRecordClient) GetX(ctx context.Context, id uuid.UUID) *PriceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCrop queries the crop edge of a PriceRecord.
func (c *PriceRecordClient) QueryCrop(_m *PriceRecord) *CropQuery {
	query := (&CropClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pricerecord.Table, pricerecord.FieldID, id),
			sqlgraph.To(crop.Table, crop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pricerecord.CropTable, pricerecord.CropColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PriceRecordClient) Hooks() []Hook {
	return c.hooks.PriceRecord
}

// Interceptors returns the client interceptors.
func (c *PriceRecordClient) Interceptors() []Interceptor {
	return c.inters.PriceRecord
}

func (c *PriceRecordClient) mutate(ctx context.Context, m *PriceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PriceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PriceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PriceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PriceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PriceRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ArchivedCycle, Block, Crop, Farm, Harvest, PhysicalBlock, PriceRecord []ent.Hook
	}
	inters struct {
		ArchivedCycle, Block, Crop, Farm, Harvest, PhysicalBlock,
		PriceRecord []ent.Interceptor
	}
)
