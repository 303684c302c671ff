// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/athletiq/athletiq_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryassessment"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryreport"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryshortmessage"
	"github.com/athletiq/athletiq_backend/internal/repo/injuryticket"
	"github.com/athletiq/athletiq_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InjuryAssessment is the client for interacting with the InjuryAssessment builders.
	InjuryAssessment *InjuryAssessmentClient
	// InjuryReport is the client for interacting with the InjuryReport builders.
	InjuryReport *InjuryReportClient
	// InjuryShortMessage is the client for interacting with the InjuryShortMessage builders.
	InjuryShortMessage *InjuryShortMessageClient
	// InjuryTicket is the client for interacting with the InjuryTicket builders.
	InjuryTicket *InjuryTicketClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InjuryAssessment = NewInjuryAssessmentClient(c.config)
	c.InjuryReport = NewInjuryReportClient(c.config)
	c.InjuryShortMessage = NewInjuryShortMessageClient(c.config)
	c.InjuryTicket = NewInjuryTicketClient(c.config)
	c.User = NewUserClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		InjuryAssessment:   NewInjuryAssessmentClient(cfg),
		InjuryReport:       NewInjuryReportClient(cfg),
		InjuryShortMessage: NewInjuryShortMessageClient(cfg),
		InjuryTicket:       NewInjuryTicketClient(cfg),
		User:               NewUserClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		InjuryAssessment:   NewInjuryAssessmentClient(cfg),
		InjuryReport:       NewInjuryReportClient(cfg),
		InjuryShortMessage: NewInjuryShortMessageClient(cfg),
		InjuryTicket:       NewInjuryTicketClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InjuryAssessment.
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
	c.InjuryAssessment.Use(hooks...)
	c.InjuryReport.Use(hooks...)
	c.InjuryShortMessage.Use(hooks...)
	c.InjuryTicket.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.InjuryAssessment.Intercept(interceptors...)
	c.InjuryReport.Intercept(interceptors...)
	c.InjuryShortMessage.Intercept(interceptors...)
	c.InjuryTicket.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InjuryAssessmentMutation:
		return c.InjuryAssessment.mutate(ctx, m)
	case *InjuryReportMutation:
		return c.InjuryReport.mutate(ctx, m)
	case *InjuryShortMessageMutation:
		return c.InjuryShortMessage.mutate(ctx, m)
	case *InjuryTicketMutation:
		return c.InjuryTicket.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// InjuryAssessmentClient is a client for the InjuryAssessment schema.
type InjuryAssessmentClient struct {
	config
}

// NewInjuryAssessmentClient returns a client for the InjuryAssessment from the given config.
func NewInjuryAssessmentClient(c config) *InjuryAssessmentClient {
	return &InjuryAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `injuryassessment.Hooks(f(g(h())))`.
func (c *InjuryAssessmentClient) Use(hooks ...Hook) {
	c.hooks.InjuryAssessment = append(c.hooks.InjuryAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `injuryassessment.Intercept(f(g(h())))`.
func (c *InjuryAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.InjuryAssessment = append(c.inters.InjuryAssessment, interceptors...)
}

// Create returns a builder for creating a InjuryAssessment entity.
func (c *InjuryAssessmentClient) Create() *InjuryAssessmentCreate {
	mutation := newInjuryAssessmentMutation(c.config, OpCreate)
	return &InjuryAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InjuryAssessment entities.
func (c *InjuryAssessmentClient) CreateBulk(builders ...*InjuryAssessmentCreate) *InjuryAssessmentCreateBulk {
	return &InjuryAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InjuryAssessmentClient) MapCreateBulk(slice any, setFunc func(*InjuryAssessmentCreate, int)) *InjuryAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InjuryAssessmentCreateBulk{err: fmt.Errorf("calling to InjuryAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InjuryAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InjuryAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InjuryAssessment.
func (c *InjuryAssessmentClient) Update() *InjuryAssessmentUpdate {
	mutation := newInjuryAssessmentMutation(c.config, OpUpdate)
	return &InjuryAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InjuryAssessmentClient) UpdateOne(_m *InjuryAssessment) *InjuryAssessmentUpdateOne {
	mutation := newInjuryAssessmentMutation(c.config, OpUpdateOne, withInjuryAssessment(_m))
	return &InjuryAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InjuryAssessmentClient) UpdateOneID(id uuid.UUID) *InjuryAssessmentUpdateOne {
	mutation := newInjuryAssessmentMutation(c.config, OpUpdateOne, withInjuryAssessmentID(id))
	return &InjuryAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InjuryAssessment.
func (c *InjuryAssessmentClient) Delete() *InjuryAssessmentDelete {
	mutation := newInjuryAssessmentMutation(c.config, OpDelete)
	return &InjuryAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InjuryAssessmentClient) DeleteOne(_m *InjuryAssessment) *InjuryAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InjuryAssessmentClient) DeleteOneID(id uuid.UUID) *InjuryAssessmentDeleteOne {
	builder := c.Delete().Where(injuryassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InjuryAssessmentDeleteOne{builder}
}

// Query returns a query builder for InjuryAssessment.
func (c *InjuryAssessmentClient) Query() *InjuryAssessmentQuery {
	return &InjuryAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInjuryAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a InjuryAssessment entity by its id.
func (c *InjuryAssessmentClient) Get(ctx context.Context, id uuid.UUID) (*InjuryAssessment, error) {
	return c.Query().Where(injuryassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InjuryAssessmentClient) GetX(ctx context.Context, id uuid.UUID) *InjuryAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InjuryAssessmentClient) Hooks() []Hook {
	return c.hooks.InjuryAssessment
}

// Interceptors returns the client interceptors.
func (c *InjuryAssessmentClient) Interceptors() []Interceptor {
	return c.inters.InjuryAssessment
}

func (c *InjuryAssessmentClient) mutate(ctx context.Context, m *InjuryAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InjuryAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InjuryAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InjuryAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InjuryAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InjuryAssessment mutation op: %q", m.Op())
	}
}

// InjuryReportClient is a client for the InjuryReport schema.
type InjuryReportClient struct {
	config
}

// NewInjuryReportClient returns a client for the InjuryReport from the given config.
func NewInjuryReportClient(c config) *InjuryReportClient {
	return &InjuryReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `injuryreport.Hooks(f(g(h())))`.
func (c *InjuryReportClient) Use(hooks ...Hook) {
	c.hooks.InjuryReport = append(c.hooks.InjuryReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `injuryreport.Intercept(f(g(h())))`.
func (c *InjuryReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.InjuryReport = append(c.inters.InjuryReport, interceptors...)
}

// Create returns a builder for creating a InjuryReport entity.
func (c *InjuryReportClient) Create() *InjuryReportCreate {
	mutation := newInjuryReportMutation(c.config, OpCreate)
	return &InjuryReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InjuryReport entities.
func (c *InjuryReportClient) CreateBulk(builders ...*InjuryReportCreate) *InjuryReportCreateBulk {
	return &InjuryReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InjuryReportClient) MapCreateBulk(slice any, setFunc func(*InjuryReportCreate, int)) *InjuryReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InjuryReportCreateBulk{err: fmt.Errorf("calling to InjuryReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InjuryReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InjuryReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InjuryReport.
func (c *InjuryReportClient) Update() *InjuryReportUpdate {
	mutation := newInjuryReportMutation(c.config, OpUpdate)
	return &InjuryReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InjuryReportClient) UpdateOne(_m *InjuryReport) *InjuryReportUpdateOne {
	mutation := newInjuryReportMutation(c.config, OpUpdateOne, withInjuryReport(_m))
	return &InjuryReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InjuryReportClient) UpdateOneID(id uuid.UUID) *InjuryReportUpdateOne {
	mutation := newInjuryReportMutation(c.config, OpUpdateOne, withInjuryReportID(id))
	return &InjuryReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InjuryReport.
func (c *InjuryReportClient) Delete() *InjuryReportDelete {
	mutation := newInjuryReportMutation(c.config, OpDelete)
	return &InjuryReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InjuryReportClient) DeleteOne(_m *InjuryReport) *InjuryReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InjuryReportClient) DeleteOneID(id uuid.UUID) *InjuryReportDeleteOne {
	builder := c.Delete().Where(injuryreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InjuryReportDeleteOne{builder}
}

// Query returns a query builder for InjuryReport.
func (c *InjuryReportClient) Query() *InjuryReportQuery {
	return &InjuryReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInjuryReport},
		inters: c.Interceptors(),
	}
}

// Get returns a InjuryReport entity by its id.
func (c *InjuryReportClient) Get(ctx context.Context, id uuid.UUID) (*InjuryReport, error) {
	return c.Query().Where(injuryreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InjuryReportClient) GetX(ctx context.Context, id uuid.UUID) *InjuryReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InjuryReportClient) Hooks() []Hook {
	return c.hooks.InjuryReport
}

// Interceptors returns the client interceptors.
func (c *InjuryReportClient) Interceptors() []Interceptor {
	return c.inters.InjuryReport
}

func (c *InjuryReportClient) mutate(ctx context.Context, m *InjuryReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InjuryReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InjuryReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InjuryReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InjuryReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InjuryReport mutation op: %q", m.Op())
	}
}

// InjuryShortMessageClient is a client for the InjuryShortMessage schema.
type InjuryShortMessageClient struct {
	config
}

// NewInjuryShortMessageClient returns a client for the InjuryShortMessage from the given config.
func NewInjuryShortMessageClient(c config) *InjuryShortMessageClient {
	return &InjuryShortMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `injuryshortmessage.Hooks(f(g(h())))`.
func (c *InjuryShortMessageClient) Use(hooks ...Hook) {
	c.hooks.InjuryShortMessage = append(c.hooks.InjuryShortMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `injuryshortmessage.Intercept(f(g(h())))`.
func (c *InjuryShortMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.InjuryShortMessage = append(c.inters.InjuryShortMessage, interceptors...)
}

// Create returns a builder for creating a InjuryShortMessage entity.
func (c *InjuryShortMessageClient) Create() *InjuryShortMessageCreate {
	mutation := newInjuryShortMessageMutation(c.config, OpCreate)
	return &InjuryShortMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InjuryShortMessage entities.
func (c *InjuryShortMessageClient) CreateBulk(builders ...*InjuryShortMessageCreate) *InjuryShortMessageCreateBulk {
	return &InjuryShortMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InjuryShortMessageClient) MapCreateBulk(slice any, setFunc func(*InjuryShortMessageCreate, int)) *InjuryShortMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InjuryShortMessageCreateBulk{err: fmt.Errorf("calling to InjuryShortMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InjuryShortMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InjuryShortMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InjuryShortMessage.
func (c *InjuryShortMessageClient) Update() *InjuryShortMessageUpdate {
	mutation := newInjuryShortMessageMutation(c.config, OpUpdate)
	return &InjuryShortMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InjuryShortMessageClient) UpdateOne(_m *InjuryShortMessage) *InjuryShortMessageUpdateOne {
	mutation := newInjuryShortMessageMutation(c.config, OpUpdateOne, withInjuryShortMessage(_m))
	return &InjuryShortMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InjuryShortMessageClient) UpdateOneID(id uuid.UUID) *InjuryShortMessageUpdateOne {
	mutation := newInjuryShortMessageMutation(c.config, OpUpdateOne, withInjuryShortMessageID(id))
	return &InjuryShortMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InjuryShortMessage.
func (c *InjuryShortMessageClient) Delete() *InjuryShortMessageDelete {
	mutation := newInjuryShortMessageMutation(c.config, OpDelete)
	return &InjuryShortMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InjuryShortMessageClient) DeleteOne(_m *InjuryShortMessage) *InjuryShortMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InjuryShortMessageClient) DeleteOneID(id uuid.UUID) *InjuryShortMessageDeleteOne {
	builder := c.Delete().Where(injuryshortmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InjuryShortMessageDeleteOne{builder}
}

// Query returns a query builder for InjuryShortMessage.
func (c *InjuryShortMessageClient) Query() *InjuryShortMessageQuery {
	return &InjuryShortMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInjuryShortMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a InjuryShortMessage entity by its id.
func (c *InjuryShortMessageClient) Get(ctx context.Context, id uuid.UUID) (*InjuryShortMessage, error) {
	return c.Query().Where(injuryshortmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InjuryShortMessageClient) GetX(ctx context.Context, id uuid.UUID) *InjuryShortMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InjuryShortMessageClient) Hooks() []Hook {
	return c.hooks.InjuryShortMessage
}

// Interceptors returns the client interceptors.
func (c *InjuryShortMessageClient) Interceptors() []Interceptor {
	return c.inters.InjuryShortMessage
}

func (c *InjuryShortMessageClient) mutate(ctx context.Context, m *InjuryShortMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InjuryShortMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InjuryShortMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InjuryShortMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InjuryShortMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InjuryShortMessage mutation op: %q", m.Op())
	}
}

// InjuryTicketClient is a client for the InjuryTicket schema.
type InjuryTicketClient struct {
	config
}

// NewInjuryTicketClient returns a client for the InjuryTicket from the given config.
func NewInjuryTicketClient(c config) *InjuryTicketClient {
	return &InjuryTicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `injuryticket.Hooks(f(g(h())))`.
func (c *InjuryTicketClient) Use(hooks ...Hook) {
	c.hooks.InjuryTicket = append(c.hooks.InjuryTicket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `injuryticket.Intercept(f(g(h())))`.
func (c *InjuryTicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.InjuryTicket = append(c.inters.InjuryTicket, interceptors...)
}

// Create returns a builder for creating a InjuryTicket entity.
func (c *InjuryTicketClient) Create() *InjuryTicketCreate {
	mutation := newInjuryTicketMutation(c.config, OpCreate)
	return &InjuryTicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InjuryTicket entities.
func (c *InjuryTicketClient) CreateBulk(builders ...*InjuryTicketCreate) *InjuryTicketCreateBulk {
	return &InjuryTicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InjuryTicketClient) MapCreateBulk(slice any, setFunc func(*InjuryTicketCreate, int)) *InjuryTicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InjuryTicketCreateBulk{err: fmt.Errorf("calling to InjuryTicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InjuryTicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InjuryTicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InjuryTicket.
func (c *InjuryTicketClient) Update() *InjuryTicketUpdate {
	mutation := newInjuryTicketMutation(c.config, OpUpdate)
	return &InjuryTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InjuryTicketClient) UpdateOne(_m *InjuryTicket) *InjuryTicketUpdateOne {
	mutation := newInjuryTicketMutation(c.config, OpUpdateOne, withInjuryTicket(_m))
	return &InjuryTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InjuryTicketClient) UpdateOneID(id uuid.UUID) *InjuryTicketUpdateOne {
	mutation := newInjuryTicketMutation(c.config, OpUpdateOne, withInjuryTicketID(id))
	return &InjuryTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InjuryTicket.
func (c *InjuryTicketClient) Delete() *InjuryTicketDelete {
	mutation := newInjuryTicketMutation(c.config, OpDelete)
	return &InjuryTicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InjuryTicketClient) DeleteOne(_m *InjuryTicket) *InjuryTicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InjuryTicketClient) DeleteOneID(id uuid.UUID) *InjuryTicketDeleteOne {
	builder := c.Delete().Where(injuryticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InjuryTicketDeleteOne{builder}
}

// Query returns a query builder for InjuryTicket.
func (c *InjuryTicketClient) Query() *InjuryTicketQuery {
	return &InjuryTicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInjuryTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a InjuryTicket entity by its id.
func (c *InjuryTicketClient) Get(ctx context.Context, id uuid.UUID) (*InjuryTicket, error) {
	return c.Query().Where(injuryticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InjuryTicketClient) GetX(ctx context.Context, id uuid.UUID) *InjuryTicket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InjuryTicketClient) Hooks() []Hook {
	return c.hooks.InjuryTicket
}

// Interceptors returns the client interceptors.
func (c *InjuryTicketClient) Interceptors() []Interceptor {
	return c.inters.InjuryTicket
}

func (c *InjuryTicketClient) mutate(ctx context.Context, m *InjuryTicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InjuryTicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InjuryTicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InjuryTicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InjuryTicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown InjuryTicket mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InjuryAssessment, InjuryReport, InjuryShortMessage, InjuryTicket,
		User []ent.Hook
	}
	inters struct {
		InjuryAssessment, InjuryReport, InjuryShortMessage, InjuryTicket,
		User []ent.Interceptor
	}
)
