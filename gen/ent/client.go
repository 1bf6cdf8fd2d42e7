// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// Correction is the client for interacting with the Correction builders.
	Correction *CorrectionClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractedField is the client for interacting with the ExtractedField builders.
	ExtractedField *ExtractedFieldClient
	// FinancialHighlight is the client for interacting with the FinancialHighlight builders.
	FinancialHighlight *FinancialHighlightClient
	// Fund is the client for interacting with the Fund builders.
	Fund *FundClient
	// Investment is the client for interacting with the Investment builders.
	Investment *InvestmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Company = NewCompanyClient(c.config)
	c.Correction = NewCorrectionClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ExtractedField = NewExtractedFieldClient(c.config)
	c.FinancialHighlight = NewFinancialHighlightClient(c.config)
	c.Fund = NewFundClient(c.config)
	c.Investment = NewInvestmentClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Company:            NewCompanyClient(cfg),
		Correction:         NewCorrectionClient(cfg),
		Document:           NewDocumentClient(cfg),
		ExtractedField:     NewExtractedFieldClient(cfg),
		FinancialHighlight: NewFinancialHighlightClient(cfg),
		Fund:               NewFundClient(cfg),
		Investment:         NewInvestmentClient(cfg),
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
		Company:            NewCompanyClient(cfg),
		Correction:         NewCorrectionClient(cfg),
		Document:           NewDocumentClient(cfg),
		ExtractedField:     NewExtractedFieldClient(cfg),
		FinancialHighlight: NewFinancialHighlightClient(cfg),
		Fund:               NewFundClient(cfg),
		Investment:         NewInvestmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Company.
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
		c.Company, c.Correction, c.Document, c.ExtractedField, c.FinancialHighlight,
		c.Fund, c.Investment,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Company, c.Correction, c.Document, c.ExtractedField, c.FinancialHighlight,
		c.Fund, c.Investment,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *CorrectionMutation:
		return c.Correction.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractedFieldMutation:
		return c.ExtractedField.mutate(ctx, m)
	case *FinancialHighlightMutation:
		return c.FinancialHighlight.mutate(ctx, m)
	case *FundMutation:
		return c.Fund.mutate(ctx, m)
	case *InvestmentMutation:
		return c.Investment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Company.
func (c *CompanyClient) QueryDocuments(_m *Company) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.DocumentsTable, company.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvestments queries the investments edge of a Company.
func (c *CompanyClient) QueryInvestments(_m *Company) *InvestmentQuery {
	query := (&InvestmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(investment.Table, investment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.InvestmentsTable, company.InvestmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinancials queries the financials edge of a Company.
func (c *CompanyClient) QueryFinancials(_m *Company) *FinancialHighlightQuery {
	query := (&FinancialHighlightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(financialhighlight.Table, financialhighlight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.FinancialsTable, company.FinancialsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// CorrectionClient is a client for the Correction schema.
type CorrectionClient struct {
	config
}

// NewCorrectionClient returns a client for the Correction from the given config.
func NewCorrectionClient(c config) *CorrectionClient {
	return &CorrectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `correction.Hooks(f(g(h())))`.
func (c *CorrectionClient) Use(hooks ...Hook) {
	c.hooks.Correction = append(c.hooks.Correction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `correction.Intercept(f(g(h())))`.
func (c *CorrectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Correction = append(c.inters.Correction, interceptors...)
}

// Create returns a builder for creating a Correction entity.
func (c *CorrectionClient) Create() *CorrectionCreate {
	mutation := newCorrectionMutation(c.config, OpCreate)
	return &CorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Correction entities.
func (c *CorrectionClient) CreateBulk(builders ...*CorrectionCreate) *CorrectionCreateBulk {
	return &CorrectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CorrectionClient) MapCreateBulk(slice any, setFunc func(*CorrectionCreate, int)) *CorrectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CorrectionCreateBulk{err: fmt.Errorf("calling to CorrectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CorrectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CorrectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Correction.
func (c *CorrectionClient) Update() *CorrectionUpdate {
	mutation := newCorrectionMutation(c.config, OpUpdate)
	return &CorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CorrectionClient) UpdateOne(_m *Correction) *CorrectionUpdateOne {
	mutation := newCorrectionMutation(c.config, OpUpdateOne, withCorrection(_m))
	return &CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CorrectionClient) UpdateOneID(id uuid.UUID) *CorrectionUpdateOne {
	mutation := newCorrectionMutation(c.config, OpUpdateOne, withCorrectionID(id))
	return &CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Correction.
func (c *CorrectionClient) Delete() *CorrectionDelete {
	mutation := newCorrectionMutation(c.config, OpDelete)
	return &CorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CorrectionClient) DeleteOne(_m *Correction) *CorrectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CorrectionClient) DeleteOneID(id uuid.UUID) *CorrectionDeleteOne {
	builder := c.Delete().Where(correction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CorrectionDeleteOne{builder}
}

// Query returns a query builder for Correction.
func (c *CorrectionClient) Query() *CorrectionQuery {
	return &CorrectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCorrection},
		inters: c.Interceptors(),
	}
}

// Get returns a Correction entity by its id.
func (c *CorrectionClient) Get(ctx context.Context, id uuid.UUID) (*Correction, error) {
	return c.Query().Where(correction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CorrectionClient) GetX(ctx context.Context, id uuid.UUID) *Correction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtractedField queries the extracted_field edge of a Correction.
func (c *CorrectionClient) QueryExtractedField(_m *Correction) *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(correction.Table, correction.FieldID, id),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, correction.ExtractedFieldTable, correction.ExtractedFieldColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CorrectionClient) Hooks() []Hook {
	return c.hooks.Correction
}

// Interceptors returns the client interceptors.
func (c *CorrectionClient) Interceptors() []Interceptor {
	return c.inters.Correction
}

func (c *CorrectionClient) mutate(ctx context.Context, m *CorrectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Correction mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFund queries the fund edge of a Document.
func (c *DocumentClient) QueryFund(_m *Document) *FundQuery {
	query := (&FundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(fund.Table, fund.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.FundTable, document.FundColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCompany queries the company edge of a Document.
func (c *DocumentClient) QueryCompany(_m *Document) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.CompanyTable, document.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFields queries the fields edge of a Document.
func (c *DocumentClient) QueryFields(_m *Document) *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.FieldsTable, document.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractedFieldClient is a client for the ExtractedField schema.
type ExtractedFieldClient struct {
	config
}

// NewExtractedFieldClient returns a client for the ExtractedField from the given config.
func NewExtractedFieldClient(c config) *ExtractedFieldClient {
	return &ExtractedFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedfield.Hooks(f(g(h())))`.
func (c *ExtractedFieldClient) Use(hooks ...Hook) {
	c.hooks.ExtractedField = append(c.hooks.ExtractedField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedfield.Intercept(f(g(h())))`.
func (c *ExtractedFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedField = append(c.inters.ExtractedField, interceptors...)
}

// Create returns a builder for creating a ExtractedField entity.
func (c *ExtractedFieldClient) Create() *ExtractedFieldCreate {
	mutation := newExtractedFieldMutation(c.config, OpCreate)
	return &ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedField entities.
func (c *ExtractedFieldClient) CreateBulk(builders ...*ExtractedFieldCreate) *ExtractedFieldCreateBulk {
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedFieldClient) MapCreateBulk(slice any, setFunc func(*ExtractedFieldCreate, int)) *ExtractedFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedFieldCreateBulk{err: fmt.Errorf("calling to ExtractedFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedField.
func (c *ExtractedFieldClient) Update() *ExtractedFieldUpdate {
	mutation := newExtractedFieldMutation(c.config, OpUpdate)
	return &ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedFieldClient) UpdateOne(_m *ExtractedField) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedField(_m))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedFieldClient) UpdateOneID(id uuid.UUID) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedFieldID(id))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedField.
func (c *ExtractedFieldClient) Delete() *ExtractedFieldDelete {
	mutation := newExtractedFieldMutation(c.config, OpDelete)
	return &ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedFieldClient) DeleteOne(_m *ExtractedField) *ExtractedFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedFieldClient) DeleteOneID(id uuid.UUID) *ExtractedFieldDeleteOne {
	builder := c.Delete().Where(extractedfield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedFieldDeleteOne{builder}
}

// Query returns a query builder for ExtractedField.
func (c *ExtractedFieldClient) Query() *ExtractedFieldQuery {
	return &ExtractedFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedField},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedField entity by its id.
func (c *ExtractedFieldClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedField, error) {
	return c.Query().Where(extractedfield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedFieldClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractedField.
func (c *ExtractedFieldClient) QueryDocument(_m *ExtractedField) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfield.Table, extractedfield.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedfield.DocumentTable, extractedfield.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCorrections queries the corrections edge of a ExtractedField.
func (c *ExtractedFieldClient) QueryCorrections(_m *ExtractedField) *CorrectionQuery {
	query := (&CorrectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfield.Table, extractedfield.FieldID, id),
			sqlgraph.To(correction.Table, correction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractedfield.CorrectionsTable, extractedfield.CorrectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedFieldClient) Hooks() []Hook {
	return c.hooks.ExtractedField
}

// Interceptors returns the client interceptors.
func (c *ExtractedFieldClient) Interceptors() []Interceptor {
	return c.inters.ExtractedField
}

func (c *ExtractedFieldClient) mutate(ctx context.Context, m *ExtractedFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedField mutation op: %q", m.Op())
	}
}

// FinancialHighlightClient is a client for the FinancialHighlight schema.
type FinancialHighlightClient struct {
	config
}

// NewFinancialHighlightClient returns a client for the FinancialHighlight from the given config.
func NewFinancialHighlightClient(c config) *FinancialHighlightClient {
	return &FinancialHighlightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `financialhighlight.Hooks(f(g(h())))`.
func (c *FinancialHighlightClient) Use(hooks ...Hook) {
	c.hooks.FinancialHighlight = append(c.hooks.FinancialHighlight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `financialhighlight.Intercept(f(g(h())))`.
func (c *FinancialHighlightClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinancialHighlight = append(c.inters.FinancialHighlight, interceptors...)
}

// Create returns a builder for creating a FinancialHighlight entity.
func (c *FinancialHighlightClient) Create() *FinancialHighlightCreate {
	mutation := newFinancialHighlightMutation(c.config, OpCreate)
	return &FinancialHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinancialHighlight entities.
func (c *FinancialHighlightClient) CreateBulk(builders ...*FinancialHighlightCreate) *FinancialHighlightCreateBulk {
	return &FinancialHighlightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinancialHighlightClient) MapCreateBulk(slice any, setFunc func(*FinancialHighlightCreate, int)) *FinancialHighlightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinancialHighlightCreateBulk{err: fmt.Errorf("calling to FinancialHighlightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinancialHighlightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinancialHighlightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinancialHighlight.
func (c *FinancialHighlightClient) Update() *FinancialHighlightUpdate {
	mutation := newFinancialHighlightMutation(c.config, OpUpdate)
	return &FinancialHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinancialHighlightClient) UpdateOne(_m *FinancialHighlight) *FinancialHighlightUpdateOne {
	mutation := newFinancialHighlightMutation(c.config, OpUpdateOne, withFinancialHighlight(_m))
	return &FinancialHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinancialHighlightClient) UpdateOneID(id uuid.UUID) *FinancialHighlightUpdateOne {
	mutation := newFinancialHighlightMutation(c.config, OpUpdateOne, withFinancialHighlightID(id))
	return &FinancialHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinancialHighlight.
func (c *FinancialHighlightClient) Delete() *FinancialHighlightDelete {
	mutation := newFinancialHighlightMutation(c.config, OpDelete)
	return &FinancialHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinancialHighlightClient) DeleteOne(_m *FinancialHighlight) *FinancialHighlightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinancialHighlightClient) DeleteOneID(id uuid.UUID) *FinancialHighlightDeleteOne {
	builder := c.Delete().Where(financialhighlight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinancialHighlightDeleteOne{builder}
}

// Query returns a query builder for FinancialHighlight.
func (c *FinancialHighlightClient) Query() *FinancialHighlightQuery {
	return &FinancialHighlightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinancialHighlight},
		inters: c.Interceptors(),
	}
}

// Get returns a FinancialHighlight entity by its id.
func (c *FinancialHighlightClient) Get(ctx context.Context, id uuid.UUID) (*FinancialHighlight, error) {
	return c.Query().Where(financialhighlight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinancialHighlightClient) GetX(ctx context.Context, id uuid.UUID) *FinancialHighlight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a FinancialHighlight.
func (c *FinancialHighlightClient) QueryCompany(_m *FinancialHighlight) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialhighlight.Table, financialhighlight.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financialhighlight.CompanyTable, financialhighlight.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinancialHighlightClient) Hooks() []Hook {
	return c.hooks.FinancialHighlight
}

// Interceptors returns the client interceptors.
func (c *FinancialHighlightClient) Interceptors() []Interceptor {
	return c.inters.FinancialHighlight
}

func (c *FinancialHighlightClient) mutate(ctx context.Context, m *FinancialHighlightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinancialHighlightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinancialHighlightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinancialHighlightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinancialHighlightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinancialHighlight mutation op: %q", m.Op())
	}
}

// FundClient is a client for the Fund schema.
type FundClient struct {
	config
}

// NewFundClient returns a client for the Fund from the given config.
func NewFundClient(c config) *FundClient {
	return &FundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fund.Hooks(f(g(h())))`.
func (c *FundClient) Use(hooks ...Hook) {
	c.hooks.Fund = append(c.hooks.Fund, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fund.Intercept(f(g(h())))`.
func (c *FundClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fund = append(c.inters.Fund, interceptors...)
}

// Create returns a builder for creating a Fund entity.
func (c *FundClient) Create() *FundCreate {
	mutation := newFundMutation(c.config, OpCreate)
	return &FundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fund entities.
func (c *FundClient) CreateBulk(builders ...*FundCreate) *FundCreateBulk {
	return &FundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FundClient) MapCreateBulk(slice any, setFunc func(*FundCreate, int)) *FundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FundCreateBulk{err: fmt.Errorf("calling to FundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fund.
func (c *FundClient) Update() *FundUpdate {
	mutation := newFundMutation(c.config, OpUpdate)
	return &FundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FundClient) UpdateOne(_m *Fund) *FundUpdateOne {
	mutation := newFundMutation(c.config, OpUpdateOne, withFund(_m))
	return &FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FundClient) UpdateOneID(id uuid.UUID) *FundUpdateOne {
	mutation := newFundMutation(c.config, OpUpdateOne, withFundID(id))
	return &FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fund.
func (c *FundClient) Delete() *FundDelete {
	mutation := newFundMutation(c.config, OpDelete)
	return &FundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FundClient) DeleteOne(_m *Fund) *FundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FundClient) DeleteOneID(id uuid.UUID) *FundDeleteOne {
	builder := c.Delete().Where(fund.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FundDeleteOne{builder}
}

// Query returns a query builder for Fund.
func (c *FundClient) Query() *FundQuery {
	return &FundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFund},
		inters: c.Interceptors(),
	}
}

// Get returns a Fund entity by its id.
func (c *FundClient) Get(ctx context.Context, id uuid.UUID) (*Fund, error) {
	return c.Query().Where(fund.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FundClient) GetX(ctx context.Context, id uuid.UUID) *Fund {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a Fund.
func (c *FundClient) QueryDocuments(_m *Fund) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fund.Table, fund.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fund.DocumentsTable, fund.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvestments queries the investments edge of a Fund.
func (c *FundClient) QueryInvestments(_m *Fund) *InvestmentQuery {
	query := (&InvestmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fund.Table, fund.FieldID, id),
			sqlgraph.To(investment.Table, investment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fund.InvestmentsTable, fund.InvestmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FundClient) Hooks() []Hook {
	return c.hooks.Fund
}

// Interceptors returns the client interceptors.
func (c *FundClient) Interceptors() []Interceptor {
	return c.inters.Fund
}

func (c *FundClient) mutate(ctx context.Context, m *FundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Fund mutation op: %q", m.Op())
	}
}

// InvestmentClient is a client for the Investment schema.
type InvestmentClient struct {
	config
}

// NewInvestmentClient returns a client for the Investment from the given config.
func NewInvestmentClient(c config) *InvestmentClient {
	return &InvestmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investment.Hooks(f(g(h())))`.
func (c *InvestmentClient) Use(hooks ...Hook) {
	c.hooks.Investment = append(c.hooks.Investment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investment.Intercept(f(g(h())))`.
func (c *InvestmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Investment = append(c.inters.Investment, interceptors...)
}

// Create returns a builder for creating a Investment entity.
func (c *InvestmentClient) Create() *InvestmentCreate {
	mutation := newInvestmentMutation(c.config, OpCreate)
	return &InvestmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Investment entities.
func (c *InvestmentClient) CreateBulk(builders ...*InvestmentCreate) *InvestmentCreateBulk {
	return &InvestmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestmentClient) MapCreateBulk(slice any, setFunc func(*InvestmentCreate, int)) *InvestmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestmentCreateBulk{err: fmt.Errorf("calling to InvestmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Investment.
func (c *InvestmentClient) Update() *InvestmentUpdate {
	mutation := newInvestmentMutation(c.config, OpUpdate)
	return &InvestmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestmentClient) UpdateOne(_m *Investment) *InvestmentUpdateOne {
	mutation := newInvestmentMutation(c.config, OpUpdateOne, withInvestment(_m))
	return &InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestmentClient) UpdateOneID(id uuid.UUID) *InvestmentUpdateOne {
	mutation := newInvestmentMutation(c.config, OpUpdateOne, withInvestmentID(id))
	return &InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Investment.
func (c *InvestmentClient) Delete() *InvestmentDelete {
	mutation := newInvestmentMutation(c.config, OpDelete)
	return &InvestmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestmentClient) DeleteOne(_m *Investment) *InvestmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestmentClient) DeleteOneID(id uuid.UUID) *InvestmentDeleteOne {
	builder := c.Delete().Where(investment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestmentDeleteOne{builder}
}

// Query returns a query builder for Investment.
func (c *InvestmentClient) Query() *InvestmentQuery {
	return &InvestmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestment},
		inters: c.Interceptors(),
	}
}

// Get returns a Investment entity by its id.
func (c *InvestmentClient) Get(ctx context.Context, id uuid.UUID) (*Investment, error) {
	return c.Query().Where(investment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestmentClient) GetX(ctx context.Context, id uuid.UUID) *Investment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFund queries the fund edge of a Investment.
func (c *InvestmentClient) QueryFund(_m *Investment) *FundQuery {
	query := (&FundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investment.Table, investment.FieldID, id),
			sqlgraph.To(fund.Table, fund.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investment.FundTable, investment.FundColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCompany queries the company edge of a Investment.
func (c *InvestmentClient) QueryCompany(_m *Investment) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investment.Table, investment.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investment.CompanyTable, investment.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestmentClient) Hooks() []Hook {
	return c.hooks.Investment
}

// Interceptors returns the client interceptors.
func (c *InvestmentClient) Interceptors() []Interceptor {
	return c.inters.Investment
}

func (c *InvestmentClient) mutate(ctx context.Context, m *InvestmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Investment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Company, Correction, Document, ExtractedField, FinancialHighlight, Fund,
		Investment []ent.Hook
	}
	inters struct {
		Company, Correction, Document, ExtractedField, FinancialHighlight, Fund,
		Investment []ent.Interceptor
	}
)
