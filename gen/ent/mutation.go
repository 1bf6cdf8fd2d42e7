// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/company"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/financialhighlight"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/fund"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/investment"
	"github.com/hunggoodkidz/data-extraction-module/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany            = "Company"
	TypeCorrection         = "Correction"
	TypeDocument           = "Document"
	TypeExtractedField     = "ExtractedField"
	TypeFinancialHighlight = "FinancialHighlight"
	TypeFund               = "Fund"
	TypeInvestment         = "Investment"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	holding_company      *string
	description          *string
	head_office_location *string
	clearedFields        map[string]struct{}
	documents            map[uuid.UUID]struct{}
	removeddocuments     map[uuid.UUID]struct{}
	cleareddocuments     bool
	investments          map[uuid.UUID]struct{}
	removedinvestments   map[uuid.UUID]struct{}
	clearedinvestments   bool
	financials           map[uuid.UUID]struct{}
	removedfinancials    map[uuid.UUID]struct{}
	clearedfinancials    bool
	done                 bool
	oldValue             func(context.Context) (*Company, error)
	predicates           []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetHoldingCompany sets the "holding_company" field.
func (m *CompanyMutation) SetHoldingCompany(s string) {
	m.holding_company = &s
}

// HoldingCompany returns the value of the "holding_company" field in the mutation.
func (m *CompanyMutation) HoldingCompany() (r string, exists bool) {
	v := m.holding_company
	if v == nil {
		return
	}
	return *v, true
}

// OldHoldingCompany returns the old "holding_company" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldHoldingCompany(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoldingCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoldingCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoldingCompany: %w", err)
	}
	return oldValue.HoldingCompany, nil
}

// ClearHoldingCompany clears the value of the "holding_company" field.
func (m *CompanyMutation) ClearHoldingCompany() {
	m.holding_company = nil
	m.clearedFields[company.FieldHoldingCompany] = struct{}{}
}

// HoldingCompanyCleared returns if the "holding_company" field was cleared in this mutation.
func (m *CompanyMutation) HoldingCompanyCleared() bool {
	_, ok := m.clearedFields[company.FieldHoldingCompany]
	return ok
}

// ResetHoldingCompany resets all changes to the "holding_company" field.
func (m *CompanyMutation) ResetHoldingCompany() {
	m.holding_company = nil
	delete(m.clearedFields, company.FieldHoldingCompany)
}

// SetDescription sets the "description" field.
func (m *CompanyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CompanyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CompanyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[company.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CompanyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[company.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CompanyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, company.FieldDescription)
}

// SetHeadOfficeLocation sets the "head_office_location" field.
func (m *CompanyMutation) SetHeadOfficeLocation(s string) {
	m.head_office_location = &s
}

// HeadOfficeLocation returns the value of the "head_office_location" field in the mutation.
func (m *CompanyMutation) HeadOfficeLocation() (r string, exists bool) {
	v := m.head_office_location
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadOfficeLocation returns the old "head_office_location" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldHeadOfficeLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadOfficeLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadOfficeLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadOfficeLocation: %w", err)
	}
	return oldValue.HeadOfficeLocation, nil
}

// ClearHeadOfficeLocation clears the value of the "head_office_location" field.
func (m *CompanyMutation) ClearHeadOfficeLocation() {
	m.head_office_location = nil
	m.clearedFields[company.FieldHeadOfficeLocation] = struct{}{}
}

// HeadOfficeLocationCleared returns if the "head_office_location" field was cleared in this mutation.
func (m *CompanyMutation) HeadOfficeLocationCleared() bool {
	_, ok := m.clearedFields[company.FieldHeadOfficeLocation]
	return ok
}

// ResetHeadOfficeLocation resets all changes to the "head_office_location" field.
func (m *CompanyMutation) ResetHeadOfficeLocation() {
	m.head_office_location = nil
	delete(m.clearedFields, company.FieldHeadOfficeLocation)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *CompanyMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *CompanyMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *CompanyMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *CompanyMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *CompanyMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *CompanyMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *CompanyMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by ids.
func (m *CompanyMutation) AddInvestmentIDs(ids ...uuid.UUID) {
	if m.investments == nil {
		m.investments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.investments[ids[i]] = struct{}{}
	}
}

// ClearInvestments clears the "investments" edge to the Investment entity.
func (m *CompanyMutation) ClearInvestments() {
	m.clearedinvestments = true
}

// InvestmentsCleared reports if the "investments" edge to the Investment entity was cleared.
func (m *CompanyMutation) InvestmentsCleared() bool {
	return m.clearedinvestments
}

// RemoveInvestmentIDs removes the "investments" edge to the Investment entity by IDs.
func (m *CompanyMutation) RemoveInvestmentIDs(ids ...uuid.UUID) {
	if m.removedinvestments == nil {
		m.removedinvestments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.investments, ids[i])
		m.removedinvestments[ids[i]] = struct{}{}
	}
}

// RemovedInvestments returns the removed IDs of the "investments" edge to the Investment entity.
func (m *CompanyMutation) RemovedInvestmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedinvestments {
		ids = append(ids, id)
	}
	return
}

// InvestmentsIDs returns the "investments" edge IDs in the mutation.
func (m *CompanyMutation) InvestmentsIDs() (ids []uuid.UUID) {
	for id := range m.investments {
		ids = append(ids, id)
	}
	return
}

// ResetInvestments resets all changes to the "investments" edge.
func (m *CompanyMutation) ResetInvestments() {
	m.investments = nil
	m.clearedinvestments = false
	m.removedinvestments = nil
}

// AddFinancialIDs adds the "financials" edge to the FinancialHighlight entity by ids.
func (m *CompanyMutation) AddFinancialIDs(ids ...uuid.UUID) {
	if m.financials == nil {
		m.financials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.financials[ids[i]] = struct{}{}
	}
}

// ClearFinancials clears the "financials" edge to the FinancialHighlight entity.
func (m *CompanyMutation) ClearFinancials() {
	m.clearedfinancials = true
}

// FinancialsCleared reports if the "financials" edge to the FinancialHighlight entity was cleared.
func (m *CompanyMutation) FinancialsCleared() bool {
	return m.clearedfinancials
}

// RemoveFinancialIDs removes the "financials" edge to the FinancialHighlight entity by IDs.
func (m *CompanyMutation) RemoveFinancialIDs(ids ...uuid.UUID) {
	if m.removedfinancials == nil {
		m.removedfinancials = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.financials, ids[i])
		m.removedfinancials[ids[i]] = struct{}{}
	}
}

// RemovedFinancials returns the removed IDs of the "financials" edge to the FinancialHighlight entity.
func (m *CompanyMutation) RemovedFinancialsIDs() (ids []uuid.UUID) {
	for id := range m.removedfinancials {
		ids = append(ids, id)
	}
	return
}

// FinancialsIDs returns the "financials" edge IDs in the mutation.
func (m *CompanyMutation) FinancialsIDs() (ids []uuid.UUID) {
	for id := range m.financials {
		ids = append(ids, id)
	}
	return
}

// ResetFinancials resets all changes to the "financials" edge.
func (m *CompanyMutation) ResetFinancials() {
	m.financials = nil
	m.clearedfinancials = false
	m.removedfinancials = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.holding_company != nil {
		fields = append(fields, company.FieldHoldingCompany)
	}
	if m.description != nil {
		fields = append(fields, company.FieldDescription)
	}
	if m.head_office_location != nil {
		fields = append(fields, company.FieldHeadOfficeLocation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldHoldingCompany:
		return m.HoldingCompany()
	case company.FieldDescription:
		return m.Description()
	case company.FieldHeadOfficeLocation:
		return m.HeadOfficeLocation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldHoldingCompany:
		return m.OldHoldingCompany(ctx)
	case company.FieldDescription:
		return m.OldDescription(ctx)
	case company.FieldHeadOfficeLocation:
		return m.OldHeadOfficeLocation(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldHoldingCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoldingCompany(v)
		return nil
	case company.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case company.FieldHeadOfficeLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadOfficeLocation(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldHoldingCompany) {
		fields = append(fields, company.FieldHoldingCompany)
	}
	if m.FieldCleared(company.FieldDescription) {
		fields = append(fields, company.FieldDescription)
	}
	if m.FieldCleared(company.FieldHeadOfficeLocation) {
		fields = append(fields, company.FieldHeadOfficeLocation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldHoldingCompany:
		m.ClearHoldingCompany()
		return nil
	case company.FieldDescription:
		m.ClearDescription()
		return nil
	case company.FieldHeadOfficeLocation:
		m.ClearHeadOfficeLocation()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldHoldingCompany:
		m.ResetHoldingCompany()
		return nil
	case company.FieldDescription:
		m.ResetDescription()
		return nil
	case company.FieldHeadOfficeLocation:
		m.ResetHeadOfficeLocation()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.documents != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.investments != nil {
		edges = append(edges, company.EdgeInvestments)
	}
	if m.financials != nil {
		edges = append(edges, company.EdgeFinancials)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.investments))
		for id := range m.investments {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFinancials:
		ids := make([]ent.Value, 0, len(m.financials))
		for id := range m.financials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.removedinvestments != nil {
		edges = append(edges, company.EdgeInvestments)
	}
	if m.removedfinancials != nil {
		edges = append(edges, company.EdgeFinancials)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.removedinvestments))
		for id := range m.removedinvestments {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeFinancials:
		ids := make([]ent.Value, 0, len(m.removedfinancials))
		for id := range m.removedfinancials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocuments {
		edges = append(edges, company.EdgeDocuments)
	}
	if m.clearedinvestments {
		edges = append(edges, company.EdgeInvestments)
	}
	if m.clearedfinancials {
		edges = append(edges, company.EdgeFinancials)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeDocuments:
		return m.cleareddocuments
	case company.EdgeInvestments:
		return m.clearedinvestments
	case company.EdgeFinancials:
		return m.clearedfinancials
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case company.EdgeInvestments:
		m.ResetInvestments()
		return nil
	case company.EdgeFinancials:
		m.ResetFinancials()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// CorrectionMutation represents an operation that mutates the Correction nodes in the graph.
type CorrectionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	corrected_value        *string
	corrected_by_user      *string
	reason                 *string
	corrected_at           *time.Time
	clearedFields          map[string]struct{}
	extracted_field        *uuid.UUID
	clearedextracted_field bool
	done                   bool
	oldValue               func(context.Context) (*Correction, error)
	predicates             []predicate.Correction
}

var _ ent.Mutation = (*CorrectionMutation)(nil)

// correctionOption allows management of the mutation configuration using functional options.
type correctionOption func(*CorrectionMutation)

// newCorrectionMutation creates new mutation for the Correction entity.
func newCorrectionMutation(c config, op Op, opts ...correctionOption) *CorrectionMutation {
	m := &CorrectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrectionID sets the ID field of the mutation.
func withCorrectionID(id uuid.UUID) correctionOption {
	return func(m *CorrectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Correction
		)
		m.oldValue = func(ctx context.Context) (*Correction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Correction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrection sets the old Correction of the mutation.
func withCorrection(node *Correction) correctionOption {
	return func(m *CorrectionMutation) {
		m.oldValue = func(context.Context) (*Correction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Correction entities.
func (m *CorrectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Correction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExtractedFieldID sets the "extracted_field_id" field.
func (m *CorrectionMutation) SetExtractedFieldID(u uuid.UUID) {
	m.extracted_field = &u
}

// ExtractedFieldID returns the value of the "extracted_field_id" field in the mutation.
func (m *CorrectionMutation) ExtractedFieldID() (r uuid.UUID, exists bool) {
	v := m.extracted_field
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFieldID returns the old "extracted_field_id" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldExtractedFieldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFieldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFieldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFieldID: %w", err)
	}
	return oldValue.ExtractedFieldID, nil
}

// ResetExtractedFieldID resets all changes to the "extracted_field_id" field.
func (m *CorrectionMutation) ResetExtractedFieldID() {
	m.extracted_field = nil
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *CorrectionMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *CorrectionMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *CorrectionMutation) ResetCorrectedValue() {
	m.corrected_value = nil
}

// SetCorrectedByUser sets the "corrected_by_user" field.
func (m *CorrectionMutation) SetCorrectedByUser(s string) {
	m.corrected_by_user = &s
}

// CorrectedByUser returns the value of the "corrected_by_user" field in the mutation.
func (m *CorrectionMutation) CorrectedByUser() (r string, exists bool) {
	v := m.corrected_by_user
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedByUser returns the old "corrected_by_user" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedByUser(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedByUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedByUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedByUser: %w", err)
	}
	return oldValue.CorrectedByUser, nil
}

// ClearCorrectedByUser clears the value of the "corrected_by_user" field.
func (m *CorrectionMutation) ClearCorrectedByUser() {
	m.corrected_by_user = nil
	m.clearedFields[correction.FieldCorrectedByUser] = struct{}{}
}

// CorrectedByUserCleared returns if the "corrected_by_user" field was cleared in this mutation.
func (m *CorrectionMutation) CorrectedByUserCleared() bool {
	_, ok := m.clearedFields[correction.FieldCorrectedByUser]
	return ok
}

// ResetCorrectedByUser resets all changes to the "corrected_by_user" field.
func (m *CorrectionMutation) ResetCorrectedByUser() {
	m.corrected_by_user = nil
	delete(m.clearedFields, correction.FieldCorrectedByUser)
}

// SetReason sets the "reason" field.
func (m *CorrectionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *CorrectionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *CorrectionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[correction.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *CorrectionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[correction.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *CorrectionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, correction.FieldReason)
}

// SetCorrectedAt sets the "corrected_at" field.
func (m *CorrectionMutation) SetCorrectedAt(t time.Time) {
	m.corrected_at = &t
}

// CorrectedAt returns the value of the "corrected_at" field in the mutation.
func (m *CorrectionMutation) CorrectedAt() (r time.Time, exists bool) {
	v := m.corrected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedAt returns the old "corrected_at" field's value of the Correction entity.
// If the Correction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrectionMutation) OldCorrectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedAt: %w", err)
	}
	return oldValue.CorrectedAt, nil
}

// ResetCorrectedAt resets all changes to the "corrected_at" field.
func (m *CorrectionMutation) ResetCorrectedAt() {
	m.corrected_at = nil
}

// ClearExtractedField clears the "extracted_field" edge to the ExtractedField entity.
func (m *CorrectionMutation) ClearExtractedField() {
	m.clearedextracted_field = true
	m.clearedFields[correction.FieldExtractedFieldID] = struct{}{}
}

// ExtractedFieldCleared reports if the "extracted_field" edge to the ExtractedField entity was cleared.
func (m *CorrectionMutation) ExtractedFieldCleared() bool {
	return m.clearedextracted_field
}

// ExtractedFieldIDs returns the "extracted_field" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractedFieldID instead. It exists only for internal usage by the builders.
func (m *CorrectionMutation) ExtractedFieldIDs() (ids []uuid.UUID) {
	if id := m.extracted_field; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtractedField resets all changes to the "extracted_field" edge.
func (m *CorrectionMutation) ResetExtractedField() {
	m.extracted_field = nil
	m.clearedextracted_field = false
}

// Where appends a list predicates to the CorrectionMutation builder.
func (m *CorrectionMutation) Where(ps ...predicate.Correction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Correction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Correction).
func (m *CorrectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrectionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.extracted_field != nil {
		fields = append(fields, correction.FieldExtractedFieldID)
	}
	if m.corrected_value != nil {
		fields = append(fields, correction.FieldCorrectedValue)
	}
	if m.corrected_by_user != nil {
		fields = append(fields, correction.FieldCorrectedByUser)
	}
	if m.reason != nil {
		fields = append(fields, correction.FieldReason)
	}
	if m.corrected_at != nil {
		fields = append(fields, correction.FieldCorrectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correction.FieldExtractedFieldID:
		return m.ExtractedFieldID()
	case correction.FieldCorrectedValue:
		return m.CorrectedValue()
	case correction.FieldCorrectedByUser:
		return m.CorrectedByUser()
	case correction.FieldReason:
		return m.Reason()
	case correction.FieldCorrectedAt:
		return m.CorrectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correction.FieldExtractedFieldID:
		return m.OldExtractedFieldID(ctx)
	case correction.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case correction.FieldCorrectedByUser:
		return m.OldCorrectedByUser(ctx)
	case correction.FieldReason:
		return m.OldReason(ctx)
	case correction.FieldCorrectedAt:
		return m.OldCorrectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Correction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correction.FieldExtractedFieldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFieldID(v)
		return nil
	case correction.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case correction.FieldCorrectedByUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedByUser(v)
		return nil
	case correction.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case correction.FieldCorrectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Correction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(correction.FieldCorrectedByUser) {
		fields = append(fields, correction.FieldCorrectedByUser)
	}
	if m.FieldCleared(correction.FieldReason) {
		fields = append(fields, correction.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrectionMutation) ClearField(name string) error {
	switch name {
	case correction.FieldCorrectedByUser:
		m.ClearCorrectedByUser()
		return nil
	case correction.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Correction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrectionMutation) ResetField(name string) error {
	switch name {
	case correction.FieldExtractedFieldID:
		m.ResetExtractedFieldID()
		return nil
	case correction.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case correction.FieldCorrectedByUser:
		m.ResetCorrectedByUser()
		return nil
	case correction.FieldReason:
		m.ResetReason()
		return nil
	case correction.FieldCorrectedAt:
		m.ResetCorrectedAt()
		return nil
	}
	return fmt.Errorf("unknown Correction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extracted_field != nil {
		edges = append(edges, correction.EdgeExtractedField)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case correction.EdgeExtractedField:
		if id := m.extracted_field; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextracted_field {
		edges = append(edges, correction.EdgeExtractedField)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrectionMutation) EdgeCleared(name string) bool {
	switch name {
	case correction.EdgeExtractedField:
		return m.clearedextracted_field
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrectionMutation) ClearEdge(name string) error {
	switch name {
	case correction.EdgeExtractedField:
		m.ClearExtractedField()
		return nil
	}
	return fmt.Errorf("unknown Correction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrectionMutation) ResetEdge(name string) error {
	switch name {
	case correction.EdgeExtractedField:
		m.ResetExtractedField()
		return nil
	}
	return fmt.Errorf("unknown Correction edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	file_name      *string
	file_path      *string
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	fund           *uuid.UUID
	clearedfund    bool
	company        *uuid.UUID
	clearedcompany bool
	fields         map[uuid.UUID]struct{}
	removedfields  map[uuid.UUID]struct{}
	clearedfields  bool
	done           bool
	oldValue       func(context.Context) (*Document, error)
	predicates     []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFundID sets the "fund_id" field.
func (m *DocumentMutation) SetFundID(u uuid.UUID) {
	m.fund = &u
}

// FundID returns the value of the "fund_id" field in the mutation.
func (m *DocumentMutation) FundID() (r uuid.UUID, exists bool) {
	v := m.fund
	if v == nil {
		return
	}
	return *v, true
}

// OldFundID returns the old "fund_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFundID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundID: %w", err)
	}
	return oldValue.FundID, nil
}

// ClearFundID clears the value of the "fund_id" field.
func (m *DocumentMutation) ClearFundID() {
	m.fund = nil
	m.clearedFields[document.FieldFundID] = struct{}{}
}

// FundIDCleared returns if the "fund_id" field was cleared in this mutation.
func (m *DocumentMutation) FundIDCleared() bool {
	_, ok := m.clearedFields[document.FieldFundID]
	return ok
}

// ResetFundID resets all changes to the "fund_id" field.
func (m *DocumentMutation) ResetFundID() {
	m.fund = nil
	delete(m.clearedFields, document.FieldFundID)
}

// SetCompanyID sets the "company_id" field.
func (m *DocumentMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *DocumentMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *DocumentMutation) ClearCompanyID() {
	m.company = nil
	m.clearedFields[document.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *DocumentMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[document.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *DocumentMutation) ResetCompanyID() {
	m.company = nil
	delete(m.clearedFields, document.FieldCompanyID)
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearFund clears the "fund" edge to the Fund entity.
func (m *DocumentMutation) ClearFund() {
	m.clearedfund = true
	m.clearedFields[document.FieldFundID] = struct{}{}
}

// FundCleared reports if the "fund" edge to the Fund entity was cleared.
func (m *DocumentMutation) FundCleared() bool {
	return m.FundIDCleared() || m.clearedfund
}

// FundIDs returns the "fund" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FundID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) FundIDs() (ids []uuid.UUID) {
	if id := m.fund; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFund resets all changes to the "fund" edge.
func (m *DocumentMutation) ResetFund() {
	m.fund = nil
	m.clearedfund = false
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *DocumentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[document.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *DocumentMutation) CompanyCleared() bool {
	return m.CompanyIDCleared() || m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *DocumentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by ids.
func (m *DocumentMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the ExtractedField entity.
func (m *DocumentMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the ExtractedField entity was cleared.
func (m *DocumentMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the ExtractedField entity by IDs.
func (m *DocumentMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the ExtractedField entity.
func (m *DocumentMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *DocumentMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *DocumentMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.fund != nil {
		fields = append(fields, document.FieldFundID)
	}
	if m.company != nil {
		fields = append(fields, document.FieldCompanyID)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, document.FieldFilePath)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFundID:
		return m.FundID()
	case document.FieldCompanyID:
		return m.CompanyID()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldFilePath:
		return m.FilePath()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFundID:
		return m.OldFundID(ctx)
	case document.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldFilePath:
		return m.OldFilePath(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFundID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundID(v)
		return nil
	case document.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldFundID) {
		fields = append(fields, document.FieldFundID)
	}
	if m.FieldCleared(document.FieldCompanyID) {
		fields = append(fields, document.FieldCompanyID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldFundID:
		m.ClearFundID()
		return nil
	case document.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFundID:
		m.ResetFundID()
		return nil
	case document.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldFilePath:
		m.ResetFilePath()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.fund != nil {
		edges = append(edges, document.EdgeFund)
	}
	if m.company != nil {
		edges = append(edges, document.EdgeCompany)
	}
	if m.fields != nil {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFund:
		if id := m.fund; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfields != nil {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfund {
		edges = append(edges, document.EdgeFund)
	}
	if m.clearedcompany {
		edges = append(edges, document.EdgeCompany)
	}
	if m.clearedfields {
		edges = append(edges, document.EdgeFields)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeFund:
		return m.clearedfund
	case document.EdgeCompany:
		return m.clearedcompany
	case document.EdgeFields:
		return m.clearedfields
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeFund:
		m.ClearFund()
		return nil
	case document.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeFund:
		m.ResetFund()
		return nil
	case document.EdgeCompany:
		m.ResetCompany()
		return nil
	case document.EdgeFields:
		m.ResetFields()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractedFieldMutation represents an operation that mutates the ExtractedField nodes in the graph.
type ExtractedFieldMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	field_name          *string
	extracted_value     *string
	page_number         *int
	addpage_number      *int
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	corrections         map[uuid.UUID]struct{}
	removedcorrections  map[uuid.UUID]struct{}
	clearedcorrections  bool
	done                bool
	oldValue            func(context.Context) (*ExtractedField, error)
	predicates          []predicate.ExtractedField
}

var _ ent.Mutation = (*ExtractedFieldMutation)(nil)

// extractedfieldOption allows management of the mutation configuration using functional options.
type extractedfieldOption func(*ExtractedFieldMutation)

// newExtractedFieldMutation creates new mutation for the ExtractedField entity.
func newExtractedFieldMutation(c config, op Op, opts ...extractedfieldOption) *ExtractedFieldMutation {
	m := &ExtractedFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedFieldID sets the ID field of the mutation.
func withExtractedFieldID(id uuid.UUID) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedField
		)
		m.oldValue = func(ctx context.Context) (*ExtractedField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedField sets the old ExtractedField of the mutation.
func withExtractedField(node *ExtractedField) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		m.oldValue = func(context.Context) (*ExtractedField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedField entities.
func (m *ExtractedFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedFieldMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedFieldMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedFieldMutation) ResetDocumentID() {
	m.document = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractedFieldMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractedFieldMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractedFieldMutation) ResetFieldName() {
	m.field_name = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ExtractedFieldMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ExtractedFieldMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldExtractedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ExtractedFieldMutation) ResetExtractedValue() {
	m.extracted_value = nil
}

// SetPageNumber sets the "page_number" field.
func (m *ExtractedFieldMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *ExtractedFieldMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldPageNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *ExtractedFieldMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *ExtractedFieldMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageNumber clears the value of the "page_number" field.
func (m *ExtractedFieldMutation) ClearPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
	m.clearedFields[extractedfield.FieldPageNumber] = struct{}{}
}

// PageNumberCleared returns if the "page_number" field was cleared in this mutation.
func (m *ExtractedFieldMutation) PageNumberCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldPageNumber]
	return ok
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *ExtractedFieldMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
	delete(m.clearedFields, extractedfield.FieldPageNumber)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractedFieldMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractedFieldMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractedFieldMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractedFieldMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ExtractedFieldMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[extractedfield.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractedFieldMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, extractedfield.FieldConfidenceScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractedFieldMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractedfield.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractedFieldMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractedFieldMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractedFieldMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddCorrectionIDs adds the "corrections" edge to the Correction entity by ids.
func (m *ExtractedFieldMutation) AddCorrectionIDs(ids ...uuid.UUID) {
	if m.corrections == nil {
		m.corrections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.corrections[ids[i]] = struct{}{}
	}
}

// ClearCorrections clears the "corrections" edge to the Correction entity.
func (m *ExtractedFieldMutation) ClearCorrections() {
	m.clearedcorrections = true
}

// CorrectionsCleared reports if the "corrections" edge to the Correction entity was cleared.
func (m *ExtractedFieldMutation) CorrectionsCleared() bool {
	return m.clearedcorrections
}

// RemoveCorrectionIDs removes the "corrections" edge to the Correction entity by IDs.
func (m *ExtractedFieldMutation) RemoveCorrectionIDs(ids ...uuid.UUID) {
	if m.removedcorrections == nil {
		m.removedcorrections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.corrections, ids[i])
		m.removedcorrections[ids[i]] = struct{}{}
	}
}

// RemovedCorrections returns the removed IDs of the "corrections" edge to the Correction entity.
func (m *ExtractedFieldMutation) RemovedCorrectionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcorrections {
		ids = append(ids, id)
	}
	return
}

// CorrectionsIDs returns the "corrections" edge IDs in the mutation.
func (m *ExtractedFieldMutation) CorrectionsIDs() (ids []uuid.UUID) {
	for id := range m.corrections {
		ids = append(ids, id)
	}
	return
}

// ResetCorrections resets all changes to the "corrections" edge.
func (m *ExtractedFieldMutation) ResetCorrections() {
	m.corrections = nil
	m.clearedcorrections = false
	m.removedcorrections = nil
}

// Where appends a list predicates to the ExtractedFieldMutation builder.
func (m *ExtractedFieldMutation) Where(ps ...predicate.ExtractedField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedField).
func (m *ExtractedFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedFieldMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, extractedfield.FieldDocumentID)
	}
	if m.field_name != nil {
		fields = append(fields, extractedfield.FieldFieldName)
	}
	if m.extracted_value != nil {
		fields = append(fields, extractedfield.FieldExtractedValue)
	}
	if m.page_number != nil {
		fields = append(fields, extractedfield.FieldPageNumber)
	}
	if m.confidence_score != nil {
		fields = append(fields, extractedfield.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, extractedfield.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldDocumentID:
		return m.DocumentID()
	case extractedfield.FieldFieldName:
		return m.FieldName()
	case extractedfield.FieldExtractedValue:
		return m.ExtractedValue()
	case extractedfield.FieldPageNumber:
		return m.PageNumber()
	case extractedfield.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extractedfield.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedfield.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedfield.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractedfield.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case extractedfield.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case extractedfield.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extractedfield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedfield.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractedfield.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case extractedfield.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case extractedfield.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extractedfield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedFieldMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, extractedfield.FieldPageNumber)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, extractedfield.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldPageNumber:
		return m.AddedPageNumber()
	case extractedfield.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case extractedfield.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedfield.FieldPageNumber) {
		fields = append(fields, extractedfield.FieldPageNumber)
	}
	if m.FieldCleared(extractedfield.FieldConfidenceScore) {
		fields = append(fields, extractedfield.FieldConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ClearField(name string) error {
	switch name {
	case extractedfield.FieldPageNumber:
		m.ClearPageNumber()
		return nil
	case extractedfield.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ResetField(name string) error {
	switch name {
	case extractedfield.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedfield.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractedfield.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case extractedfield.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case extractedfield.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extractedfield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extractedfield.EdgeDocument)
	}
	if m.corrections != nil {
		edges = append(edges, extractedfield.EdgeCorrections)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedfield.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractedfield.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.corrections))
		for id := range m.corrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcorrections != nil {
		edges = append(edges, extractedfield.EdgeCorrections)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedFieldMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractedfield.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.removedcorrections))
		for id := range m.removedcorrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extractedfield.EdgeDocument)
	}
	if m.clearedcorrections {
		edges = append(edges, extractedfield.EdgeCorrections)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedfield.EdgeDocument:
		return m.cleareddocument
	case extractedfield.EdgeCorrections:
		return m.clearedcorrections
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedFieldMutation) ClearEdge(name string) error {
	switch name {
	case extractedfield.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedFieldMutation) ResetEdge(name string) error {
	switch name {
	case extractedfield.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractedfield.EdgeCorrections:
		m.ResetCorrections()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField edge %s", name)
}

// FinancialHighlightMutation represents an operation that mutates the FinancialHighlight nodes in the graph.
type FinancialHighlightMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	period                  *string
	currency                *string
	revenue                 *float64
	addrevenue              *float64
	ebitda                  *float64
	addebitda               *float64
	ebitda_margin           *float64
	addebitda_margin        *float64
	ebit                    *float64
	addebit                 *float64
	ebit_margin             *float64
	addebit_margin          *float64
	net_profit_after_tax    *float64
	addnet_profit_after_tax *float64
	capex                   *float64
	addcapex                *float64
	net_debt                *float64
	addnet_debt             *float64
	clearedFields           map[string]struct{}
	company                 *uuid.UUID
	clearedcompany          bool
	done                    bool
	oldValue                func(context.Context) (*FinancialHighlight, error)
	predicates              []predicate.FinancialHighlight
}

var _ ent.Mutation = (*FinancialHighlightMutation)(nil)

// financialhighlightOption allows management of the mutation configuration using functional options.
type financialhighlightOption func(*FinancialHighlightMutation)

// newFinancialHighlightMutation creates new mutation for the FinancialHighlight entity.
func newFinancialHighlightMutation(c config, op Op, opts ...financialhighlightOption) *FinancialHighlightMutation {
	m := &FinancialHighlightMutation{
		config:        c,
		op:            op,
		typ:           TypeFinancialHighlight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinancialHighlightID sets the ID field of the mutation.
func withFinancialHighlightID(id uuid.UUID) financialhighlightOption {
	return func(m *FinancialHighlightMutation) {
		var (
			err   error
			once  sync.Once
			value *FinancialHighlight
		)
		m.oldValue = func(ctx context.Context) (*FinancialHighlight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinancialHighlight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinancialHighlight sets the old FinancialHighlight of the mutation.
func withFinancialHighlight(node *FinancialHighlight) financialhighlightOption {
	return func(m *FinancialHighlightMutation) {
		m.oldValue = func(context.Context) (*FinancialHighlight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinancialHighlightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinancialHighlightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinancialHighlight entities.
func (m *FinancialHighlightMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinancialHighlightMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinancialHighlightMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinancialHighlight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *FinancialHighlightMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *FinancialHighlightMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *FinancialHighlightMutation) ResetCompanyID() {
	m.company = nil
}

// SetPeriod sets the "period" field.
func (m *FinancialHighlightMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *FinancialHighlightMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *FinancialHighlightMutation) ResetPeriod() {
	m.period = nil
}

// SetCurrency sets the "currency" field.
func (m *FinancialHighlightMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *FinancialHighlightMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldCurrency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ClearCurrency clears the value of the "currency" field.
func (m *FinancialHighlightMutation) ClearCurrency() {
	m.currency = nil
	m.clearedFields[financialhighlight.FieldCurrency] = struct{}{}
}

// CurrencyCleared returns if the "currency" field was cleared in this mutation.
func (m *FinancialHighlightMutation) CurrencyCleared() bool {
	_, ok := m.clearedFields[financialhighlight.FieldCurrency]
	return ok
}

// ResetCurrency resets all changes to the "currency" field.
func (m *FinancialHighlightMutation) ResetCurrency() {
	m.currency = nil
	delete(m.clearedFields, financialhighlight.FieldCurrency)
}

// SetRevenue sets the "revenue" field.
func (m *FinancialHighlightMutation) SetRevenue(f float64) {
	m.revenue = &f
	m.addrevenue = nil
}

// Revenue returns the value of the "revenue" field in the mutation.
func (m *FinancialHighlightMutation) Revenue() (r float64, exists bool) {
	v := m.revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenue returns the old "revenue" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldRevenue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenue: %w", err)
	}
	return oldValue.Revenue, nil
}

// AddRevenue adds f to the "revenue" field.
func (m *FinancialHighlightMutation) AddRevenue(f float64) {
	if m.addrevenue != nil {
		*m.addrevenue += f
	} else {
		m.addrevenue = &f
	}
}

// AddedRevenue returns the value that was added to the "revenue" field in this mutation.
func (m *FinancialHighlightMutation) AddedRevenue() (r float64, exists bool) {
	v := m.addrevenue
	if v == nil {
		return
	}
	return *v, true
}

// ResetRevenue resets all changes to the "revenue" field.
func (m *FinancialHighlightMutation) ResetRevenue() {
	m.revenue = nil
	m.addrevenue = nil
}

// SetEbitda sets the "ebitda" field.
func (m *FinancialHighlightMutation) SetEbitda(f float64) {
	m.ebitda = &f
	m.addebitda = nil
}

// Ebitda returns the value of the "ebitda" field in the mutation.
func (m *FinancialHighlightMutation) Ebitda() (r float64, exists bool) {
	v := m.ebitda
	if v == nil {
		return
	}
	return *v, true
}

// OldEbitda returns the old "ebitda" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldEbitda(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEbitda is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEbitda requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEbitda: %w", err)
	}
	return oldValue.Ebitda, nil
}

// AddEbitda adds f to the "ebitda" field.
func (m *FinancialHighlightMutation) AddEbitda(f float64) {
	if m.addebitda != nil {
		*m.addebitda += f
	} else {
		m.addebitda = &f
	}
}

// AddedEbitda returns the value that was added to the "ebitda" field in this mutation.
func (m *FinancialHighlightMutation) AddedEbitda() (r float64, exists bool) {
	v := m.addebitda
	if v == nil {
		return
	}
	return *v, true
}

// ResetEbitda resets all changes to the "ebitda" field.
func (m *FinancialHighlightMutation) ResetEbitda() {
	m.ebitda = nil
	m.addebitda = nil
}

// SetEbitdaMargin sets the "ebitda_margin" field.
func (m *FinancialHighlightMutation) SetEbitdaMargin(f float64) {
	m.ebitda_margin = &f
	m.addebitda_margin = nil
}

// EbitdaMargin returns the value of the "ebitda_margin" field in the mutation.
func (m *FinancialHighlightMutation) EbitdaMargin() (r float64, exists bool) {
	v := m.ebitda_margin
	if v == nil {
		return
	}
	return *v, true
}

// OldEbitdaMargin returns the old "ebitda_margin" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldEbitdaMargin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEbitdaMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEbitdaMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEbitdaMargin: %w", err)
	}
	return oldValue.EbitdaMargin, nil
}

// AddEbitdaMargin adds f to the "ebitda_margin" field.
func (m *FinancialHighlightMutation) AddEbitdaMargin(f float64) {
	if m.addebitda_margin != nil {
		*m.addebitda_margin += f
	} else {
		m.addebitda_margin = &f
	}
}

// AddedEbitdaMargin returns the value that was added to the "ebitda_margin" field in this mutation.
func (m *FinancialHighlightMutation) AddedEbitdaMargin() (r float64, exists bool) {
	v := m.addebitda_margin
	if v == nil {
		return
	}
	return *v, true
}

// ResetEbitdaMargin resets all changes to the "ebitda_margin" field.
func (m *FinancialHighlightMutation) ResetEbitdaMargin() {
	m.ebitda_margin = nil
	m.addebitda_margin = nil
}

// SetEbit sets the "ebit" field.
func (m *FinancialHighlightMutation) SetEbit(f float64) {
	m.ebit = &f
	m.addebit = nil
}

// Ebit returns the value of the "ebit" field in the mutation.
func (m *FinancialHighlightMutation) Ebit() (r float64, exists bool) {
	v := m.ebit
	if v == nil {
		return
	}
	return *v, true
}

// OldEbit returns the old "ebit" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldEbit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEbit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEbit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEbit: %w", err)
	}
	return oldValue.Ebit, nil
}

// AddEbit adds f to the "ebit" field.
func (m *FinancialHighlightMutation) AddEbit(f float64) {
	if m.addebit != nil {
		*m.addebit += f
	} else {
		m.addebit = &f
	}
}

// AddedEbit returns the value that was added to the "ebit" field in this mutation.
func (m *FinancialHighlightMutation) AddedEbit() (r float64, exists bool) {
	v := m.addebit
	if v == nil {
		return
	}
	return *v, true
}

// ResetEbit resets all changes to the "ebit" field.
func (m *FinancialHighlightMutation) ResetEbit() {
	m.ebit = nil
	m.addebit = nil
}

// SetEbitMargin sets the "ebit_margin" field.
func (m *FinancialHighlightMutation) SetEbitMargin(f float64) {
	m.ebit_margin = &f
	m.addebit_margin = nil
}

// EbitMargin returns the value of the "ebit_margin" field in the mutation.
func (m *FinancialHighlightMutation) EbitMargin() (r float64, exists bool) {
	v := m.ebit_margin
	if v == nil {
		return
	}
	return *v, true
}

// OldEbitMargin returns the old "ebit_margin" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldEbitMargin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEbitMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEbitMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEbitMargin: %w", err)
	}
	return oldValue.EbitMargin, nil
}

// AddEbitMargin adds f to the "ebit_margin" field.
func (m *FinancialHighlightMutation) AddEbitMargin(f float64) {
	if m.addebit_margin != nil {
		*m.addebit_margin += f
	} else {
		m.addebit_margin = &f
	}
}

// AddedEbitMargin returns the value that was added to the "ebit_margin" field in this mutation.
func (m *FinancialHighlightMutation) AddedEbitMargin() (r float64, exists bool) {
	v := m.addebit_margin
	if v == nil {
		return
	}
	return *v, true
}

// ResetEbitMargin resets all changes to the "ebit_margin" field.
func (m *FinancialHighlightMutation) ResetEbitMargin() {
	m.ebit_margin = nil
	m.addebit_margin = nil
}

// SetNetProfitAfterTax sets the "net_profit_after_tax" field.
func (m *FinancialHighlightMutation) SetNetProfitAfterTax(f float64) {
	m.net_profit_after_tax = &f
	m.addnet_profit_after_tax = nil
}

// NetProfitAfterTax returns the value of the "net_profit_after_tax" field in the mutation.
func (m *FinancialHighlightMutation) NetProfitAfterTax() (r float64, exists bool) {
	v := m.net_profit_after_tax
	if v == nil {
		return
	}
	return *v, true
}

// OldNetProfitAfterTax returns the old "net_profit_after_tax" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldNetProfitAfterTax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetProfitAfterTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetProfitAfterTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetProfitAfterTax: %w", err)
	}
	return oldValue.NetProfitAfterTax, nil
}

// AddNetProfitAfterTax adds f to the "net_profit_after_tax" field.
func (m *FinancialHighlightMutation) AddNetProfitAfterTax(f float64) {
	if m.addnet_profit_after_tax != nil {
		*m.addnet_profit_after_tax += f
	} else {
		m.addnet_profit_after_tax = &f
	}
}

// AddedNetProfitAfterTax returns the value that was added to the "net_profit_after_tax" field in this mutation.
func (m *FinancialHighlightMutation) AddedNetProfitAfterTax() (r float64, exists bool) {
	v := m.addnet_profit_after_tax
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetProfitAfterTax resets all changes to the "net_profit_after_tax" field.
func (m *FinancialHighlightMutation) ResetNetProfitAfterTax() {
	m.net_profit_after_tax = nil
	m.addnet_profit_after_tax = nil
}

// SetCapex sets the "capex" field.
func (m *FinancialHighlightMutation) SetCapex(f float64) {
	m.capex = &f
	m.addcapex = nil
}

// Capex returns the value of the "capex" field in the mutation.
func (m *FinancialHighlightMutation) Capex() (r float64, exists bool) {
	v := m.capex
	if v == nil {
		return
	}
	return *v, true
}

// OldCapex returns the old "capex" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldCapex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapex: %w", err)
	}
	return oldValue.Capex, nil
}

// AddCapex adds f to the "capex" field.
func (m *FinancialHighlightMutation) AddCapex(f float64) {
	if m.addcapex != nil {
		*m.addcapex += f
	} else {
		m.addcapex = &f
	}
}

// AddedCapex returns the value that was added to the "capex" field in this mutation.
func (m *FinancialHighlightMutation) AddedCapex() (r float64, exists bool) {
	v := m.addcapex
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapex resets all changes to the "capex" field.
func (m *FinancialHighlightMutation) ResetCapex() {
	m.capex = nil
	m.addcapex = nil
}

// SetNetDebt sets the "net_debt" field.
func (m *FinancialHighlightMutation) SetNetDebt(f float64) {
	m.net_debt = &f
	m.addnet_debt = nil
}

// NetDebt returns the value of the "net_debt" field in the mutation.
func (m *FinancialHighlightMutation) NetDebt() (r float64, exists bool) {
	v := m.net_debt
	if v == nil {
		return
	}
	return *v, true
}

// OldNetDebt returns the old "net_debt" field's value of the FinancialHighlight entity.
// If the FinancialHighlight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialHighlightMutation) OldNetDebt(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetDebt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetDebt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetDebt: %w", err)
	}
	return oldValue.NetDebt, nil
}

// AddNetDebt adds f to the "net_debt" field.
func (m *FinancialHighlightMutation) AddNetDebt(f float64) {
	if m.addnet_debt != nil {
		*m.addnet_debt += f
	} else {
		m.addnet_debt = &f
	}
}

// AddedNetDebt returns the value that was added to the "net_debt" field in this mutation.
func (m *FinancialHighlightMutation) AddedNetDebt() (r float64, exists bool) {
	v := m.addnet_debt
	if v == nil {
		return
	}
	return *v, true
}

// ResetNetDebt resets all changes to the "net_debt" field.
func (m *FinancialHighlightMutation) ResetNetDebt() {
	m.net_debt = nil
	m.addnet_debt = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *FinancialHighlightMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[financialhighlight.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *FinancialHighlightMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *FinancialHighlightMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *FinancialHighlightMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the FinancialHighlightMutation builder.
func (m *FinancialHighlightMutation) Where(ps ...predicate.FinancialHighlight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinancialHighlightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinancialHighlightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinancialHighlight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinancialHighlightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinancialHighlightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinancialHighlight).
func (m *FinancialHighlightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinancialHighlightMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.company != nil {
		fields = append(fields, financialhighlight.FieldCompanyID)
	}
	if m.period != nil {
		fields = append(fields, financialhighlight.FieldPeriod)
	}
	if m.currency != nil {
		fields = append(fields, financialhighlight.FieldCurrency)
	}
	if m.revenue != nil {
		fields = append(fields, financialhighlight.FieldRevenue)
	}
	if m.ebitda != nil {
		fields = append(fields, financialhighlight.FieldEbitda)
	}
	if m.ebitda_margin != nil {
		fields = append(fields, financialhighlight.FieldEbitdaMargin)
	}
	if m.ebit != nil {
		fields = append(fields, financialhighlight.FieldEbit)
	}
	if m.ebit_margin != nil {
		fields = append(fields, financialhighlight.FieldEbitMargin)
	}
	if m.net_profit_after_tax != nil {
		fields = append(fields, financialhighlight.FieldNetProfitAfterTax)
	}
	if m.capex != nil {
		fields = append(fields, financialhighlight.FieldCapex)
	}
	if m.net_debt != nil {
		fields = append(fields, financialhighlight.FieldNetDebt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinancialHighlightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case financialhighlight.FieldCompanyID:
		return m.CompanyID()
	case financialhighlight.FieldPeriod:
		return m.Period()
	case financialhighlight.FieldCurrency:
		return m.Currency()
	case financialhighlight.FieldRevenue:
		return m.Revenue()
	case financialhighlight.FieldEbitda:
		return m.Ebitda()
	case financialhighlight.FieldEbitdaMargin:
		return m.EbitdaMargin()
	case financialhighlight.FieldEbit:
		return m.Ebit()
	case financialhighlight.FieldEbitMargin:
		return m.EbitMargin()
	case financialhighlight.FieldNetProfitAfterTax:
		return m.NetProfitAfterTax()
	case financialhighlight.FieldCapex:
		return m.Capex()
	case financialhighlight.FieldNetDebt:
		return m.NetDebt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinancialHighlightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case financialhighlight.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case financialhighlight.FieldPeriod:
		return m.OldPeriod(ctx)
	case financialhighlight.FieldCurrency:
		return m.OldCurrency(ctx)
	case financialhighlight.FieldRevenue:
		return m.OldRevenue(ctx)
	case financialhighlight.FieldEbitda:
		return m.OldEbitda(ctx)
	case financialhighlight.FieldEbitdaMargin:
		return m.OldEbitdaMargin(ctx)
	case financialhighlight.FieldEbit:
		return m.OldEbit(ctx)
	case financialhighlight.FieldEbitMargin:
		return m.OldEbitMargin(ctx)
	case financialhighlight.FieldNetProfitAfterTax:
		return m.OldNetProfitAfterTax(ctx)
	case financialhighlight.FieldCapex:
		return m.OldCapex(ctx)
	case financialhighlight.FieldNetDebt:
		return m.OldNetDebt(ctx)
	}
	return nil, fmt.Errorf("unknown FinancialHighlight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialHighlightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case financialhighlight.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case financialhighlight.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case financialhighlight.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case financialhighlight.FieldRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenue(v)
		return nil
	case financialhighlight.FieldEbitda:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEbitda(v)
		return nil
	case financialhighlight.FieldEbitdaMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEbitdaMargin(v)
		return nil
	case financialhighlight.FieldEbit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEbit(v)
		return nil
	case financialhighlight.FieldEbitMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEbitMargin(v)
		return nil
	case financialhighlight.FieldNetProfitAfterTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetProfitAfterTax(v)
		return nil
	case financialhighlight.FieldCapex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapex(v)
		return nil
	case financialhighlight.FieldNetDebt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetDebt(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinancialHighlightMutation) AddedFields() []string {
	var fields []string
	if m.addrevenue != nil {
		fields = append(fields, financialhighlight.FieldRevenue)
	}
	if m.addebitda != nil {
		fields = append(fields, financialhighlight.FieldEbitda)
	}
	if m.addebitda_margin != nil {
		fields = append(fields, financialhighlight.FieldEbitdaMargin)
	}
	if m.addebit != nil {
		fields = append(fields, financialhighlight.FieldEbit)
	}
	if m.addebit_margin != nil {
		fields = append(fields, financialhighlight.FieldEbitMargin)
	}
	if m.addnet_profit_after_tax != nil {
		fields = append(fields, financialhighlight.FieldNetProfitAfterTax)
	}
	if m.addcapex != nil {
		fields = append(fields, financialhighlight.FieldCapex)
	}
	if m.addnet_debt != nil {
		fields = append(fields, financialhighlight.FieldNetDebt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinancialHighlightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case financialhighlight.FieldRevenue:
		return m.AddedRevenue()
	case financialhighlight.FieldEbitda:
		return m.AddedEbitda()
	case financialhighlight.FieldEbitdaMargin:
		return m.AddedEbitdaMargin()
	case financialhighlight.FieldEbit:
		return m.AddedEbit()
	case financialhighlight.FieldEbitMargin:
		return m.AddedEbitMargin()
	case financialhighlight.FieldNetProfitAfterTax:
		return m.AddedNetProfitAfterTax()
	case financialhighlight.FieldCapex:
		return m.AddedCapex()
	case financialhighlight.FieldNetDebt:
		return m.AddedNetDebt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialHighlightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case financialhighlight.FieldRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRevenue(v)
		return nil
	case financialhighlight.FieldEbitda:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEbitda(v)
		return nil
	case financialhighlight.FieldEbitdaMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEbitdaMargin(v)
		return nil
	case financialhighlight.FieldEbit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEbit(v)
		return nil
	case financialhighlight.FieldEbitMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEbitMargin(v)
		return nil
	case financialhighlight.FieldNetProfitAfterTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetProfitAfterTax(v)
		return nil
	case financialhighlight.FieldCapex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapex(v)
		return nil
	case financialhighlight.FieldNetDebt:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetDebt(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinancialHighlightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(financialhighlight.FieldCurrency) {
		fields = append(fields, financialhighlight.FieldCurrency)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinancialHighlightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinancialHighlightMutation) ClearField(name string) error {
	switch name {
	case financialhighlight.FieldCurrency:
		m.ClearCurrency()
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinancialHighlightMutation) ResetField(name string) error {
	switch name {
	case financialhighlight.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case financialhighlight.FieldPeriod:
		m.ResetPeriod()
		return nil
	case financialhighlight.FieldCurrency:
		m.ResetCurrency()
		return nil
	case financialhighlight.FieldRevenue:
		m.ResetRevenue()
		return nil
	case financialhighlight.FieldEbitda:
		m.ResetEbitda()
		return nil
	case financialhighlight.FieldEbitdaMargin:
		m.ResetEbitdaMargin()
		return nil
	case financialhighlight.FieldEbit:
		m.ResetEbit()
		return nil
	case financialhighlight.FieldEbitMargin:
		m.ResetEbitMargin()
		return nil
	case financialhighlight.FieldNetProfitAfterTax:
		m.ResetNetProfitAfterTax()
		return nil
	case financialhighlight.FieldCapex:
		m.ResetCapex()
		return nil
	case financialhighlight.FieldNetDebt:
		m.ResetNetDebt()
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinancialHighlightMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, financialhighlight.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinancialHighlightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case financialhighlight.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinancialHighlightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinancialHighlightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinancialHighlightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, financialhighlight.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinancialHighlightMutation) EdgeCleared(name string) bool {
	switch name {
	case financialhighlight.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinancialHighlightMutation) ClearEdge(name string) error {
	switch name {
	case financialhighlight.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinancialHighlightMutation) ResetEdge(name string) error {
	switch name {
	case financialhighlight.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown FinancialHighlight edge %s", name)
}

// FundMutation represents an operation that mutates the Fund nodes in the graph.
type FundMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	_type              *string
	clearedFields      map[string]struct{}
	documents          map[uuid.UUID]struct{}
	removeddocuments   map[uuid.UUID]struct{}
	cleareddocuments   bool
	investments        map[uuid.UUID]struct{}
	removedinvestments map[uuid.UUID]struct{}
	clearedinvestments bool
	done               bool
	oldValue           func(context.Context) (*Fund, error)
	predicates         []predicate.Fund
}

var _ ent.Mutation = (*FundMutation)(nil)

// fundOption allows management of the mutation configuration using functional options.
type fundOption func(*FundMutation)

// newFundMutation creates new mutation for the Fund entity.
func newFundMutation(c config, op Op, opts ...fundOption) *FundMutation {
	m := &FundMutation{
		config:        c,
		op:            op,
		typ:           TypeFund,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFundID sets the ID field of the mutation.
func withFundID(id uuid.UUID) fundOption {
	return func(m *FundMutation) {
		var (
			err   error
			once  sync.Once
			value *Fund
		)
		m.oldValue = func(ctx context.Context) (*Fund, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fund.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFund sets the old Fund of the mutation.
func withFund(node *Fund) fundOption {
	return func(m *FundMutation) {
		m.oldValue = func(context.Context) (*Fund, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fund entities.
func (m *FundMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FundMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FundMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fund.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FundMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FundMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FundMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *FundMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *FundMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *FundMutation) ClearType() {
	m._type = nil
	m.clearedFields[fund.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *FundMutation) TypeCleared() bool {
	_, ok := m.clearedFields[fund.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *FundMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, fund.FieldType)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *FundMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *FundMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *FundMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *FundMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *FundMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *FundMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *FundMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by ids.
func (m *FundMutation) AddInvestmentIDs(ids ...uuid.UUID) {
	if m.investments == nil {
		m.investments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.investments[ids[i]] = struct{}{}
	}
}

// ClearInvestments clears the "investments" edge to the Investment entity.
func (m *FundMutation) ClearInvestments() {
	m.clearedinvestments = true
}

// InvestmentsCleared reports if the "investments" edge to the Investment entity was cleared.
func (m *FundMutation) InvestmentsCleared() bool {
	return m.clearedinvestments
}

// RemoveInvestmentIDs removes the "investments" edge to the Investment entity by IDs.
func (m *FundMutation) RemoveInvestmentIDs(ids ...uuid.UUID) {
	if m.removedinvestments == nil {
		m.removedinvestments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.investments, ids[i])
		m.removedinvestments[ids[i]] = struct{}{}
	}
}

// RemovedInvestments returns the removed IDs of the "investments" edge to the Investment entity.
func (m *FundMutation) RemovedInvestmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedinvestments {
		ids = append(ids, id)
	}
	return
}

// InvestmentsIDs returns the "investments" edge IDs in the mutation.
func (m *FundMutation) InvestmentsIDs() (ids []uuid.UUID) {
	for id := range m.investments {
		ids = append(ids, id)
	}
	return
}

// ResetInvestments resets all changes to the "investments" edge.
func (m *FundMutation) ResetInvestments() {
	m.investments = nil
	m.clearedinvestments = false
	m.removedinvestments = nil
}

// Where appends a list predicates to the FundMutation builder.
func (m *FundMutation) Where(ps ...predicate.Fund) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fund, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fund).
func (m *FundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FundMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, fund.FieldName)
	}
	if m._type != nil {
		fields = append(fields, fund.FieldType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fund.FieldName:
		return m.Name()
	case fund.FieldType:
		return m.GetType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fund.FieldName:
		return m.OldName(ctx)
	case fund.FieldType:
		return m.OldType(ctx)
	}
	return nil, fmt.Errorf("unknown Fund field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fund.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case fund.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	}
	return fmt.Errorf("unknown Fund field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FundMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FundMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Fund numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fund.FieldType) {
		fields = append(fields, fund.FieldType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FundMutation) ClearField(name string) error {
	switch name {
	case fund.FieldType:
		m.ClearType()
		return nil
	}
	return fmt.Errorf("unknown Fund nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FundMutation) ResetField(name string) error {
	switch name {
	case fund.FieldName:
		m.ResetName()
		return nil
	case fund.FieldType:
		m.ResetType()
		return nil
	}
	return fmt.Errorf("unknown Fund field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FundMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.documents != nil {
		edges = append(edges, fund.EdgeDocuments)
	}
	if m.investments != nil {
		edges = append(edges, fund.EdgeInvestments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fund.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case fund.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.investments))
		for id := range m.investments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, fund.EdgeDocuments)
	}
	if m.removedinvestments != nil {
		edges = append(edges, fund.EdgeInvestments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FundMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fund.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case fund.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.removedinvestments))
		for id := range m.removedinvestments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocuments {
		edges = append(edges, fund.EdgeDocuments)
	}
	if m.clearedinvestments {
		edges = append(edges, fund.EdgeInvestments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FundMutation) EdgeCleared(name string) bool {
	switch name {
	case fund.EdgeDocuments:
		return m.cleareddocuments
	case fund.EdgeInvestments:
		return m.clearedinvestments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FundMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Fund unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FundMutation) ResetEdge(name string) error {
	switch name {
	case fund.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case fund.EdgeInvestments:
		m.ResetInvestments()
		return nil
	}
	return fmt.Errorf("unknown Fund edge %s", name)
}

// InvestmentMutation represents an operation that mutates the Investment nodes in the graph.
type InvestmentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	fund_role                *string
	investment_type          *string
	ownership_percent        *float64
	addownership_percent     *float64
	date_of_first_completion *time.Time
	transaction_value        *float64
	addtransaction_value     *float64
	current_cost             *float64
	addcurrent_cost          *float64
	fair_value               *float64
	addfair_value            *float64
	clearedFields            map[string]struct{}
	fund                     *uuid.UUID
	clearedfund              bool
	company                  *uuid.UUID
	clearedcompany           bool
	done                     bool
	oldValue                 func(context.Context) (*Investment, error)
	predicates               []predicate.Investment
}

var _ ent.Mutation = (*InvestmentMutation)(nil)

// investmentOption allows management of the mutation configuration using functional options.
type investmentOption func(*InvestmentMutation)

// newInvestmentMutation creates new mutation for the Investment entity.
func newInvestmentMutation(c config, op Op, opts ...investmentOption) *InvestmentMutation {
	m := &InvestmentMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestmentID sets the ID field of the mutation.
func withInvestmentID(id uuid.UUID) investmentOption {
	return func(m *InvestmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Investment
		)
		m.oldValue = func(ctx context.Context) (*Investment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestment sets the old Investment of the mutation.
func withInvestment(node *Investment) investmentOption {
	return func(m *InvestmentMutation) {
		m.oldValue = func(context.Context) (*Investment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investment entities.
func (m *InvestmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFundID sets the "fund_id" field.
func (m *InvestmentMutation) SetFundID(u uuid.UUID) {
	m.fund = &u
}

// FundID returns the value of the "fund_id" field in the mutation.
func (m *InvestmentMutation) FundID() (r uuid.UUID, exists bool) {
	v := m.fund
	if v == nil {
		return
	}
	return *v, true
}

// OldFundID returns the old "fund_id" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldFundID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundID: %w", err)
	}
	return oldValue.FundID, nil
}

// ClearFundID clears the value of the "fund_id" field.
func (m *InvestmentMutation) ClearFundID() {
	m.fund = nil
	m.clearedFields[investment.FieldFundID] = struct{}{}
}

// FundIDCleared returns if the "fund_id" field was cleared in this mutation.
func (m *InvestmentMutation) FundIDCleared() bool {
	_, ok := m.clearedFields[investment.FieldFundID]
	return ok
}

// ResetFundID resets all changes to the "fund_id" field.
func (m *InvestmentMutation) ResetFundID() {
	m.fund = nil
	delete(m.clearedFields, investment.FieldFundID)
}

// SetCompanyID sets the "company_id" field.
func (m *InvestmentMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *InvestmentMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *InvestmentMutation) ResetCompanyID() {
	m.company = nil
}

// SetFundRole sets the "fund_role" field.
func (m *InvestmentMutation) SetFundRole(s string) {
	m.fund_role = &s
}

// FundRole returns the value of the "fund_role" field in the mutation.
func (m *InvestmentMutation) FundRole() (r string, exists bool) {
	v := m.fund_role
	if v == nil {
		return
	}
	return *v, true
}

// OldFundRole returns the old "fund_role" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldFundRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundRole: %w", err)
	}
	return oldValue.FundRole, nil
}

// ClearFundRole clears the value of the "fund_role" field.
func (m *InvestmentMutation) ClearFundRole() {
	m.fund_role = nil
	m.clearedFields[investment.FieldFundRole] = struct{}{}
}

// FundRoleCleared returns if the "fund_role" field was cleared in this mutation.
func (m *InvestmentMutation) FundRoleCleared() bool {
	_, ok := m.clearedFields[investment.FieldFundRole]
	return ok
}

// ResetFundRole resets all changes to the "fund_role" field.
func (m *InvestmentMutation) ResetFundRole() {
	m.fund_role = nil
	delete(m.clearedFields, investment.FieldFundRole)
}

// SetInvestmentType sets the "investment_type" field.
func (m *InvestmentMutation) SetInvestmentType(s string) {
	m.investment_type = &s
}

// InvestmentType returns the value of the "investment_type" field in the mutation.
func (m *InvestmentMutation) InvestmentType() (r string, exists bool) {
	v := m.investment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestmentType returns the old "investment_type" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldInvestmentType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestmentType: %w", err)
	}
	return oldValue.InvestmentType, nil
}

// ClearInvestmentType clears the value of the "investment_type" field.
func (m *InvestmentMutation) ClearInvestmentType() {
	m.investment_type = nil
	m.clearedFields[investment.FieldInvestmentType] = struct{}{}
}

// InvestmentTypeCleared returns if the "investment_type" field was cleared in this mutation.
func (m *InvestmentMutation) InvestmentTypeCleared() bool {
	_, ok := m.clearedFields[investment.FieldInvestmentType]
	return ok
}

// ResetInvestmentType resets all changes to the "investment_type" field.
func (m *InvestmentMutation) ResetInvestmentType() {
	m.investment_type = nil
	delete(m.clearedFields, investment.FieldInvestmentType)
}

// SetOwnershipPercent sets the "ownership_percent" field.
func (m *InvestmentMutation) SetOwnershipPercent(f float64) {
	m.ownership_percent = &f
	m.addownership_percent = nil
}

// OwnershipPercent returns the value of the "ownership_percent" field in the mutation.
func (m *InvestmentMutation) OwnershipPercent() (r float64, exists bool) {
	v := m.ownership_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnershipPercent returns the old "ownership_percent" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldOwnershipPercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnershipPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnershipPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnershipPercent: %w", err)
	}
	return oldValue.OwnershipPercent, nil
}

// AddOwnershipPercent adds f to the "ownership_percent" field.
func (m *InvestmentMutation) AddOwnershipPercent(f float64) {
	if m.addownership_percent != nil {
		*m.addownership_percent += f
	} else {
		m.addownership_percent = &f
	}
}

// AddedOwnershipPercent returns the value that was added to the "ownership_percent" field in this mutation.
func (m *InvestmentMutation) AddedOwnershipPercent() (r float64, exists bool) {
	v := m.addownership_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnershipPercent resets all changes to the "ownership_percent" field.
func (m *InvestmentMutation) ResetOwnershipPercent() {
	m.ownership_percent = nil
	m.addownership_percent = nil
}

// SetDateOfFirstCompletion sets the "date_of_first_completion" field.
func (m *InvestmentMutation) SetDateOfFirstCompletion(t time.Time) {
	m.date_of_first_completion = &t
}

// DateOfFirstCompletion returns the value of the "date_of_first_completion" field in the mutation.
func (m *InvestmentMutation) DateOfFirstCompletion() (r time.Time, exists bool) {
	v := m.date_of_first_completion
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfFirstCompletion returns the old "date_of_first_completion" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldDateOfFirstCompletion(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfFirstCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfFirstCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfFirstCompletion: %w", err)
	}
	return oldValue.DateOfFirstCompletion, nil
}

// ClearDateOfFirstCompletion clears the value of the "date_of_first_completion" field.
func (m *InvestmentMutation) ClearDateOfFirstCompletion() {
	m.date_of_first_completion = nil
	m.clearedFields[investment.FieldDateOfFirstCompletion] = struct{}{}
}

// DateOfFirstCompletionCleared returns if the "date_of_first_completion" field was cleared in this mutation.
func (m *InvestmentMutation) DateOfFirstCompletionCleared() bool {
	_, ok := m.clearedFields[investment.FieldDateOfFirstCompletion]
	return ok
}

// ResetDateOfFirstCompletion resets all changes to the "date_of_first_completion" field.
func (m *InvestmentMutation) ResetDateOfFirstCompletion() {
	m.date_of_first_completion = nil
	delete(m.clearedFields, investment.FieldDateOfFirstCompletion)
}

// SetTransactionValue sets the "transaction_value" field.
func (m *InvestmentMutation) SetTransactionValue(f float64) {
	m.transaction_value = &f
	m.addtransaction_value = nil
}

// TransactionValue returns the value of the "transaction_value" field in the mutation.
func (m *InvestmentMutation) TransactionValue() (r float64, exists bool) {
	v := m.transaction_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionValue returns the old "transaction_value" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldTransactionValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionValue: %w", err)
	}
	return oldValue.TransactionValue, nil
}

// AddTransactionValue adds f to the "transaction_value" field.
func (m *InvestmentMutation) AddTransactionValue(f float64) {
	if m.addtransaction_value != nil {
		*m.addtransaction_value += f
	} else {
		m.addtransaction_value = &f
	}
}

// AddedTransactionValue returns the value that was added to the "transaction_value" field in this mutation.
func (m *InvestmentMutation) AddedTransactionValue() (r float64, exists bool) {
	v := m.addtransaction_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetTransactionValue resets all changes to the "transaction_value" field.
func (m *InvestmentMutation) ResetTransactionValue() {
	m.transaction_value = nil
	m.addtransaction_value = nil
}

// SetCurrentCost sets the "current_cost" field.
func (m *InvestmentMutation) SetCurrentCost(f float64) {
	m.current_cost = &f
	m.addcurrent_cost = nil
}

// CurrentCost returns the value of the "current_cost" field in the mutation.
func (m *InvestmentMutation) CurrentCost() (r float64, exists bool) {
	v := m.current_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentCost returns the old "current_cost" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldCurrentCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentCost: %w", err)
	}
	return oldValue.CurrentCost, nil
}

// AddCurrentCost adds f to the "current_cost" field.
func (m *InvestmentMutation) AddCurrentCost(f float64) {
	if m.addcurrent_cost != nil {
		*m.addcurrent_cost += f
	} else {
		m.addcurrent_cost = &f
	}
}

// AddedCurrentCost returns the value that was added to the "current_cost" field in this mutation.
func (m *InvestmentMutation) AddedCurrentCost() (r float64, exists bool) {
	v := m.addcurrent_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentCost resets all changes to the "current_cost" field.
func (m *InvestmentMutation) ResetCurrentCost() {
	m.current_cost = nil
	m.addcurrent_cost = nil
}

// SetFairValue sets the "fair_value" field.
func (m *InvestmentMutation) SetFairValue(f float64) {
	m.fair_value = &f
	m.addfair_value = nil
}

// FairValue returns the value of the "fair_value" field in the mutation.
func (m *InvestmentMutation) FairValue() (r float64, exists bool) {
	v := m.fair_value
	if v == nil {
		return
	}
	return *v, true
}

// OldFairValue returns the old "fair_value" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldFairValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFairValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFairValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFairValue: %w", err)
	}
	return oldValue.FairValue, nil
}

// AddFairValue adds f to the "fair_value" field.
func (m *InvestmentMutation) AddFairValue(f float64) {
	if m.addfair_value != nil {
		*m.addfair_value += f
	} else {
		m.addfair_value = &f
	}
}

// AddedFairValue returns the value that was added to the "fair_value" field in this mutation.
func (m *InvestmentMutation) AddedFairValue() (r float64, exists bool) {
	v := m.addfair_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetFairValue resets all changes to the "fair_value" field.
func (m *InvestmentMutation) ResetFairValue() {
	m.fair_value = nil
	m.addfair_value = nil
}

// ClearFund clears the "fund" edge to the Fund entity.
func (m *InvestmentMutation) ClearFund() {
	m.clearedfund = true
	m.clearedFields[investment.FieldFundID] = struct{}{}
}

// FundCleared reports if the "fund" edge to the Fund entity was cleared.
func (m *InvestmentMutation) FundCleared() bool {
	return m.FundIDCleared() || m.clearedfund
}

// FundIDs returns the "fund" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FundID instead. It exists only for internal usage by the builders.
func (m *InvestmentMutation) FundIDs() (ids []uuid.UUID) {
	if id := m.fund; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFund resets all changes to the "fund" edge.
func (m *InvestmentMutation) ResetFund() {
	m.fund = nil
	m.clearedfund = false
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *InvestmentMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[investment.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *InvestmentMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *InvestmentMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *InvestmentMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the InvestmentMutation builder.
func (m *InvestmentMutation) Where(ps ...predicate.Investment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investment).
func (m *InvestmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.fund != nil {
		fields = append(fields, investment.FieldFundID)
	}
	if m.company != nil {
		fields = append(fields, investment.FieldCompanyID)
	}
	if m.fund_role != nil {
		fields = append(fields, investment.FieldFundRole)
	}
	if m.investment_type != nil {
		fields = append(fields, investment.FieldInvestmentType)
	}
	if m.ownership_percent != nil {
		fields = append(fields, investment.FieldOwnershipPercent)
	}
	if m.date_of_first_completion != nil {
		fields = append(fields, investment.FieldDateOfFirstCompletion)
	}
	if m.transaction_value != nil {
		fields = append(fields, investment.FieldTransactionValue)
	}
	if m.current_cost != nil {
		fields = append(fields, investment.FieldCurrentCost)
	}
	if m.fair_value != nil {
		fields = append(fields, investment.FieldFairValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investment.FieldFundID:
		return m.FundID()
	case investment.FieldCompanyID:
		return m.CompanyID()
	case investment.FieldFundRole:
		return m.FundRole()
	case investment.FieldInvestmentType:
		return m.InvestmentType()
	case investment.FieldOwnershipPercent:
		return m.OwnershipPercent()
	case investment.FieldDateOfFirstCompletion:
		return m.DateOfFirstCompletion()
	case investment.FieldTransactionValue:
		return m.TransactionValue()
	case investment.FieldCurrentCost:
		return m.CurrentCost()
	case investment.FieldFairValue:
		return m.FairValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investment.FieldFundID:
		return m.OldFundID(ctx)
	case investment.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case investment.FieldFundRole:
		return m.OldFundRole(ctx)
	case investment.FieldInvestmentType:
		return m.OldInvestmentType(ctx)
	case investment.FieldOwnershipPercent:
		return m.OldOwnershipPercent(ctx)
	case investment.FieldDateOfFirstCompletion:
		return m.OldDateOfFirstCompletion(ctx)
	case investment.FieldTransactionValue:
		return m.OldTransactionValue(ctx)
	case investment.FieldCurrentCost:
		return m.OldCurrentCost(ctx)
	case investment.FieldFairValue:
		return m.OldFairValue(ctx)
	}
	return nil, fmt.Errorf("unknown Investment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investment.FieldFundID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundID(v)
		return nil
	case investment.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case investment.FieldFundRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundRole(v)
		return nil
	case investment.FieldInvestmentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestmentType(v)
		return nil
	case investment.FieldOwnershipPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnershipPercent(v)
		return nil
	case investment.FieldDateOfFirstCompletion:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfFirstCompletion(v)
		return nil
	case investment.FieldTransactionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionValue(v)
		return nil
	case investment.FieldCurrentCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentCost(v)
		return nil
	case investment.FieldFairValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFairValue(v)
		return nil
	}
	return fmt.Errorf("unknown Investment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestmentMutation) AddedFields() []string {
	var fields []string
	if m.addownership_percent != nil {
		fields = append(fields, investment.FieldOwnershipPercent)
	}
	if m.addtransaction_value != nil {
		fields = append(fields, investment.FieldTransactionValue)
	}
	if m.addcurrent_cost != nil {
		fields = append(fields, investment.FieldCurrentCost)
	}
	if m.addfair_value != nil {
		fields = append(fields, investment.FieldFairValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investment.FieldOwnershipPercent:
		return m.AddedOwnershipPercent()
	case investment.FieldTransactionValue:
		return m.AddedTransactionValue()
	case investment.FieldCurrentCost:
		return m.AddedCurrentCost()
	case investment.FieldFairValue:
		return m.AddedFairValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investment.FieldOwnershipPercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnershipPercent(v)
		return nil
	case investment.FieldTransactionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTransactionValue(v)
		return nil
	case investment.FieldCurrentCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentCost(v)
		return nil
	case investment.FieldFairValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFairValue(v)
		return nil
	}
	return fmt.Errorf("unknown Investment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investment.FieldFundID) {
		fields = append(fields, investment.FieldFundID)
	}
	if m.FieldCleared(investment.FieldFundRole) {
		fields = append(fields, investment.FieldFundRole)
	}
	if m.FieldCleared(investment.FieldInvestmentType) {
		fields = append(fields, investment.FieldInvestmentType)
	}
	if m.FieldCleared(investment.FieldDateOfFirstCompletion) {
		fields = append(fields, investment.FieldDateOfFirstCompletion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestmentMutation) ClearField(name string) error {
	switch name {
	case investment.FieldFundID:
		m.ClearFundID()
		return nil
	case investment.FieldFundRole:
		m.ClearFundRole()
		return nil
	case investment.FieldInvestmentType:
		m.ClearInvestmentType()
		return nil
	case investment.FieldDateOfFirstCompletion:
		m.ClearDateOfFirstCompletion()
		return nil
	}
	return fmt.Errorf("unknown Investment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestmentMutation) ResetField(name string) error {
	switch name {
	case investment.FieldFundID:
		m.ResetFundID()
		return nil
	case investment.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case investment.FieldFundRole:
		m.ResetFundRole()
		return nil
	case investment.FieldInvestmentType:
		m.ResetInvestmentType()
		return nil
	case investment.FieldOwnershipPercent:
		m.ResetOwnershipPercent()
		return nil
	case investment.FieldDateOfFirstCompletion:
		m.ResetDateOfFirstCompletion()
		return nil
	case investment.FieldTransactionValue:
		m.ResetTransactionValue()
		return nil
	case investment.FieldCurrentCost:
		m.ResetCurrentCost()
		return nil
	case investment.FieldFairValue:
		m.ResetFairValue()
		return nil
	}
	return fmt.Errorf("unknown Investment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.fund != nil {
		edges = append(edges, investment.EdgeFund)
	}
	if m.company != nil {
		edges = append(edges, investment.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investment.EdgeFund:
		if id := m.fund; id != nil {
			return []ent.Value{*id}
		}
	case investment.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfund {
		edges = append(edges, investment.EdgeFund)
	}
	if m.clearedcompany {
		edges = append(edges, investment.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestmentMutation) EdgeCleared(name string) bool {
	switch name {
	case investment.EdgeFund:
		return m.clearedfund
	case investment.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestmentMutation) ClearEdge(name string) error {
	switch name {
	case investment.EdgeFund:
		m.ClearFund()
		return nil
	case investment.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Investment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestmentMutation) ResetEdge(name string) error {
	switch name {
	case investment.EdgeFund:
		m.ResetFund()
		return nil
	case investment.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown Investment edge %s", name)
}
