package transactions

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// Type classifies a transaction.
type Type string

const (
	TypeExpense  Type = "expense"
	TypeIncome   Type = "income"
	TypeTransfer Type = "transfer"
)

// Transaction is one money movement. Amounts are decimal strings, as the
// backend serializes them.
type Transaction struct {
	ID              string    `json:"id"`
	Type            Type      `json:"type"`
	Amount          string    `json:"amount"`
	OccurredAt      time.Time `json:"occurredAt"`
	TransferGroupID *string   `json:"transferGroupId"`
	CreatedByID     string    `json:"createdById"`
	BudgetID        string    `json:"budgetId"`
	AccountID       string    `json:"accountId"`
	CategoryID      string    `json:"categoryId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListFilter narrows a transaction listing. Zero fields are omitted.
type ListFilter struct {
	BudgetID   string
	AccountID  string
	CategoryID string
	From       time.Time
	To         time.Time
}

func (f ListFilter) query() url.Values {
	q := url.Values{}
	if f.BudgetID != "" {
		q.Set("budgetId", f.BudgetID)
	}
	if f.AccountID != "" {
		q.Set("accountId", f.AccountID)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if !f.From.IsZero() {
		q.Set("from", f.From.Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		q.Set("to", f.To.Format(time.RFC3339))
	}
	return q
}

// CreateParams is the payload for transaction creation.
type CreateParams struct {
	BudgetID   string    `json:"budgetId"`
	AccountID  string    `json:"accountId"`
	CategoryID string    `json:"categoryId"`
	Type       Type      `json:"type"`
	Amount     string    `json:"amount"`
	OccurredAt time.Time `json:"occurredAt"`
}

// UpdateParams is the partial-update payload; nil fields are left untouched.
type UpdateParams struct {
	AccountID  *string    `json:"accountId,omitempty"`
	CategoryID *string    `json:"categoryId,omitempty"`
	Amount     *string    `json:"amount,omitempty"`
	OccurredAt *time.Time `json:"occurredAt,omitempty"`
}

// API wraps the /transactions endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the transactions API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches transactions matching the filter.
func (a *API) List(ctx context.Context, filter ListFilter) ([]Transaction, error) {
	var out []Transaction
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/transactions",
		Query:  filter.query(),
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[transactions.List]")
	}
	return out, nil
}

// Create creates a transaction.
func (a *API) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	var out Transaction
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/transactions",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[transactions.Create]")
	}
	return &out, nil
}

// Update applies a partial update to a transaction.
func (a *API) Update(ctx context.Context, id string, params UpdateParams) (*Transaction, error) {
	var out Transaction
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/transactions/" + id,
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[transactions.Update]")
	}
	return &out, nil
}

// Delete removes a transaction.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/transactions/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[transactions.Delete]")
	}
	return nil
}
