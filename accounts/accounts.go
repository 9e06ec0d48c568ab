package accounts

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// Account is a money account inside a budget.
type Account struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budgetId"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Balance   *float64  `json:"balance,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParams is the payload for account creation.
type CreateParams struct {
	BudgetID string `json:"budgetId"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// UpdateParams is the partial-update payload; nil fields are left untouched.
type UpdateParams struct {
	Name     *string `json:"name,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// API wraps the /accounts endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the accounts API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the accounts of one budget.
func (a *API) List(ctx context.Context, budgetID string) ([]Account, error) {
	var out []Account
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/accounts",
		Query:  url.Values{"budgetId": {budgetID}},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[accounts.List]")
	}
	return out, nil
}

// Get fetches one account by id.
func (a *API) Get(ctx context.Context, id string) (*Account, error) {
	var out Account
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/accounts/" + id,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[accounts.Get]")
	}
	return &out, nil
}

// Create creates an account.
func (a *API) Create(ctx context.Context, params CreateParams) (*Account, error) {
	var out Account
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/accounts",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[accounts.Create]")
	}
	return &out, nil
}

// Update applies a partial update to an account.
func (a *API) Update(ctx context.Context, id string, params UpdateParams) (*Account, error) {
	var out Account
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/accounts/" + id,
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[accounts.Update]")
	}
	return &out, nil
}

// Delete removes an account.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/accounts/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[accounts.Delete]")
	}
	return nil
}
