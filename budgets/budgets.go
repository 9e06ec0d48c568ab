package budgets

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// Budget is a shared budget owned by one user.
type Budget struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Currency       string    `json:"currency"`
	InitialBalance string    `json:"initialBalance"`
	OwnerID        string    `json:"ownerId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateParams is the payload for budget creation.
type CreateParams struct {
	Name           string  `json:"name"`
	Currency       string  `json:"currency"`
	InitialBalance *string `json:"initialBalance,omitempty"`
}

// UpdateParams is the partial-update payload; nil fields are left untouched.
type UpdateParams struct {
	Name           *string `json:"name,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	InitialBalance *string `json:"initialBalance,omitempty"`
}

// API wraps the /budgets endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the budgets API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the budgets visible to the current user.
func (a *API) List(ctx context.Context) ([]Budget, error) {
	var out []Budget
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/budgets",
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[budgets.List]")
	}
	return out, nil
}

// Get fetches one budget by id.
func (a *API) Get(ctx context.Context, id string) (*Budget, error) {
	var out Budget
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/budgets/" + id,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[budgets.Get]")
	}
	return &out, nil
}

// Create creates a budget.
func (a *API) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	var out Budget
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/budgets",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[budgets.Create]")
	}
	return &out, nil
}

// Update applies a partial update to a budget.
func (a *API) Update(ctx context.Context, id string, params UpdateParams) (*Budget, error) {
	var out Budget
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/budgets/" + id,
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[budgets.Update]")
	}
	return &out, nil
}

// Delete removes a budget.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/budgets/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[budgets.Delete]")
	}
	return nil
}
