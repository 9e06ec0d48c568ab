package categories

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// Type classifies a category.
type Type string

const (
	TypeExpense  Type = "expense"
	TypeIncome   Type = "income"
	TypeTransfer Type = "transfer"
	TypeSaving   Type = "saving"
)

// Category is a transaction category, optionally nested under a parent.
type Category struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budgetId"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	ParentID  *string   `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateParams is the payload for category creation.
type CreateParams struct {
	BudgetID string  `json:"budgetId"`
	Name     string  `json:"name"`
	Type     Type    `json:"type"`
	ParentID *string `json:"parentId,omitempty"`
}

// UpdateParams is the partial-update payload; nil fields are left untouched.
type UpdateParams struct {
	Name     *string `json:"name,omitempty"`
	ParentID *string `json:"parentId,omitempty"`
}

// API wraps the /categories endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the categories API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the categories of one budget.
func (a *API) List(ctx context.Context, budgetID string) ([]Category, error) {
	var out []Category
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/categories",
		Query:  url.Values{"budgetId": {budgetID}},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[categories.List]")
	}
	return out, nil
}

// Create creates a category.
func (a *API) Create(ctx context.Context, params CreateParams) (*Category, error) {
	var out Category
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/categories",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[categories.Create]")
	}
	return &out, nil
}

// Update applies a partial update to a category.
func (a *API) Update(ctx context.Context, id string, params UpdateParams) (*Category, error) {
	var out Category
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/categories/" + id,
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[categories.Update]")
	}
	return &out, nil
}

// Delete removes a category.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/categories/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[categories.Delete]")
	}
	return nil
}
