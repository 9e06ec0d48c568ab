package members

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// Role is a member's permission level within a budget.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// BudgetMember links a user to a budget with a role.
type BudgetMember struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budgetId"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// API wraps the /budget-members endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the budget members API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the members of one budget.
func (a *API) List(ctx context.Context, budgetID string) ([]BudgetMember, error) {
	var out []BudgetMember
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/budget-members",
		Query:  url.Values{"budgetId": {budgetID}},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[members.List]")
	}
	return out, nil
}

// UpdateRole changes a member's role.
func (a *API) UpdateRole(ctx context.Context, id string, role Role) (*BudgetMember, error) {
	var out BudgetMember
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/budget-members/" + id,
		Body:   map[string]Role{"role": role},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[members.UpdateRole]")
	}
	return &out, nil
}

// Remove removes a member from a budget.
func (a *API) Remove(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/budget-members/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[members.Remove]")
	}
	return nil
}
