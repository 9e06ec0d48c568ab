package invitations

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/members"
	"github.com/jrsteele09/go-budget-client/transport"
)

// Status is the lifecycle state of an invitation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// BudgetInvitation invites an email address into a budget with a role.
// Owners cannot be invited; the role is editor or viewer.
type BudgetInvitation struct {
	ID        string       `json:"id"`
	BudgetID  string       `json:"budgetId"`
	Email     string       `json:"email"`
	Role      members.Role `json:"role"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CreateParams is the payload for sending an invitation.
type CreateParams struct {
	BudgetID string       `json:"budgetId"`
	Email    string       `json:"email"`
	Role     members.Role `json:"role"`
}

// API wraps the /budget-invitations endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the invitations API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the invitations of one budget.
func (a *API) List(ctx context.Context, budgetID string) ([]BudgetInvitation, error) {
	var out []BudgetInvitation
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/budget-invitations",
		Query:  url.Values{"budgetId": {budgetID}},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[invitations.List]")
	}
	return out, nil
}

// Create sends an invitation.
func (a *API) Create(ctx context.Context, params CreateParams) (*BudgetInvitation, error) {
	var out BudgetInvitation
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/budget-invitations",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[invitations.Create]")
	}
	return &out, nil
}

// Respond accepts or rejects an incoming invitation.
func (a *API) Respond(ctx context.Context, id string, status Status) (*BudgetInvitation, error) {
	var out BudgetInvitation
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/budget-invitations/" + id,
		Body:   map[string]Status{"status": status},
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[invitations.Respond]")
	}
	return &out, nil
}

// Delete withdraws a pending invitation.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/budget-invitations/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[invitations.Delete]")
	}
	return nil
}
