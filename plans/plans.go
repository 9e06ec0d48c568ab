package plans

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-budget-client/transport"
)

// MonthlyPlan is the planning envelope for one month of a budget.
type MonthlyPlan struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budgetId"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlanItem is one planned amount for a category inside a monthly plan.
type PlanItem struct {
	ID                   string    `json:"id"`
	MonthlyPlanID        string    `json:"monthlyPlanId"`
	CategoryID           string    `json:"categoryId"`
	PlannedAmount        string    `json:"plannedAmount"`
	ActualAmountSnapshot *string   `json:"actualAmountSnapshot"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CreateParams is the payload for monthly plan creation.
type CreateParams struct {
	BudgetID string `json:"budgetId"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

// ItemParams is the payload for creating or updating a plan item.
type ItemParams struct {
	CategoryID    string `json:"categoryId"`
	PlannedAmount string `json:"plannedAmount"`
}

// API wraps the /monthly-plans endpoints.
type API struct {
	client *transport.Client
}

// NewAPI creates the monthly plans API wrapper.
func NewAPI(client *transport.Client) *API {
	return &API{client: client}
}

// List fetches the plans of one budget, optionally narrowed to a year.
func (a *API) List(ctx context.Context, budgetID string, year int) ([]MonthlyPlan, error) {
	q := url.Values{"budgetId": {budgetID}}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var out []MonthlyPlan
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/monthly-plans",
		Query:  q,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[plans.List]")
	}
	return out, nil
}

// Create creates a monthly plan.
func (a *API) Create(ctx context.Context, params CreateParams) (*MonthlyPlan, error) {
	var out MonthlyPlan
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/monthly-plans",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[plans.Create]")
	}
	return &out, nil
}

// Delete removes a monthly plan.
func (a *API) Delete(ctx context.Context, id string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/monthly-plans/" + id,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[plans.Delete]")
	}
	return nil
}

// Items fetches the items of one plan.
func (a *API) Items(ctx context.Context, planID string) ([]PlanItem, error) {
	var out []PlanItem
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodGet,
		Path:   "/monthly-plans/" + planID + "/items",
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[plans.Items]")
	}
	return out, nil
}

// CreateItem adds a category line to a plan.
func (a *API) CreateItem(ctx context.Context, planID string, params ItemParams) (*PlanItem, error) {
	var out PlanItem
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPost,
		Path:   "/monthly-plans/" + planID + "/items",
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[plans.CreateItem]")
	}
	return &out, nil
}

// UpdateItem replaces the planned amount of one item.
func (a *API) UpdateItem(ctx context.Context, planID, itemID string, params ItemParams) (*PlanItem, error) {
	var out PlanItem
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodPatch,
		Path:   "/monthly-plans/" + planID + "/items/" + itemID,
		Body:   params,
	}, &out)
	if err != nil {
		return nil, errors.Wrap(err, "[plans.UpdateItem]")
	}
	return &out, nil
}

// DeleteItem removes one item from a plan.
func (a *API) DeleteItem(ctx context.Context, planID, itemID string) error {
	err := a.client.Do(ctx, transport.RequestOptions{
		Method: http.MethodDelete,
		Path:   "/monthly-plans/" + planID + "/items/" + itemID,
	}, nil)
	if err != nil {
		return errors.Wrap(err, "[plans.DeleteItem]")
	}
	return nil
}
