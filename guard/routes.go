package guard

// RouteMeta is the navigation metadata the guard consults for a target view.
type RouteMeta struct {
	Name                   string
	Path                   string
	Title                  string
	RequiresAuth           bool
	RequiresConfirmedEmail bool
}

// Route names.
const (
	RouteLogin          = "login"
	RouteRegister       = "register"
	RouteConfirmEmail   = "confirm-email"
	RouteHome           = "home"
	RouteCategories     = "categories"
	RouteAccounts       = "accounts"
	RouteBudgets        = "budgets"
	RouteBudgetSettings = "budget-settings"
	RouteInvitation     = "invitation"
	RouteBudgetPlans    = "budget-plans"
	RouteTransactions   = "transactions"
	RouteProfile        = "profile"
	RouteChangePassword = "change-password"
	RouteSessions       = "sessions"
	RouteNotFound       = "not-found"
)

// Paths for forced navigation targets.
const (
	LoginPath        = "/auth/login"
	ConfirmEmailPath = "/auth/confirm-email"
)

// Routes is the application route table, mirroring the web client's views.
var Routes = []RouteMeta{
	{Name: RouteLogin, Path: LoginPath, Title: "Sign in"},
	{Name: RouteRegister, Path: "/auth/register", Title: "Sign up"},
	{Name: RouteConfirmEmail, Path: ConfirmEmailPath, Title: "Confirm email"},
	{Name: RouteHome, Path: "/", Title: "Dashboard", RequiresAuth: true},
	{Name: RouteCategories, Path: "/categories", Title: "Categories", RequiresAuth: true},
	{Name: RouteAccounts, Path: "/accounts", Title: "Accounts", RequiresAuth: true},
	{Name: RouteBudgets, Path: "/budgets", Title: "Budgets", RequiresAuth: true},
	{Name: RouteBudgetSettings, Path: "/budgets/settings", Title: "Budget settings", RequiresAuth: true, RequiresConfirmedEmail: true},
	{Name: RouteInvitation, Path: "/invitation", Title: "Budget invitation"},
	{Name: RouteBudgetPlans, Path: "/plans", Title: "Budget plans", RequiresAuth: true},
	{Name: RouteTransactions, Path: "/transactions", Title: "Transactions", RequiresAuth: true},
	{Name: RouteProfile, Path: "/profile", Title: "Profile", RequiresAuth: true},
	{Name: RouteChangePassword, Path: "/profile/password", Title: "Change password", RequiresAuth: true},
	{Name: RouteSessions, Path: "/profile/sessions", Title: "Sessions", RequiresAuth: true},
	{Name: RouteNotFound, Path: "/not-found", Title: "Page not found"},
}

// Lookup finds a route by name.
func Lookup(name string) (RouteMeta, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return RouteMeta{}, false
}
