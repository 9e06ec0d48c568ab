package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-budget-client/authapi"
	"github.com/jrsteele09/go-budget-client/budgets"
	"github.com/jrsteele09/go-budget-client/internal/config"
	"github.com/jrsteele09/go-budget-client/session"
	"github.com/jrsteele09/go-budget-client/transport"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %s\n", err)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	email := flag.String("email", "", "email to sign in with (falls back to the refresh cookie)")
	password := flag.String("password", "", "password to sign in with")
	flag.Parse()

	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	store := session.NewStore()

	client, err := transport.NewClient(c, store, transport.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("transport.NewClient: %w", err)
	}
	auth, err := authapi.New(client, store, authapi.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("authapi.New: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !auth.RestoreSession(ctx) {
		if *email == "" || *password == "" {
			return errors.New("no restorable session; pass -email and -password to sign in")
		}
		if err := auth.Login(ctx, *email, *password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	user := store.User()
	if user == nil {
		if user, err = auth.CurrentUser(ctx); err != nil {
			return fmt.Errorf("current user: %w", err)
		}
	}
	fmt.Printf("Signed in as %s <%s>\n", user.FullName(), user.Email)
	if expiry := store.TokenExpiry(); !expiry.IsZero() {
		fmt.Printf("Access token expires %s\n", expiry.Format(time.RFC1123))
	}

	sessions, err := auth.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	fmt.Printf("\nActive sessions (%d):\n", len(sessions))
	for _, si := range sessions {
		marker := " "
		if si.Current(store.SessionID()) {
			marker = "*"
		}
		fmt.Printf(" %s %s  created %s\n", marker, si.ID, si.CreatedAt.Format(time.RFC1123))
	}

	budgetStore := budgets.NewStore(budgets.NewAPI(client), nil)
	budgetStore.Hydrate()
	list, err := budgetStore.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("budgets: %w", err)
	}
	fmt.Printf("\nBudgets (%d):\n", len(list))
	for _, b := range list {
		marker := " "
		if b.ID == budgetStore.ActiveID() {
			marker = "*"
		}
		fmt.Printf(" %s %s (%s)\n", marker, b.Name, b.Currency)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
