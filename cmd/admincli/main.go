// Command admincli is a terminal front end over the catalog client core.
// Every command goes through the same gateway, session store and auth guard
// the admin UI uses, so the full token lifecycle can be exercised from a
// shell.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"reelops/internal/authn"
	"reelops/internal/dashboard"
	"reelops/internal/gateway"
	gwmetrics "reelops/internal/gateway/metrics"
	"reelops/internal/gateway/tracer"
	"reelops/internal/genres"
	"reelops/internal/guard"
	"reelops/internal/movies"
	"reelops/internal/platform/config"
	"reelops/internal/platform/logger"
	platformredis "reelops/internal/platform/redis"
	"reelops/internal/session"
	"reelops/internal/tokenstore"
	"reelops/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	log := logger.New(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := buildApp(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// consoleNavigator is the terminal's stand-in for router navigation; the
// guard and the forced-logout flow drive it.
type consoleNavigator struct {
	route string
}

func (n *consoleNavigator) NavigateTo(route string) {
	n.route = route
}

type app struct {
	sessions  *session.Store
	tokens    tokenstore.Store
	nav       *consoleNavigator
	guard     *guard.Guard
	auth      *authn.Service
	users     *users.Service
	movies    *movies.Service
	genres    *genres.Service
	dashboard *dashboard.Service
	logger    *slog.Logger
}

// buildApp wires the client core the way the admin UI does: stores first,
// then the gateway with the forced-logout hook, then the services and the
// guard on top.
func buildApp(ctx context.Context, cfg config.Client, log *slog.Logger) (*app, error) {
	sessions := session.NewStore()
	nav := &consoleNavigator{}

	var tokens tokenstore.Store = tokenstore.NewFile(cfg.StateDir)
	if cfg.RedisURL != "" {
		client, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		tokens = tokenstore.NewRedis(client.Client, "admincli")
	}

	gwOpts := []gateway.Option{
		gateway.WithLogger(log),
		gateway.WithMetrics(gwmetrics.New()),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	}
	if cfg.OTel {
		gwOpts = append(gwOpts, gateway.WithTracer(tracer.NewOTel()))
	}

	gw, err := gateway.New(gateway.Config{
		BaseURL:  cfg.APIBaseURL,
		Tokens:   tokens,
		Sessions: sessions,
		Logout:   authn.ForcedLogout(sessions, tokens, nav, log),
	}, gwOpts...)
	if err != nil {
		return nil, err
	}

	userService := users.NewService(gw)
	movieService := movies.NewService(gw)
	genreService := genres.NewService(gw)

	authGuard, err := guard.New(sessions, tokens, userService, nav, guard.WithLogger(log))
	if err != nil {
		return nil, err
	}

	auth, err := authn.NewService(gw, sessions, tokens, userService, nav, authn.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return &app{
		sessions:  sessions,
		tokens:    tokens,
		nav:       nav,
		guard:     authGuard,
		auth:      auth,
		users:     userService,
		movies:    movieService,
		genres:    genreService,
		dashboard: dashboard.NewService(userService, movieService, genreService),
		logger:    log,
	}, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.auth.Logout(ctx)
	case "me":
		return a.cmdMe(ctx)
	case "stats":
		return a.protected(ctx, "/", func() error { return a.cmdStats(ctx) })
	case "users":
		return a.protected(ctx, "/users", func() error { return a.cmdUsers(ctx, args[1:]) })
	case "movies":
		return a.protected(ctx, "/movies", func() error { return a.cmdMovies(ctx, args[1:]) })
	case "genres":
		return a.protected(ctx, "/genres", func() error { return a.cmdGenres(ctx, args[1:]) })
	default:
		return usageError()
	}
}

// protected runs the guard for the route before the command, exactly the
// way the UI evaluates the guard on navigation.
func (a *app) protected(ctx context.Context, route string, cmd func() error) error {
	if err := a.guard.Evaluate(ctx, route); err != nil {
		return err
	}
	if a.nav.route == guard.SignInRoute {
		return fmt.Errorf("not signed in; run `admincli login` first")
	}
	return cmd()
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	if err := a.auth.Login(ctx, authn.Credentials{Email: *email, Password: *password}); err != nil {
		return err
	}
	if current := a.sessions.Get(); current != nil {
		fmt.Printf("signed in as %s\n", current.Email)
	}
	return nil
}

func (a *app) cmdMe(ctx context.Context) error {
	return a.protected(ctx, "/", func() error {
		return printJSON(a.sessions.Get())
	})
}

func (a *app) cmdStats(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("users list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		status := fs.String("status", "", "filter by account status")
		query := fs.String("query", "", "search by name or email")
		sortBy := fs.String("sort", "", "sort column")
		direction := fs.String("direction", "", "asc or desc")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		list, err := a.users.List(ctx, users.ListParams{
			Page: *page, Status: *status, Query: *query,
			SortBy: *sortBy, Direction: *direction,
		})
		if err != nil {
			return err
		}
		return printJSON(list)
	case "get":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		user, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "create":
		var input users.CreateInput
		if err := decodeStdin(&input); err != nil {
			return err
		}
		user, err := a.users.Create(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "update":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		var input users.UpdateInput
		if err := decodeStdin(&input); err != nil {
			return err
		}
		user, err := a.users.Update(ctx, id, input)
		if err != nil {
			return err
		}
		return printJSON(user)
	case "delete":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		return a.users.Delete(ctx, id)
	default:
		return usageError()
	}
}

func (a *app) cmdMovies(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("movies list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		contentType := fs.String("type", "", "movie or series")
		query := fs.String("query", "", "search by title")
		sortBy := fs.String("sort", "", "sort column")
		direction := fs.String("direction", "", "asc or desc")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		list, err := a.movies.List(ctx, movies.ListParams{
			Page: *page, ContentType: *contentType, Query: *query,
			SortBy: *sortBy, Direction: *direction,
		})
		if err != nil {
			return err
		}
		return printJSON(list)
	case "get":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		movie, err := a.movies.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(movie)
	case "create":
		var input movies.CreateInput
		if err := decodeStdin(&input); err != nil {
			return err
		}
		movie, err := a.movies.Create(ctx, input)
		if err != nil {
			return err
		}
		return printJSON(movie)
	case "update":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		var input movies.UpdateInput
		if err := decodeStdin(&input); err != nil {
			return err
		}
		movie, err := a.movies.Update(ctx, id, input)
		if err != nil {
			return err
		}
		return printJSON(movie)
	case "delete":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		return a.movies.Delete(ctx, id)
	default:
		return usageError()
	}
}

func (a *app) cmdGenres(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("genres list", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		all := fs.Bool("all", false, "fetch every genre, unpaginated")
		query := fs.String("query", "", "search by name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		list, err := a.genres.List(ctx, genres.ListParams{Page: *page, FetchAll: *all, Query: *query})
		if err != nil {
			return err
		}
		return printJSON(list)
	case "get":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		genre, err := a.genres.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(genre)
	case "create":
		fs := flag.NewFlagSet("genres create", flag.ExitOnError)
		name := fs.String("name", "", "genre name")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		genre, err := a.genres.Create(ctx, genres.Input{Name: *name})
		if err != nil {
			return err
		}
		return printJSON(genre)
	case "update":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("genres update", flag.ExitOnError)
		name := fs.String("name", "", "genre name")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		genre, err := a.genres.Update(ctx, id, genres.Input{Name: *name})
		if err != nil {
			return err
		}
		return printJSON(genre)
	case "delete":
		id, err := argID(args[1:])
		if err != nil {
			return err
		}
		return a.genres.Delete(ctx, id)
	default:
		return usageError()
	}
}

func argID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("an id argument is required")
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func decodeStdin(out any) error {
	dec := json.NewDecoder(os.Stdin)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode JSON from stdin: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	if v == nil {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError() error {
	return fmt.Errorf(`usage: admincli <command>

commands:
  login -email <email> -password <password>
  logout
  me
  stats
  users   list|get|create|update|delete
  movies  list|get|create|update|delete
  genres  list|get|create|update|delete

create/update for users and movies read a JSON payload from stdin`)
}
