// Command manage runs one-off maintenance tasks against the airport database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reinvvay/airport-api/internal/bootstrap"
	"github.com/reinvvay/airport-api/internal/repository"
	"github.com/reinvvay/airport-api/internal/service/users"
	"github.com/spf13/pflag"
)

const usage = `usage: manage <command> [flags]

commands:
  migrate       create missing tables
  wait-for-db   block until postgres accepts connections
  createuser    create a user account
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := bootstrap.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "migrate":
		if err := repository.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("schema applied")
		return nil
	case "wait-for-db":
		opts, err := parseWaitFlags(rest)
		if err != nil {
			return err
		}
		return repository.WaitForDB(ctx, pool, opts.attempts, opts.delay, logger)
	case "createuser":
		in, staff, err := parseCreateUserFlags(rest)
		if err != nil {
			return err
		}
		svc := users.NewUserService(repository.NewUserRepository(pool), nil, cfg.Auth.BcryptCost)
		user, err := svc.CreateUser(ctx, in, staff)
		if err != nil {
			return err
		}
		logger.Info("user created", "id", user.ID, "username", user.Username, "staff", user.IsStaff)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type waitOptions struct {
	attempts int
	delay    time.Duration
}

func parseWaitFlags(args []string) (waitOptions, error) {
	opts := waitOptions{}
	flagSet := pflag.NewFlagSet("wait-for-db", pflag.ContinueOnError)
	flagSet.IntVar(&opts.attempts, "attempts", 30, "number of ping attempts")
	flagSet.DurationVar(&opts.delay, "delay", time.Second, "pause between attempts")
	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if opts.attempts < 1 {
		return opts, errors.New("--attempts must be at least 1")
	}
	return opts, nil
}

func parseCreateUserFlags(args []string) (users.RegisterInput, bool, error) {
	var (
		in    users.RegisterInput
		staff bool
	)
	flagSet := pflag.NewFlagSet("createuser", pflag.ContinueOnError)
	flagSet.StringVar(&in.Username, "username", "", "login name")
	flagSet.StringVar(&in.Password, "password", "", "password (falls back to $MANAGE_PASSWORD)")
	flagSet.StringVar(&in.Email, "email", "", "contact address")
	flagSet.BoolVar(&staff, "staff", false, "grant read-write access to airport resources")
	if err := flagSet.Parse(args); err != nil {
		return in, false, err
	}

	if in.Password == "" {
		in.Password = os.Getenv("MANAGE_PASSWORD")
	}
	switch {
	case in.Username == "":
		return in, false, errors.New("--username is required")
	case in.Password == "":
		return in, false, errors.New("--password is required")
	}
	return in, staff, nil
}

