package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/moneytracker/api/infra"
	infra_repository "github.com/moneytracker/api/infra/repository"
	"github.com/moneytracker/api/pkg/config"
	"github.com/moneytracker/api/pkg/domain"
	authsvc "github.com/moneytracker/api/pkg/service/auth"
	usersvc "github.com/moneytracker/api/pkg/service/user"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  create-user --email E [--name N] [--role USER|ADMIN]
  token --email E`

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		_, _ = failure.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	db, err := infra.NewDBConnection(cfg.DB, "production")
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close() //nolint:errcheck

	users := usersvc.New(infra_repository.NewUoW(db), slog.Default())
	auth := authsvc.New(cfg.Jwt, slog.Default())
	ctx := context.Background()

	switch cmd {
	case "create-user":
		return createUser(ctx, users, args)
	case "token":
		return issueToken(ctx, users, auth, args)
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func createUser(ctx context.Context, users *usersvc.Service, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := fs.String("email", "", "login email")
	name := fs.String("name", "", "display name")
	role := fs.String("role", string(domain.RoleUser), "USER or ADMIN")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		confirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if confirm != password {
			return errors.New("passwords do not match")
		}
	}

	var namePtr *string
	if *name != "" {
		namePtr = name
	}
	u, err := users.CreateUser(ctx, *email, password, namePtr, domain.Role(strings.ToUpper(*role)))
	if err != nil {
		return err
	}
	_, _ = success.Printf("Created user %s (%s)\n", u.Email, u.ID)
	return nil
}

func issueToken(ctx context.Context, users *usersvc.Service, auth *authsvc.Service, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	email := fs.String("email", "", "login email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("--email is required")
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	u, err := users.Authenticate(ctx, *email, password)
	if err != nil {
		return err
	}
	token, err := auth.GenerateToken(u)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// readPassword reads without echo from a terminal, or one line from a pipe.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(b), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
