package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"event-staffing-service/internal/adapters/credentials"
	"event-staffing-service/internal/adapters/repositories"
	"event-staffing-service/internal/config"
	"event-staffing-service/internal/platform/auth"
	"event-staffing-service/internal/platform/db"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const usage = `Usage: dbtool <command> [OPTIONS]

Commands:
  init                  Create the schema and load SEED_PATH
  hash-password         Write the admin auth file (AUTH_FILE) used by /settings
  api-key set|remove|status
                        Manage the stored Google Maps API key
`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(cfg, os.Args[2:])
	case "hash-password":
		err = runHashPassword(cfg, os.Args[2:])
	case "api-key":
		err = runAPIKey(cfg, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg *config.Config) (*sql.DB, string, error) {
	conn, driver, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		return nil, "", err
	}
	if err := repositories.InitSchema(conn, driver); err != nil {
		conn.Close()
		return nil, "", err
	}
	return conn, driver, nil
}

func runInit(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	seedPath := fs.String("seed", cfg.SeedPath, "Seed file to load (empty skips seeding)")
	fs.Parse(args)

	log.Println("Initializing database schema...")
	conn, driver, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	defer conn.Close()
	log.Println("Schema ready.")

	if *seedPath == "" {
		return nil
	}

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, driver, *seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

func runHashPassword(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	authFile := fs.String("file", cfg.AuthFile, "Auth file to write")
	overwrite := fs.Bool("overwrite", false, "Overwrite an existing auth file")
	fs.Parse(args)

	if _, err := os.Stat(*authFile); err == nil && !*overwrite {
		return fmt.Errorf("%s already exists (use -overwrite)", *authFile)
	}

	username, err := prompt("Enter username: ", false)
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username cannot be empty")
	}

	password, err := prompt("Enter password:   ", true)
	if err != nil {
		return err
	}
	confirm, err := prompt("Confirm password: ", true)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	if err := auth.WriteFile(*authFile, username, password); err != nil {
		return err
	}
	log.Printf("Wrote %s", *authFile)

	return nil
}

func runAPIKey(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("api-key: expected set, remove, or status")
	}

	fs := flag.NewFlagSet("api-key", flag.ExitOnError)
	backend := fs.String("backend", cfg.CredentialBackend, "Credential backend: sql, redis, or file")
	fs.Parse(args[1:])

	ctx := context.Background()

	opts := credentials.Options{
		Backend:   *backend,
		FilePath:  cfg.CredentialFile,
		RedisAddr: cfg.RedisAddr,
	}
	if *backend == "" || *backend == "sql" {
		conn, driver, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		opts.DB, opts.Driver = conn, driver
	}

	store, closeStore, err := credentials.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()
	key := credentials.NewAPIKey(store)

	switch args[0] {
	case "set":
		value, err := prompt("Google Maps API key: ", true)
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) == "" {
			return errors.New("api key cannot be empty")
		}
		if err := key.Set(ctx, value); err != nil {
			return err
		}
		log.Println("API key stored.")

	case "remove":
		if err := key.Remove(ctx); err != nil {
			return err
		}
		log.Println("API key removed.")

	case "status":
		_, found, err := key.Get(ctx)
		if err != nil {
			return err
		}
		if found {
			fmt.Println("configured")
		} else {
			fmt.Println("not configured")
		}

	default:
		return fmt.Errorf("api-key: unknown action %q", args[0])
	}

	return nil
}

// prompt reads one line from stdin. Secret input is hidden when stdin is a
// terminal and read as a plain line when piped.
func prompt(label string, secret bool) (string, error) {
	fd := int(os.Stdin.Fd())
	fmt.Fprint(os.Stderr, label)

	if secret && term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(b), nil
	}

	line, err := stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var stdin = bufio.NewReader(os.Stdin)
