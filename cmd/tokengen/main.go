// Package main implements tokengen, which mints bearer tokens for the
// Endorsa API using the same auth configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/endorsa/endorsa-api/internal/config"
	"github.com/endorsa/endorsa-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, config.Load); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, mints one token and writes it to out.
func run(args []string, out io.Writer, loadConfig func() (*config.Config, error)) error {
	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	subject := fs.String("sub", "endorsa-cli", "token subject")
	perms := fs.String("perms", strings.Join(auth.AllPermissions, ","),
		"comma separated permissions to grant")
	if err := fs.Parse(args); err != nil {
		return err
	}

	permissions := splitPermissions(*perms)
	if err := auth.ValidatePermissions(permissions); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	token, err := svc.GenerateToken(context.Background(), *subject, permissions)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func splitPermissions(s string) []string {
	var perms []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}
	return perms
}
