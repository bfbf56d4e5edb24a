package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/core/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/platform/config"
	"github.com/debugger-rana/library-management-system/internal/repositories/database/pgsql"
	"github.com/debugger-rana/library-management-system/pkg/database"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCreateAdminCommand(logger *slog.Logger) *cobra.Command {
	var username, name, email string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if username == "" {
				return errors.New("--username is required")
			}
			if name == "" {
				name = username
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return err
			}
			defer database.ClosePgxPool(pool)

			repos := pgsql.NewRepositoryProvider(pool)
			userSvc := services.NewUserService(repos.UserRepo)
			user, err := userSvc.CreateUser(ctx, dto.CreateUserRequest{
				Username: username,
				Password: password,
				Name:     name,
				Email:    email,
				Role:     domain.RoleAdmin,
			}, "")
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			logger.Info("Administrator created", slog.String("user_id", user.UserID), slog.String("username", user.Username))
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name of the administrator")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the username)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

var stdin = bufio.NewReader(os.Stdin)

// readPassword reads a password without echo when stdin is a terminal, and a
// plain line otherwise so the command can be scripted.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
