package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-craft/internal/auth"
	"github.com/jonathan/resume-craft/internal/config"
	"github.com/jonathan/resume-craft/internal/db"
	"github.com/jonathan/resume-craft/internal/types"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations for the postgres backend",
	RunE:  runMigrate,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an identity token for local sign-in",
	Long:  "Signs an identity token with JWT_SECRET. Pass it with --token or RESUME_TOKEN to enable remote sync.",
	RunE:  runToken,
}

var (
	migrateDatabaseURL string

	tokenUserID string
	tokenName   string
	tokenEmail  string
)

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "Database URL (default: DATABASE_URL)")

	tokenCmd.Flags().StringVarP(&tokenUserID, "user-id", "u", "", "User ID (required)")
	tokenCmd.Flags().StringVarP(&tokenName, "name", "n", "", "Display name")
	tokenCmd.Flags().StringVarP(&tokenEmail, "email", "e", "", "Email address")
	_ = tokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	if migrateDatabaseURL == "" {
		migrateDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if migrateDatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set and --db-url not provided")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, migrateDatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(ctx); err != nil {
		return err
	}
	fmt.Println("Migrations applied")
	return nil
}

func runToken(_ *cobra.Command, _ []string) error {
	identityCfg, err := config.NewIdentityConfig()
	if err != nil {
		return err
	}

	token, err := auth.NewTokenService(identityCfg).IssueToken(types.Identity{
		ID:          tokenUserID,
		DisplayName: tokenName,
		Email:       tokenEmail,
	})
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
