// Command jobboardctl runs maintenance tasks against the job board database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/rolecache"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "jobboardctl",
	Short:        "Maintenance commands for the job board backend",
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, pool, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Println("Migrations applied")
		return nil
	},
}

var hashCost int

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash of a password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.NewHasher(hashCost).Hash(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

var (
	userName     string
	userEmail    string
	userPassword string
	userRole     string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Register an account directly in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, pool, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			return err
		}
		authUC := usecase.NewAuthUsecase(
			postgres.NewUserRepository(pool),
			auth.NewHasher(cfg.BcryptCost),
			tokens,
			rolecache.NewMemory(0),
		)

		user, err := authUC.Register(cmd.Context(), domain.RegisterInput{
			Name:     userName,
			Email:    userEmail,
			Password: userPassword,
			Role:     domain.Role(userRole),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s %s (%s)\n", user.Role, user.Email, user.ID)
		return nil
	},
}

// connect loads the configuration and opens the postgres pool.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.StoreDriver != "postgres" {
		return nil, nil, fmt.Errorf("STORE_DRIVER is %q; these commands need postgres", cfg.StoreDriver)
	}
	logger.Init(cfg.LogLevel)

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", 10, "bcrypt cost")

	createUserCmd.Flags().StringVar(&userName, "name", "", "display name")
	createUserCmd.Flags().StringVar(&userEmail, "email", "", "login email")
	createUserCmd.Flags().StringVar(&userPassword, "password", "", "initial password")
	createUserCmd.Flags().StringVar(&userRole, "role", string(domain.RoleEmployee), "employee or recruiter")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd, hashPasswordCmd, createUserCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
