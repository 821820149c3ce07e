package ensureadmin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/identity/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	username string
	email    string
	password string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure-admin",
		Short: "Create the bootstrap admin account",
		Long:  `Create the admin account if it does not exist yet. Values default to the admin section of the config file.`,
		RunE:  run,
	}

	cmd.Flags().StringVar(&username, "username", "", "Admin username (overrides config)")
	cmd.Flags().StringVar(&email, "email", "", "Admin email (overrides config)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (overrides config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if username == "" {
		username = cfg.Admin.Username
	}
	if email == "" {
		email = cfg.Admin.Email
	}
	if password == "" {
		password = cfg.Admin.Password
	}

	log := logger.NewLogger()
	userRepo := repository.NewUserRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	uc := usecases.NewEnsureAdminUseCase(userRepo, hasher, log)

	result, err := uc.Execute(context.Background(), usecases.EnsureAdminCommand{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		log.Errorw("failed to ensure admin account", "error", err)
		return err
	}

	if result.Created {
		fmt.Printf("Admin account %q created (id %d)\n", username, result.UserID)
	} else {
		fmt.Printf("Admin account %q already present (id %d)\n", username, result.UserID)
	}

	return nil
}
