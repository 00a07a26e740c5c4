package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Export or import a user's category map",
	}

	var out string
	export := &cobra.Command{
		Use:   "export <username>",
		Short: "Write a user's categories as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCategoryStore(func(users repositories.UserRepositoryInterface, store services.CategoryStoreInterface) error {
				user, err := users.GetByUsername(args[0])
				if err != nil {
					return fmt.Errorf("user %s: %w", args[0], err)
				}

				raw, err := json.MarshalIndent(store.Get(cmd.Context(), user.ID), "", "  ")
				if err != nil {
					return err
				}
				raw = append(raw, '\n')

				if out == "" {
					_, err = cmd.OutOrStdout().Write(raw)
					return err
				}
				return os.WriteFile(out, raw, 0o600)
			})
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	importCmd := &cobra.Command{
		Use:   "import <username> <file.json>",
		Short: "Replace a user's categories with a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := readCategories(args[1])
			if err != nil {
				return err
			}

			return withCategoryStore(func(users repositories.UserRepositoryInterface, store services.CategoryStoreInterface) error {
				user, err := users.GetByUsername(args[0])
				if err != nil {
					return fmt.Errorf("user %s: %w", args[0], err)
				}

				categories = categories.WithUncategorised()
				if err := store.Put(cmd.Context(), user.ID, categories); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories for %s\n", categories.Len(), user.Username)
				return nil
			})
		},
	}

	cmd.AddCommand(export, importCmd)
	return cmd
}

func withCategoryStore(fn func(users repositories.UserRepositoryInterface, store services.CategoryStoreInterface) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Discard()
	db, err := database.Initialize(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	users := repositories.NewUserRepository(db.DB)
	return fn(users, services.NewCategoryStore(users, services.NewNoopMetrics(), logger))
}

