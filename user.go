package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/camden-git/pvtheatresbackend/database"
	"github.com/camden-git/pvtheatresbackend/logger"
	"github.com/camden-git/pvtheatresbackend/services"
)

var newUser services.RegisterInput

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage editor accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an editor account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if err := database.AutoMigrateModels(db); err != nil {
			return err
		}

		user, err := services.NewUserService(db).Register(cmd.Context(), newUser)
		if err != nil {
			return err
		}
		logger.L().Info("editor registered", zap.Uint("id", user.ID), zap.String("login", user.Login))
		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Login, user.ID)
		return nil
	},
}

func init() {
	flags := userAddCmd.Flags()
	flags.StringVar(&newUser.Login, "login", "", "Login of the editor")
	flags.StringVar(&newUser.Email, "email", "", "Email address of the editor")
	flags.StringVar(&newUser.Name, "name", "", "Display name of the editor")
	flags.StringVar(&newUser.Password, "password", "", "Password, at least 6 characters")
	userAddCmd.MarkFlagRequired("login")
	userAddCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userAddCmd)
}
