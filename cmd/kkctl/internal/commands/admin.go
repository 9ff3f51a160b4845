package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/database"
)

func newCreateAdminCmd() *cobra.Command {
	var req types.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an ADMIN account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Role = string(model.RoleAdmin)
			if err := validateRequest(req); err != nil {
				return err
			}

			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.logger.Close()

			db, err := database.Open(e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			accounts := service.NewAccountService(repository.NewUserRepository(db), e.cfg.Auth, e.logger)
			user, err := accounts.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created with id %d\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "login e-mail")
	cmd.Flags().StringVar(&req.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&req.Name, "name", "Yönetici", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// validateRequest applies the same binding rules the HTTP API uses
func validateRequest(req types.CreateUserRequest) error {
	v := validator.New()
	v.SetTagName("binding")
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid --%s: failed %q rule", strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return err
	}
	return nil
}
