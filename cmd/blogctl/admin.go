package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	userModel "blog-backend/internal/domains/user/model"
	"blog-backend/pkg/container"
)

func init() {
	createAdminCommand := &cobra.Command{
		Use:   "create-admin [email] [username] [password]",
		Short: "Create an admin account, or promote the existing account with that email",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide at least an email.\n\n")
				cmd.Usage()
				return
			}

			req := userModel.CreateUserRequest{Email: args[0]}
			if len(args) >= 3 {
				req.Username = args[1]
				req.Password = args[2]
			}

			c, err := container.New(mustLoadConfig())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to initialize container")
			}
			defer c.Cleanup()

			u, created, err := c.UserService.EnsureAdmin(context.Background(), req)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create admin")
			}

			if created {
				fmt.Printf("Created admin '%s' (%s)\n", u.Username, u.ID)
			} else {
				fmt.Printf("Promoted '%s' (%s) to admin\n", u.Username, u.ID)
			}
		},
	}

	rootCommand.AddCommand(createAdminCommand)
}
