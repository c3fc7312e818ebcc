package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jekabolt/sheel/app"
	"github.com/jekabolt/sheel/config"
	"github.com/jekabolt/sheel/log"
	"github.com/spf13/cobra"
)

var (
	ownerCmd = &cobra.Command{
		Use:   "owner",
		Short: "Manage listing owners",
	}

	ownerAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create an owner account",
		RunE:  addOwner,
	}

	ownerEmail    string
	ownerPassword string
)

func init() {
	ownerAddCmd.Flags().StringVar(&ownerEmail, "email", "", "owner email")
	ownerAddCmd.Flags().StringVar(&ownerPassword, "password", "", "owner password, at least 8 characters")
	ownerAddCmd.MarkFlagRequired("email")
	ownerAddCmd.MarkFlagRequired("password")
	ownerCmd.AddCommand(ownerAddCmd)
}

func addOwner(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(os.Stderr, cfg.Logger))

	id, err := app.Register(cmd.Context(), cfg, ownerEmail, ownerPassword)
	if err != nil {
		return fmt.Errorf("cannot add owner: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), id.ID)
	return nil
}
