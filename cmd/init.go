package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/devpub/internal/config"
	"github.com/julienpequegnot/devpub/internal/database"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize devpub configuration and database",
	Long:  `Creates the ~/.devpub directory with config.yaml and the publication history database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	fmt.Println("\nDevpub initialized! Next steps:")
	fmt.Printf("  export %s=...   Set your dev.to API key\n", config.APIKeyEnv)
	fmt.Println("  devpub whoami              Check the connection")
	fmt.Println("  devpub publish             Pick an article and publish it")

	return nil
}
