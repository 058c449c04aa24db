// Package cli implements the cloudvault command-line client on top of cobra.
// Commands talk to the server through the api package; the bearer token is
// cached in the client config between invocations.
package cli

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/cloudvault/internal/client/api"
	"github.com/dmitrijs2005/cloudvault/internal/client/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cloudvault",
	Short: "CloudVault file storage CLI",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cloudvault/config.json)")
	rootCmd.PersistentFlags().String("server", "", "server base URL (overrides config)")
}

func initConfig() {
	path, err := configPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error resolving config path:", err)
		os.Exit(1)
	}

	cfg, err = config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

func saveConfig() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return config.Save(path, cfg)
}

// newAPIClient builds an api.Client from the loaded config and the --server
// override flag.
func newAPIClient(cmd *cobra.Command) *api.Client {
	serverURL := cfg.ServerURL
	if v, _ := cmd.Flags().GetString("server"); v != "" {
		serverURL = v
	}
	return api.NewClient(serverURL, cfg.Token)
}
