package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/azman-project/azman/pkg/azure"
	"github.com/azman-project/azman/pkg/logger"
)

var (
	cfgFile     string
	verboseMode bool
)

// executorFactory builds the az executor; tests swap in a recording stub.
var executorFactory = func() azure.Executor { return azure.NewCLI() }

var rootCmd = &cobra.Command{
	Use:   "azman",
	Short: "azman manages Azure resources through the az CLI",
	Long: `azman is a front end over the Azure CLI for managing resource groups,
storage accounts and virtual machines. Run it without a subcommand for an
interactive menu.`,
	RunE: runInteractive,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.azman.yaml)")
	rootCmd.PersistentFlags().
		BoolVar(&verboseMode, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(GetGroupCmd())
	rootCmd.AddCommand(GetStorageCmd())
	rootCmd.AddCommand(GetVMCmd())
	rootCmd.AddCommand(GetResourcesCmd())
	rootCmd.AddCommand(GetAccountCmd())
}

// initConfig reads in a .env file, the config file and environment variables.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".azman")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	logger.InitLoggerOutputs()
	if verboseMode {
		logger.GlobalLogLevel = "debug"
	}
	logger.InitProduction()
}

// newManager verifies the az binary and builds the operation catalog with
// the subscription snapshot. An unavailable binary is the one fatal error.
func newManager(cmd *cobra.Command) (*azure.Manager, error) {
	exec := executorFactory()
	if err := exec.VerifyAvailable(cmd.Context()); err != nil {
		return nil, fmt.Errorf(
			"%w\nInstall the Azure CLI: https://learn.microsoft.com/cli/azure/install-azure-cli",
			err,
		)
	}
	return azure.NewManagerWithOutput(cmd.Context(), exec, cmd.OutOrStdout()), nil
}

// defaultLocation resolves the region to use when a command omits
// --location.
func defaultLocation() string {
	if loc := viper.GetString("azure.default_location"); loc != "" {
		return loc
	}
	return "eastus"
}

// resolveLocation applies the configured default when the user did not set
// the flag explicitly.
func resolveLocation(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("location") {
		return flagValue
	}
	return defaultLocation()
}

func printBanner(cmd *cobra.Command, m *azure.Manager) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "  azman - Azure Resource Manager")
	fmt.Fprintln(out, "============================================================")
	if m.HasSubscription() {
		sub := m.Subscription()
		fmt.Fprintf(out, "Current Subscription: %s\n", sub.Name)
		fmt.Fprintf(out, "  ID: %s\n", sub.ID)
	}
	fmt.Fprintln(out)
}
