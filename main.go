package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/orchardctl/cli/cmd"
	"github.com/orchardctl/cli/configs"
	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "orchardctl",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🌳 Reset, scaffold and inspect local Orchard Core sites.",
	Long: "Reset a local Orchard Core site to a freshly set up state: stop its host processes, " +
		"wipe App_Data, rebuild, recreate the database, launch it and run the tenant setup.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			ui.SetInteractive(false)
		}
		ui.SetDebug(configs.IsDevMode())
	},
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, r, string(debug.Stack()), cmd.Name(), args)
				err = fmt.Errorf("%s crashed", cmd.CommandPath())
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and spinners")

	resetCmd := &cobra.Command{
		Use:   "reset [web-project-path]",
		Short: "Reset an Orchard Core site and run its setup",
		Long: "Stops the site's host processes, deletes App_Data, builds when needed, optionally recreates " +
			"the SQL Server database, launches the site and runs the tenant setup.",
		Args: cobra.MaximumNArgs(1),
		RunE: contextualize(handler.Reset, handler.Panic),
	}
	resetFlags := resetCmd.Flags()
	resetFlags.Int("port", 0, "Port to bind; defaults to the launch settings URL or a random port")
	resetFlags.String("environment", "", "ASP.NET Core environment name (default from launch settings, then Development)")
	resetFlags.String("setup-site-name", constants.DefaultSiteName, "Site name used by the setup")
	resetFlags.String("setup-tenant-name", constants.DefaultTenantName, "Tenant name used by the setup")
	resetFlags.String("setup-recipe-name", constants.DefaultRecipeName, "Recipe to run during the setup")
	resetFlags.String("setup-user-name", constants.DefaultSetupUserName, "Admin user name")
	resetFlags.String("setup-password", constants.DefaultSetupPassword, "Admin password")
	resetFlags.String("setup-email", constants.DefaultSetupEmail, "Admin e-mail")
	resetFlags.String("setup-database-provider", "", "Sqlite or SqlConnection (implied by --setup-database-server-name)")
	resetFlags.String("setup-database-table-prefix", "", "Table prefix; allows running the setup against an existing database")
	resetFlags.String("setup-database-server-name", "", "SQL Server to create the database on, e.g. .\\SQLEXPRESS")
	resetFlags.String("setup-database-name", constants.DefaultDatabaseName, "Database name")
	resetFlags.String("setup-database-sql-user", constants.DefaultSqlUser, "SQL login; integrated security is used without a password")
	resetFlags.String("setup-database-sql-password", "", "SQL login password")
	resetFlags.Bool("force", false, "Drop the database if it already exists")
	resetFlags.Bool("suffix-database-name-with-folder-name", false, "Append the solution folder name to the database name")
	resetFlags.Bool("rebuild", false, "Build even when the compiled site exists")
	resetFlags.Bool("keep-alive", false, "Keep the site running after the setup")
	resetFlags.Bool("pause", false, "Wait for Enter before exiting")
	resetFlags.Bool("open", false, "Open the site in the browser (with --keep-alive)")
	resetFlags.Duration("startup-timeout", constants.DefaultStartupTimeout, "Maximum wait for the site to start; 0 waits until it exits")
	rootCmd.AddCommand(resetCmd)

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create an Orchard Core solution from the project templates",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Init, handler.Panic),
	}
	initCmd.Flags().String("name", "", "Solution name")
	initCmd.Flags().String("module", "", "Also create a module with this name")
	initCmd.Flags().String("theme", "", "Also create a theme with this name")
	initCmd.Flags().String("nuget-source", "", "NuGet source for the project templates")
	_ = initCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(initCmd)

	psCmd := &cobra.Command{
		Use:   "ps <argument>",
		Short: "List processes whose command line contains the argument",
		Args:  cobra.ExactArgs(1),
		RunE:  contextualize(handler.Ps, handler.Panic),
	}
	psCmd.Flags().StringSlice("name", nil, "Only list executables with these names, e.g. dotnet")
	rootCmd.AddCommand(psCmd)

	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Manage SQL Server databases",
	}
	dbTestCmd := &cobra.Command{
		Use:   "test",
		Short: "Check that a SQL Server is reachable",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.DatabaseTest, handler.Panic),
	}
	dbCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a database, optionally dropping an existing one",
		Args:  cobra.NoArgs,
		RunE:  contextualize(handler.DatabaseCreate, handler.Panic),
	}
	for _, c := range []*cobra.Command{dbTestCmd, dbCreateCmd} {
		c.Flags().String("server", "", "SQL Server name, e.g. .\\SQLEXPRESS or host,1433")
		c.Flags().String("user", "", "SQL login; integrated security is used without a password")
		c.Flags().String("password", "", "SQL login password")
	}
	dbCreateCmd.Flags().String("database", "", "Database name")
	dbCreateCmd.Flags().Bool("force", false, "Drop the database if it already exists")
	dbCmd.AddCommand(dbTestCmd, dbCreateCmd)
	rootCmd.AddCommand(dbCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of orchardctl",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate completion script",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactValidArgs(1),
		RunE:      contextualize(handler.Completion, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			err = fmt.Errorf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"orchardctl --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr)
		}
		ui.Error(err)
		os.Exit(1)
	}
}
