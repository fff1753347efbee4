package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version info
var Version = "1.0.0"

type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}
	serveOptions := &ServeOptions{}

	rootCMD := &cobra.Command{
		Use:   "greeter",
		Short: "Greeting HTTP service",
		Long:  "A minimal HTTP service answering GET / with a plain text greeting.",
		// Without a subcommand the server is started.
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions, serveOptions)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD.PersistentFlags())
	serveOptions.registerFlags(rootCMD.Flags())

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewVersionCommand())
	rootCMD.AddCommand(NewInitConfigCommand())

	return rootCMD
}

func (options *GlobalOptions) registerFlags(fs *pflag.FlagSet) {
	// flags that can be used for each command
	fs.StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: GREETER_CONFIG_PATH)")
	fs.StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: GREETER_LOG_LEVEL)")
}

func Execute() {
	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
