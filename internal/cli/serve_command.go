package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ServeOptions struct {
	Host      string
	Port      int
	Message   string
	AccessLog bool
}

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {
	serveOptions := &ServeOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions, serveOptions)
		},
	}

	serveOptions.registerFlags(serveCmd.Flags())

	return serveCmd
}

func (options *ServeOptions) registerFlags(fs *pflag.FlagSet) {
	// flags for the serve command only
	fs.StringVar(&options.Host, "host", "", "Interface the HTTP server binds to. (Env: GREETER_HOST)")
	fs.IntVar(&options.Port, "port", 0, "Port for the HTTP server. (Env: GREETER_PORT or PORT)")
	fs.StringVar(&options.Message, "message", "", "Greeting returned on GET /. (Env: GREETER_MESSAGE)")
	fs.BoolVar(&options.AccessLog, "access-log", true, "Log one line per request. (Env: GREETER_ACCESS_LOG)")
}

// serve loads the configuration and runs the server until SIGINT or SIGTERM.
func serve(cmd *cobra.Command, globalOptions *GlobalOptions, serveOptions *ServeOptions) error {
	cfg, err := initializeConfig(cmd, globalOptions, serveOptions)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, cfg)
}
