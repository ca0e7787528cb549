package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kardolus/busplug/blocklist"
	"github.com/kardolus/busplug/cache"
	"github.com/kardolus/busplug/client"
	"github.com/kardolus/busplug/config"
	"github.com/kardolus/busplug/http"
	"github.com/kardolus/busplug/internal"
	"github.com/kardolus/busplug/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	historyFileName = "history"
	prompt          = "stop id> "
)

var (
	configPath  string
	debug       bool
	port        int
	interactive bool
	save        bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "busplug",
		Short:         "CTA bus arrival lookups",
		Long:          "Look up predicted CTA bus arrivals by stop id, from the command line or over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config.yaml (defaults to $BUSPLUG_CONFIG_HOME/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stop pages and plain-text lookups over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")

	lookupCmd := &cobra.Command{
		Use:   "lookup [stop-id...]",
		Short: "Print the next arrivals for one or more stops",
		RunE:  runLookup,
	}
	lookupCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read stop ids from an interactive prompt")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	configCmd.Flags().BoolVar(&save, "save", false, "Write the resolved configuration to the config file")

	rootCmd.AddCommand(serveCmd, lookupCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cm, err := loadConfig(cmd, os.Stdout)
	if err != nil {
		return err
	}

	c, err := newClient(cm.Config)
	if err != nil {
		return err
	}

	srv, err := server.New(c, cm.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !interactive {
		return errors.New("you must specify at least one stop id")
	}

	// results own stdout
	cm, err := loadConfig(cmd, os.Stderr)
	if err != nil {
		return err
	}

	c, err := newClient(cm.Config)
	if err != nil {
		return err
	}

	for _, id := range args {
		fmt.Println(c.Lookup(id))
	}

	if interactive {
		return runInteractive(c)
	}

	return nil
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cm, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if save {
		if err := cm.Save(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "configuration saved")
	}

	out, err := cm.ShowConfig()
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

func runInteractive(looker client.Looker) error {
	rlConfig := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}
	if home, err := internal.GetConfigHome(); err == nil {
		rlConfig.HistoryFile = filepath.Join(home, historyFileName)
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		id := strings.TrimSpace(line)
		switch id {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		fmt.Fprintln(rl.Stdout(), looker.Lookup(id))
	}
}

// resolveConfig layers defaults, the config file, the environment and flags.
func resolveConfig(cmd *cobra.Command) (*config.Manager, error) {
	store := config.New()
	if configPath != "" {
		store = store.WithConfigPath(configPath)
	}

	cm, err := config.NewManager(store).WithEnvironment().WithAPIKeyFile()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("debug") {
		cm.Config.Debug = debug
	}
	if cmd.Flags().Changed("port") {
		cm.Config.Port = port
	}

	return cm, nil
}

func loadConfig(cmd *cobra.Command, logOut io.Writer) (*config.Manager, error) {
	cm, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	internal.ConfigureLogging(cm.Config.Debug, logOut)

	if err := cm.Validate(); err != nil {
		return nil, err
	}

	zap.S().Debugf("using %s%s", cm.Config.URL, cm.Config.PredictionsPath)
	return cm, nil
}

func newClient(cfg config.Config) (*client.Client, error) {
	return client.New(
		http.New(cfg),
		cfg,
		cache.New(cache.NewRealClock()),
		blocklist.New(),
	)
}
