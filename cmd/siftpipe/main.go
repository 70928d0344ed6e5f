// Command siftpipe reads lines from stdin and fans them out to the
// loggers described in a config file. Lines that look like JSON
// objects may carry their own level, component and message fields;
// anything else is logged verbatim at the default level.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coffersTech/siftlog"
	"github.com/coffersTech/siftlog/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		levelName  string
		component  string
	)

	cmd := &cobra.Command{
		Use:          "siftpipe",
		Short:        "Pipe stdin lines through a siftlog registry",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			defLevel, err := siftlog.ParseLevel(levelName)
			if err != nil {
				return err
			}

			reg := siftlog.Default()
			if configPath != "" {
				f, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if _, err := f.Apply(reg); err != nil {
					return err
				}
			} else {
				reg.StartLogger(siftlog.Config{Sink: siftlog.NewConsoleSink()})
			}

			defaults := siftlog.Options{Level: defLevel, Component: component}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				opts, msg := parseLine(scanner.Bytes(), defaults)
				reg.Log(opts, "%s", msg)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "logger config file (YAML)")
	cmd.Flags().StringVarP(&levelName, "level", "l", "info", "default level for plain lines")
	cmd.Flags().StringVar(&component, "component", "", "default component tag")
	return cmd
}
