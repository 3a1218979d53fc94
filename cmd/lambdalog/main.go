package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/lambdalog"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	configPath := envOr(lambdalog.ConfigEnv, lambdalog.DefaultConfigFile)

	root := &cobra.Command{
		Use:           "lambdalog",
		Short:         "Inspect lambdalog level configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "configuration file, .properties or .yaml (env LAMBDALOG_CONFIG)")

	load := func(onError lambdalog.ErrorHandler) *lambdalog.Factory {
		return lambdalog.NewBuilder().
			WithSource(lambdalog.File(configPath)).
			WithErrorHandler(onError).
			WithExecution(lambdalog.NewExecution()).
			Build()
	}
	printDiag := func(err error) { fmt.Fprintf(stderr, "lambdalog: %v\n", err) }

	levelsCmd := &cobra.Command{
		Use:   "levels [logger-name...]",
		Short: "Print the effective level of each logger, or the configured table",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := load(printDiag)
			if len(args) > 0 {
				for _, name := range args {
					fmt.Fprintf(stdout, "%s\t%s\n", name, f.Logger(name).Level())
				}
				return nil
			}
			r := f.Resolver()
			fmt.Fprintf(stdout, "<root>\t%s\n", r.Root())
			entries := r.Entries()
			names := make([]string, 0, len(entries))
			for name := range entries {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(stdout, "%s\t%s\n", name, entries[name])
			}
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and report dropped entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var problems int
			load(func(err error) {
				problems++
				printDiag(err)
			})
			if problems > 0 {
				return fmt.Errorf("%d configuration problem(s) in %s", problems, configPath)
			}
			fmt.Fprintln(stdout, "ok")
			return nil
		},
	}

	root.AddCommand(levelsCmd, checkCmd, newSimulateCmd(stdout, &configPath))
	return root
}
