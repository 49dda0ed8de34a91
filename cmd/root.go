package main

import (
	"github.com/spf13/cobra"

	"employee-tracker/internal/delivery/console"
)

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "employee-tracker",
		Short: "Manage employees, roles and departments from the terminal",
		Long: `employee-tracker is an interactive console for a small employee database.
It creates the schema on startup, loads the seed data, and then shows a menu
for listing and adding departments, roles and employees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			handler := &console.Handler{
				Gateway: a.gateway,
				Prompt: &console.HuhPrompter{
					Accessible: f.accessible,
					In:         cmd.InOrStdin(),
					Out:        cmd.OutOrStdout(),
				},
				Out:    console.NewRenderer(cmd.OutOrStdout()),
				Closer: a.store,
			}
			return console.NewLoop(handler).Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&f.envFile, "env-file", ".env", "dotenv file with DB_* settings (ignored when missing)")
	root.PersistentFlags().StringVar(&f.configFile, "config", "", "optional YAML config file")
	root.PersistentFlags().BoolVar(&f.noSeed, "no-seed", false, "skip loading seed data")
	root.PersistentFlags().BoolVar(&f.accessible, "accessible", false, "plain-text prompts for screen readers")

	root.AddCommand(newInitCmd(&f), newListCmd(&f))
	return root
}

func newInitCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Apply the schema and seed data, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *f)
			if err != nil {
				return err
			}
			a.Close()
			cmd.Println("Database ready.")
			return nil
		},
	}
}

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:       "list [employees|roles|departments]",
		Short:     "Print one table and exit",
		ValidArgs: []string{"employees", "roles", "departments"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer a.Close()

			h := &console.Handler{Gateway: a.gateway, Out: console.NewRenderer(cmd.OutOrStdout())}
			switch args[0] {
			case "employees":
				return h.ViewAllEmployees(cmd.Context())
			case "roles":
				return h.ViewAllRoles(cmd.Context())
			default:
				return h.ViewAllDepartments(cmd.Context())
			}
		},
	}
}
