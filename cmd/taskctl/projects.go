package main

import (
	"github.com/spf13/cobra"
)

func (a *app) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage your projects",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your projects",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				projects, err := a.client().Projects(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), projects)
			},
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.client().CreateProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			},
		},
		&cobra.Command{
			Use:   "rename <project-id> <name>",
			Short: "Rename a project",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.client().UpdateProject(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "delete <project-id>",
			Short: "Delete a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.client().DeleteProject(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}
