package main

import (
	"errors"

	"taskboard/pkg/client"

	"github.com/spf13/cobra"
)

func (a *app) tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks of a project",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <project-id>",
			Short: "List tasks of a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tasks, err := a.client().Tasks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), tasks)
			},
		},
		&cobra.Command{
			Use:   "add <project-id> <title>",
			Short: "Add a task",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := a.client().CreateTask(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), t)
			},
		},
		a.taskUpdateCmd(),
		&cobra.Command{
			Use:   "delete <project-id> <task-id>",
			Short: "Delete a task",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.client().DeleteTask(cmd.Context(), args[0], args[1])
			},
		},
	)
	return cmd
}

func (a *app) taskUpdateCmd() *cobra.Command {
	var (
		title string
		done  bool
	)
	cmd := &cobra.Command{
		Use:   "update <project-id> <task-id>",
		Short: "Change a task's title or done flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd client.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("done") {
				upd.Done = &done
			}
			if upd.Title == nil && upd.Done == nil {
				return errors.New("nothing to update: pass --title and/or --done")
			}
			return a.client().UpdateTask(cmd.Context(), args[0], args[1], upd)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().BoolVar(&done, "done", false, "mark done (use --done=false to reopen)")
	return cmd
}
