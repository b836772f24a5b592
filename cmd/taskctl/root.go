package main

import (
	"encoding/json"
	"io"
	"strings"

	"taskboard/pkg/client"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v *viper.Viper
}

func (a *app) client() *client.Client {
	return client.New(a.v.GetString("server"), client.WithToken(a.v.GetString("token")))
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("TASKCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "taskctl",
		Short:        "Manage projects and tasks on a task board server",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("server", "http://localhost:8080", "server base URL (env TASKCTL_SERVER)")
	root.PersistentFlags().String("token", "", "bearer token from login (env TASKCTL_TOKEN)")
	_ = a.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = a.v.BindPFlag("token", root.PersistentFlags().Lookup("token"))

	root.AddCommand(
		a.signupCmd(),
		a.loginCmd(),
		a.projectsCmd(),
		a.tasksCmd(),
	)
	return root
}

func (a *app) signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username> <password>",
		Short: "Register a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client().Signup(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"username": args[0]})
		},
	}
}

func (a *app) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Print a bearer token for the user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.client().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), token+"\n")
			return err
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
