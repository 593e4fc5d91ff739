package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/config"
	"github.com/instantsaver/instantsaver/style"
	"github.com/instantsaver/instantsaver/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type envVar struct {
	Name  string `json:"name"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
	Set   bool   `json:"set"`
}

// envVars lists every supported variable, sorted by name.
func envVars() []envVar {
	vars := lo.Map(lo.Values(config.Default), func(f config.Field, _ int) envVar {
		return envVar{Name: f.Env(), Key: f.Key}
	})
	vars = append(vars, envVar{Name: where.EnvConfigPath})

	for i := range vars {
		vars[i].Value, vars[i].Set = os.LookupEnv(vars[i].Name)
	}

	slices.SortFunc(vars, func(a, b envVar) int {
		return strings.Compare(a.Name, b.Name)
	})

	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	Long:  "List the environment variables that override configuration keys, with their current values.",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
		)

		vars := lo.Filter(envVars(), func(v envVar, _ int) bool {
			return !(setOnly && !v.Set) && !(unsetOnly && v.Set)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(vars))
			return
		}

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, v := range vars {
			value := style.Fg(color.Red)("unset")
			if v.Set {
				value = style.Fg(color.Green)(v.Value)
			}

			cmd.Printf("%s=%s\n", name(v.Name), value)
		}
	},
}
