package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/instantsaver/instantsaver/color"
	"github.com/instantsaver/instantsaver/config"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/icon"
	"github.com/instantsaver/instantsaver/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// lookupField returns the registered field or an error suggesting the closest key.
func lookupField(name string) (config.Field, error) {
	if field, ok := config.Default[name]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// keyArg takes the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) (config.Field, error) {
	name := lo.FirstOrEmpty(args)
	if name == "" {
		name, _ = cmd.Flags().GetString("key")
	}

	if name == "" {
		return config.Field{}, errors.New("key is required as an argument or --key flag")
	}

	return lookupField(name)
}

func success(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configSetCmd, configGetCmd, configWriteCmd, configDeleteCmd, configResetCmd)

	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to update")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configGetCmd.Flags().StringP("key", "k", "", "The configuration key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings and defaults",
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)

		if names := lo.Must(cmd.Flags().GetStringSlice("key")); len(names) > 0 {
			fields = fields[:0]
			for _, name := range names {
				field, err := lookupField(name)
				handleErr(err)
				fields = append(fields, field)
			}
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		cmd.Print(strings.Join(lo.Map(fields, func(f config.Field, _ int) string {
			return f.Pretty()
		}), "\n\n"))
		cmd.Println()
	},
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Update the value of a configuration key",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		value, err := config.Parse(field.Key, raw)
		handleErr(err)

		handleErr(field.Validate(value))

		viper.Set(field.Key, value)
		handleErr(config.Save())

		success(cmd, "set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := keyArg(cmd, args)
		handleErr(err)

		cmd.Println(viper.Get(field.Key))
	},
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Path()

		if filesystem.IsFile(path) && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists, use --force to overwrite it", path))
		}

		handleErr(config.Save())
		success(cmd, "wrote config to %s", path)
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		err := filesystem.API().Remove(config.Path())
		if errors.Is(err, fs.ErrNotExist) {
			cmd.Printf("%s no config file at %s\n", icon.Get(icon.Warn), config.Path())
			return
		}

		handleErr(err)
		success(cmd, "deleted config")
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore configuration keys to their default values",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}

			handleErr(config.Save())
			success(cmd, "reset all config values")
			return
		}

		field, err := lookupField(lo.Must(cmd.Flags().GetString("key")))
		handleErr(err)

		viper.Set(field.Key, field.Value)
		handleErr(config.Save())

		success(cmd, "reset %s to default value %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
