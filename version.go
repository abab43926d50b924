// version.go - automatic handling of --version and version.
// SPDX-License-Identifier: GPL-3.0-or-later

package docopt

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// VersionCommand implements the version command.
//
// The zero value is ready to use.
type VersionCommand[T ExecEnv] struct {
	// BriefDescriptionText is the optional brief description text.
	//
	// When unset, we use a reasonable default value.
	BriefDescriptionText string

	// ErrorHandling is the optional error handling strategy.
	//
	// When unset, we use [ContinueOnError].
	ErrorHandling ErrorHandling

	// HelpFlagValue is the optional help flag. When unset, we use "--help".
	HelpFlagValue string

	// Version is the optional version. When unsed, we use "dev".
	Version string
}

var _ Command[*StdlibExecEnv] = &VersionCommand[*StdlibExecEnv]{}

// BriefDescription implements [Command].
func (c *VersionCommand[T]) BriefDescription() string {
	output := "Print the program version and exit."
	if c.BriefDescriptionText != "" {
		output = c.BriefDescriptionText
	}
	return output
}

// HelpFlag implements [Command].
func (c *VersionCommand[T]) HelpFlag() string {
	output := "--help"
	if c.HelpFlagValue != "" {
		output = c.HelpFlagValue
	}
	return output
}

// PrintVersion prints the version to the stdout.
func (c *VersionCommand[T]) PrintVersion(env T) error {
	version := "dev"
	if c.Version != "" {
		version = c.Version
	}
	_, err := fmt.Fprintf(env.Stdout(), "%s\n", version)
	return err
}

// Run implements [Command].
func (c *VersionCommand[T]) Run(ctx context.Context, args *CommandArgs[T]) error {
	// The usage grammar treats the first whitespace token as the program
	// name, but under a dispatcher CommandName is multi-word (e.g.
	// "tools version"), so keep only the name we were invoked as.
	name := "version"
	if fields := strings.Fields(args.CommandName); len(fields) > 0 {
		name = fields[len(fields)-1]
	}
	doc := fmt.Sprintf(
		"%s\n\nUsage:\n  %s [%s]\n\nOptions:\n  %s  Show this help message and exit.\n",
		args.Command.BriefDescription(), name, c.HelpFlag(), c.HelpFlag())

	_, err := Parse(doc, args.Args, true, "")

	var help *HelpRequested
	if errors.As(err, &help) {
		_, werr := fmt.Fprintln(args.Env.Stdout(), help.Text)
		return werr
	}

	var exit *UserExit
	if errors.As(err, &exit) {
		fmt.Fprintln(args.Env.Stderr(), exit.Usage)
		return exit
	}

	if err != nil {
		return err
	}
	return c.PrintVersion(args.Env)
}

// SupportsSubcommands implements [Command].
func (c *VersionCommand[T]) SupportsSubcommands() bool {
	return false
}
