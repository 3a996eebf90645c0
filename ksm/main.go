package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/kirana/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	ctx := context.Background()
	var status subcommands.ExitStatus
	switch {
	case flag.NArg() == 0:
		status = cmd.Menu(ctx)
	case !cmd.Registered(commander, flag.Arg(0)):
		// unknown commands may be ksm-<name> extensions in the PATH.
		found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:])
		if !found {
			status = commander.Execute(ctx)
			break
		}
		status = subcommands.ExitStatus(code)
	default:
		status = commander.Execute(ctx)
	}
	cmd.Close()
	os.Exit(int(status))
}
