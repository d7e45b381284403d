// Package command provides CLI command definitions for syncvault-cli.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/syncvault-go/internal/cli/output"
)

// PathCommand prints the resolved on-disk locations.
func PathCommand() *cli.Command {
	return &cli.Command{
		Name:   "path",
		Usage:  "Print the resolved cache file paths",
		Action: runPath,
	}
}

func runPath(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	paths := store.Paths()
	t := &output.Table{Headers: []string{"FILE", "PATH"}}
	t.AddRow("payload", paths.Payload)
	t.AddRow("metadata", paths.Metadata)
	return t.Render(c.App.Writer)
}

// DeleteCommand clears the cache for an identity.
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Remove both cache files for the identity",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "skip the confirmation prompt",
			},
		},
		Action: runDelete,
	}
}

func runDelete(c *cli.Context) error {
	if !c.Bool("yes") {
		fmt.Fprintf(c.App.Writer, "delete cached data for identity %q? [y/N] ", c.String("identity"))
		var answer string
		fmt.Fscanln(c.App.Reader, &answer)
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(c.App.Writer, "aborted")
			return nil
		}
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	store.DeleteData()
	fmt.Fprintln(c.App.Writer, "cache cleared")
	return nil
}
