// Package command provides CLI command definitions for syncvault-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/syncvault-go/internal/infra/shutdown"
	"github.com/yndnr/syncvault-go/internal/storage/syncfile"
)

// WatchCommand tails cache file replacements until interrupted, which
// is what a restricted auxiliary process does to learn about fresh
// snapshots without polling.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:   "watch",
		Usage:  "Print a line whenever another process replaces a cache file",
		Action: runWatch,
	}
}

func runWatch(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}

	watcher, err := syncfile.NewWatcher(store.Paths(), nil)
	if err != nil {
		store.Close()
		return fmt.Errorf("start watcher: %w", err)
	}

	handler := shutdown.NewHandler(5 * time.Second)
	handler.OnShutdown(func(context.Context) error {
		store.Close()
		return nil
	})
	handler.OnShutdown(func(context.Context) error {
		return watcher.Close()
	})

	go func() {
		for name := range watcher.Changes() {
			fmt.Fprintf(c.App.Writer, "%s  %s changed\n",
				time.Now().Format(time.RFC3339), name)
		}
	}()

	fmt.Fprintf(c.App.Writer, "watching %s (ctrl-c to stop)\n", store.Paths().Dir)
	return handler.Wait()
}
