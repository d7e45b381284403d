// Package command provides CLI command definitions for syncvault-cli.
package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/syncvault-go/internal/cli/output"
	"github.com/yndnr/syncvault-go/internal/core/domain"
)

// InfoCommand summarizes the cached snapshot.
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Show an overview of the cached snapshot",
		Action: runInfo,
	}
}

func runInfo(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	resp := store.GetSnapshot()
	if resp == nil {
		fmt.Fprintln(c.App.Writer, "no snapshot cached")
		return nil
	}

	if output.Format(c.String("output")) == output.FormatJSON {
		return formatter(c).Format(c.App.Writer, resp)
	}

	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("next_batch", resp.NextBatch)
	t.AddRow("joined rooms", strconv.Itoa(len(resp.Rooms.Join)))
	t.AddRow("invited rooms", strconv.Itoa(len(resp.Rooms.Invite)))
	t.AddRow("left rooms", strconv.Itoa(len(resp.Rooms.Leave)))
	if st, err := os.Stat(store.Paths().Payload); err == nil {
		t.AddRow("payload bytes", strconv.FormatInt(st.Size(), 10))
	}
	return t.Render(c.App.Writer)
}

// EventCommand looks up an event by ID within a room.
func EventCommand() *cli.Command {
	return &cli.Command{
		Name:      "event",
		Usage:     "Look up a cached event by ID",
		ArgsUsage: "<event-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "room",
				Aliases:  []string{"r"},
				Usage:    "room ID to scan",
				Required: true,
			},
		},
		Action: runEvent,
	}
}

func runEvent(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one event ID argument")
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	ev := store.EventWithID(c.Args().First(), c.String("room"))
	if ev == nil {
		return fmt.Errorf("event %s not found in room %s", c.Args().First(), c.String("room"))
	}
	return formatter(c).Format(c.App.Writer, ev)
}

// SummaryCommand derives a room's display name from the snapshot.
func SummaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Usage:     "Derive a room summary from the cached snapshot",
		ArgsUsage: "<room-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "pre-populated display name, as a partial update would supply",
			},
		},
		Action: runSummary,
	}
}

func runSummary(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one room ID argument")
	}
	roomID := c.Args().First()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	var existing *domain.RoomSummary
	if c.IsSet("name") {
		existing = domain.NewRoomSummary(roomID)
		existing.DisplayName = c.String("name")
	}

	summary := store.RoomSummary(roomID, existing)
	if summary == nil {
		return fmt.Errorf("no summary could be constructed for room %s", roomID)
	}
	return formatter(c).Format(c.App.Writer, summary)
}

// AccountDataCommand prints the cached account data.
func AccountDataCommand() *cli.Command {
	return &cli.Command{
		Name:      "account-data",
		Usage:     "Show cached account data, optionally a single key",
		ArgsUsage: "[key]",
		Action:    runAccountData,
	}
}

func runAccountData(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	data := store.GetAccountData()
	if data == nil {
		fmt.Fprintln(c.App.Writer, "no account data cached")
		return nil
	}

	if key := c.Args().First(); key != "" {
		value, ok := data[key]
		if !ok {
			return fmt.Errorf("account data key %q not found", key)
		}
		fmt.Fprintln(c.App.Writer, string(value))
		return nil
	}
	return formatter(c).Format(c.App.Writer, data)
}
