package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/cbodonnell/civboard/pkg/board"
	"github.com/cbodonnell/civboard/pkg/client"
	"github.com/cbodonnell/civboard/pkg/messages"
	"github.com/cbodonnell/civboard/pkg/version"
)

const usage = `usage: client [flags] <command> [args]

commands:
  list                      list board IDs
  create [size]             create a default board
  import <file>             import a board from its text encoding
  export <id> [file]        write the text encoding of a board
  snapshot <id> <file>      write the compressed binary encoding of a board
  tile <id> <q> <r>         show a single tile
  delete <id>               delete a board
  version                   print the client version

flags:
`

func main() {
	serverURL := flag.String("server", "http://localhost:9090", "board server URL")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(client.NewClientOptions{BaseURL: *serverURL})
	if err := run(ctx, c, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, command string, args []string) error {
	switch command {
	case "list":
		ids, err := c.ListBoards(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	case "create":
		size := 0
		if len(args) > 0 {
			var err error
			if size, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid size %q", args[0])
			}
		}
		id, err := c.CreateBoard(ctx, size)
		if err != nil {
			return err
		}
		fmt.Println(id)
	case "import":
		if len(args) != 1 {
			return fmt.Errorf("import needs a file")
		}
		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := board.ParseBoard(string(text))
		if err != nil {
			return err
		}
		id, err := c.ImportBoard(ctx, b)
		if err != nil {
			return err
		}
		fmt.Println(id)
	case "export":
		if len(args) < 1 {
			return fmt.Errorf("export needs a board ID")
		}
		b, err := c.ExportBoard(ctx, args[0])
		if err != nil {
			return err
		}
		if len(args) > 1 {
			return os.WriteFile(args[1], []byte(b.String()), 0o644)
		}
		fmt.Print(b.String())
	case "snapshot":
		if len(args) != 2 {
			return fmt.Errorf("snapshot needs a board ID and a file")
		}
		b, err := c.Snapshot(ctx, args[0])
		if err != nil {
			return err
		}
		data, err := messages.SerializeBoard(b)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], data, 0o644)
	case "tile":
		if len(args) != 3 {
			return fmt.Errorf("tile needs a board ID, q and r")
		}
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid q %q", args[1])
		}
		r, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid r %q", args[2])
		}
		tile, err := c.Tile(ctx, args[0], q, r)
		if err != nil {
			return err
		}
		fmt.Printf("(%d, %d) %s hills=%t feature=%s rivers=%v improvement=%s:%s\n",
			tile.Q, tile.R, tile.Terrain, tile.Hills, tile.Feature, tile.Rivers, tile.Color, tile.Improvement)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete needs a board ID")
		}
		return c.DeleteBoard(ctx, args[0])
	case "version":
		fmt.Println(version.Get())
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
