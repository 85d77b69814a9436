package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrlokans/booklist/internal/catalog"
	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/library"
	"github.com/mrlokans/booklist/internal/localstore"
)

const (
	ActionList   = "list"
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionRemove = "remove"
)

// BooksCommand is the client front end: it renders, adds, edits and removes
// books through the catalog service, falling back to the local store.
type BooksCommand struct {
	Action    string
	ServerURL string
	LocalDir  string
	Timeout   time.Duration
	Format    string
	ID        int64
	Title     string
	Author    string
	Year      int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewBooksCommand() *BooksCommand {
	cfg := config.NewConfig()
	return &BooksCommand{
		ServerURL: cfg.Client.ServerURL,
		LocalDir:  cfg.Client.LocalDir,
		Timeout:   cfg.Client.Timeout,
		Format:    FormatText,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func (cmd *BooksCommand) usage() {
	fmt.Fprintf(cmd.Stderr, "Usage: %s books <list|add|edit|remove> [options]\n\n", os.Args[0])
	fmt.Fprintf(cmd.Stderr, "Manage the book list. When the catalog service cannot be reached,\n")
	fmt.Fprintf(cmd.Stderr, "changes go to the local store instead and are not synced later.\n")
	fmt.Fprintf(cmd.Stderr, "\nExamples:\n")
	fmt.Fprintf(cmd.Stderr, "  %s books list -format yaml\n", os.Args[0])
	fmt.Fprintf(cmd.Stderr, "  %s books add -title Dune -author Herbert -year 1965\n", os.Args[0])
	fmt.Fprintf(cmd.Stderr, "  %s books edit -id 3\n", os.Args[0])
	fmt.Fprintf(cmd.Stderr, "  %s books remove -id 3\n", os.Args[0])
}

func (cmd *BooksCommand) ParseFlags(args []string) error {
	if len(args) == 0 {
		cmd.usage()
		return fmt.Errorf("action is required")
	}

	cmd.Action = args[0]
	switch cmd.Action {
	case ActionList, ActionAdd, ActionEdit, ActionRemove:
	default:
		cmd.usage()
		return fmt.Errorf("unknown action: %s", cmd.Action)
	}

	fs := flag.NewFlagSet("books "+cmd.Action, flag.ContinueOnError)
	fs.SetOutput(cmd.Stderr)

	fs.StringVar(&cmd.ServerURL, "server", cmd.ServerURL, "Catalog service URL")
	fs.StringVar(&cmd.LocalDir, "local-dir", cmd.LocalDir, "Directory of the local fallback store")
	fs.DurationVar(&cmd.Timeout, "timeout", cmd.Timeout, "Request timeout (0 disables)")
	fs.StringVar(&cmd.Format, "format", cmd.Format, "Output format: text, json or yaml")

	switch cmd.Action {
	case ActionAdd:
		fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
		fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
		fs.IntVar(&cmd.Year, "year", 0, "Publication year (defaults to the current year)")
	case ActionEdit:
		fs.Int64Var(&cmd.ID, "id", 0, "Book id (required)")
		fs.StringVar(&cmd.Title, "title", "", "New title (prompted when empty)")
		fs.StringVar(&cmd.Author, "author", "", "New author (prompted when empty)")
		fs.IntVar(&cmd.Year, "year", 0, "New year (defaults to the current year)")
	case ActionRemove:
		fs.Int64Var(&cmd.ID, "id", 0, "Book id (required)")
	}

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if (cmd.Action == ActionEdit || cmd.Action == ActionRemove) && cmd.ID == 0 {
		fs.Usage()
		return fmt.Errorf("-id is required")
	}

	return nil
}

func (cmd *BooksCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx)
}

func (cmd *BooksCommand) run(ctx context.Context) error {
	view, err := NewConsoleView(cmd.Stdout, cmd.Stderr, cmd.Format)
	if err != nil {
		return err
	}

	manager := library.NewManager(
		catalog.NewClient(cmd.ServerURL, cmd.Timeout),
		localstore.New(cmd.LocalDir),
		view,
		cmd.prompter(),
	)

	var source library.Source
	switch cmd.Action {
	case ActionList:
		source, err = manager.Render(ctx)
	case ActionAdd:
		_, source, err = manager.Add(ctx, library.Input{Title: cmd.Title, Author: cmd.Author, Year: cmd.Year})
	case ActionEdit:
		source, err = manager.Edit(ctx, cmd.ID)
	case ActionRemove:
		source, err = manager.Remove(ctx, cmd.ID)
	default:
		return fmt.Errorf("unknown action: %s", cmd.Action)
	}

	if errors.Is(err, library.ErrCancelled) {
		fmt.Fprintln(cmd.Stderr, "Edit cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if source == library.SourceLocal {
		fmt.Fprintf(cmd.Stderr, "Catalog service at %s is unreachable; used local store %s\n",
			cmd.ServerURL, localstore.New(cmd.LocalDir).Path())
	}
	return nil
}

// prompter asks only for the fields not given as flags.
func (cmd *BooksCommand) prompter() library.Prompter {
	defaults := library.Input{Title: cmd.Title, Author: cmd.Author, Year: cmd.Year}
	return NewLinePrompter(cmd.Stdin, cmd.Stderr, defaults)
}
