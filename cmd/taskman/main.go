package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	taskman "github.com/taskman/client-go"
	"github.com/taskman/client-go/store"
	"go.uber.org/zap"
)

type Options struct {
	URL      string `short:"u" long:"url" description:"service base URL" default:"http://localhost:8080"`
	Email    string `short:"e" long:"email" description:"account email"`
	Password string `short:"p" long:"password" description:"account password"`
	Store    string `short:"s" long:"store" description:"state snapshot URL (defaults to ~/.taskman/state.json)"`
	Status   string `long:"status" description:"filter tasks by status (TODO, IN_PROGRESS, DONE)"`
	Debug    bool   `long:"debug" description:"verbose logging"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	logger := zap.NewNop()
	if options.Debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	storeURL := options.Store
	if storeURL == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return herr
		}
		storeURL = "file://" + path.Join(home, ".taskman", "state.json")
	}

	cli, err := taskman.New(options.URL,
		taskman.WithStore(store.NewFileStore(storeURL)),
		taskman.WithLogger(logger))
	if err != nil {
		return err
	}
	release := cli.Loading().Busy().Subscribe(func(busy bool) {
		logger.Debug("loading", zap.Bool("busy", busy))
	})
	defer release()

	ctx := context.Background()
	if options.Email != "" {
		if _, err = cli.Login(ctx, taskman.AuthRequest{Email: options.Email, Password: options.Password}); err != nil {
			return err
		}
		fmt.Printf("logged in as %v (role %v)\n", cli.Session().Subject(), cli.Session().Role())
	}
	if !cli.Session().IsAuthenticated() {
		return fmt.Errorf("not logged in; pass --email and --password")
	}

	tasks, err := cli.Tasks.List(ctx, taskman.Status(options.Status))
	if err != nil {
		return err
	}
	for _, task := range tasks {
		fmt.Printf("%-6d %-12s %v\n", task.ID, task.Status, task.Title)
	}
	return nil
}
