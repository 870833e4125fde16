package main

import (
	"context"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/vortex-fintech/phonebook/logger"
	"github.com/vortex-fintech/phonebook/phonebook"
	"github.com/vortex-fintech/phonebook/shell"
)

// Options for the CLI. Pass `--file` or set the `SERVICE_FILE` env var.
type Options struct {
	File string `help:"Phone book JSON file" short:"f" default:"phonebook.json"`
	Env  string `help:"Logger environment: development, debug or production" default:"production"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		ctx, cancel := context.WithCancel(context.Background())

		hooks.OnStart(func() {
			defer cancel()

			log := logger.Init("phonebook", options.Env)
			defer log.SafeSync()

			book, err := phonebook.Open(options.File,
				phonebook.WithLogger(log),
				phonebook.WithEnvironment(options.Env),
			)
			if err != nil {
				log.Errorw("could not open the phone book", "file", options.File, "err", err)
				log.SafeSync()
				os.Exit(1)
			}

			if err := shell.New(book, os.Stdin, os.Stdout, log).Run(ctx); err != nil {
				log.Errorw("reading input failed", "err", err)
			}
		})
		hooks.OnStop(cancel)
	})
	cli.Run()
}
