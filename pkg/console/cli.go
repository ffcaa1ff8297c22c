package console

import (
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/railbook/railbook/pkg/risk"
	"github.com/railbook/railbook/pkg/store"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "Interactive reservation console",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the admin and passenger menus",
				Action: func(c *cli.Context) error {
					dataStore, err := store.OpenFromEnvironment()
					if err != nil {
						return err
					}

					estimator := risk.New(rand.New(rand.NewSource(time.Now().UnixNano())))

					return New(dataStore, estimator, os.Stdin, os.Stdout).Run()
				},
			},
		},
	}
}
