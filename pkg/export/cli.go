// Package export dumps the reservation data set as JSON for reporting and
// debugging, reduced to the basic field group unless asked for everything.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/liip/sheriff"
	"github.com/urfave/cli/v2"

	"github.com/railbook/railbook/pkg/store"
)

func RegisterCLI() *cli.Command {
	detailedFlag := &cli.BoolFlag{
		Name:  "detailed",
		Usage: "include route and passenger detail fields",
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Dump reservation data as JSON",
		Subcommands: []*cli.Command{
			{
				Name:  "trains",
				Usage: "print all trains",
				Flags: []cli.Flag{detailedFlag},
				Action: func(c *cli.Context) error {
					dataStore, err := store.OpenFromEnvironment()
					if err != nil {
						return err
					}

					return printReduced(dataStore.Trains(), c.Bool("detailed"))
				},
			},
			{
				Name:  "bookings",
				Usage: "print all bookings",
				Flags: []cli.Flag{detailedFlag},
				Action: func(c *cli.Context) error {
					dataStore, err := store.OpenFromEnvironment()
					if err != nil {
						return err
					}

					return printReduced(dataStore.Bookings(), c.Bool("detailed"))
				},
			},
			{
				Name:  "stats",
				Usage: "print data set counts",
				Action: func(c *cli.Context) error {
					dataStore, err := store.OpenFromEnvironment()
					if err != nil {
						return err
					}

					return printReduced(dataStore.Stats(), false)
				},
			},
		},
	}
}

func printReduced(value interface{}, detailed bool) error {
	groups := []string{"basic"}
	if detailed {
		groups = append(groups, "detailed")
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{Groups: groups}, value)
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(reduced, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(output))

	return nil
}
