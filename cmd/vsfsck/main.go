package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dargueta/vsfsck"
	"github.com/dargueta/vsfsck/report"
)

func main() {
	app := &cli.App{
		Name:      "vsfsck",
		Usage:     "Check and repair a VSFS disk image",
		ArgsUsage: "IMAGE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "csv-report",
				Usage: "write the diagnostic stream to a CSV file",
			},
		},
		Action: runCheck,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCheck(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(fmt.Sprintf("Usage: %s <file_system_image>", c.App.Name), 1)
	}

	path := c.Args().Get(0)
	fmt.Printf("Checking file system image: %s\n", path)

	result, err := vsfsck.Run(path, os.Stdout)
	if err != nil {
		return cli.Exit(fmt.Sprintf("vsfsck: %s", err), 1)
	}

	if csvPath := c.String("csv-report"); csvPath != "" {
		f, ferr := os.Create(csvPath)
		if ferr != nil {
			return cli.Exit(ferr.Error(), 1)
		}
		defer f.Close()

		if werr := report.WriteCSV(f, result.Diagnostics); werr != nil {
			return cli.Exit(werr.Error(), 1)
		}
	}

	return nil
}
