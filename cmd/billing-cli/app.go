package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
	"github.com/ridwanfathin/whatsapp-billing/internal/numwords"
	"github.com/ridwanfathin/whatsapp-billing/internal/whatsapp"
	"github.com/urfave/cli/v2"
)

var fileFlag = &cli.StringFlag{
	Name:     "file",
	Aliases:  []string{"f"},
	Usage:    "invoice JSON, or - for stdin",
	Required: true,
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "billing-cli",
		Usage: "spell amounts and build WhatsApp invoice messages offline",
		Commands: []*cli.Command{
			{
				Name:      "words",
				Usage:     "spell a whole number in the Indian numbering system",
				ArgsUsage: "<number>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "rupees", Usage: "format as \"Rupees ... Only\""},
				},
				Action: wordsAction,
			},
			{
				Name:   "validate",
				Usage:  "check that an invoice can be sent",
				Flags:  []cli.Flag{fileFlag},
				Action: validateAction,
			},
			{
				Name:   "message",
				Usage:  "print the WhatsApp message for an invoice",
				Flags:  []cli.Flag{fileFlag},
				Action: messageAction,
			},
			{
				Name:   "link",
				Usage:  "print the wa.me link for an invoice",
				Flags:  []cli.Flag{fileFlag},
				Action: linkAction,
			},
		},
	}
}

func wordsAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one number", 2)
	}
	n, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || n < 0 {
		return cli.Exit(fmt.Sprintf("invalid number %q: must be a non-negative whole number", c.Args().First()), 2)
	}

	if c.Bool("rupees") {
		fmt.Fprintln(c.App.Writer, numwords.Rupees(float64(n)))
		return nil
	}
	fmt.Fprintln(c.App.Writer, numwords.Convert(n))
	return nil
}

func validateAction(c *cli.Context) error {
	inv, err := loadInvoice(c)
	if err != nil {
		return err
	}
	if err := whatsapp.Validate(inv); err != nil {
		return exportExit(err)
	}
	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}

func messageAction(c *cli.Context) error {
	res, err := prepare(c)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, res.Message)
	return nil
}

func linkAction(c *cli.Context) error {
	res, err := prepare(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, res.Link)
	return nil
}

func prepare(c *cli.Context) (*whatsapp.Result, error) {
	inv, err := loadInvoice(c)
	if err != nil {
		return nil, err
	}
	res, err := whatsapp.NewExporter(nil).Prepare(inv)
	if err != nil {
		return nil, exportExit(err)
	}
	return res, nil
}

// loadInvoice reads the --file invoice and recomputes every derived amount
func loadInvoice(c *cli.Context) (domain.Invoice, error) {
	var r io.Reader
	path := c.String("file")
	if path == "-" {
		r = c.App.Reader
	} else {
		f, err := os.Open(path)
		if err != nil {
			return domain.Invoice{}, cli.Exit(fmt.Sprintf("failed to open invoice: %v", err), 2)
		}
		defer f.Close()
		r = f
	}

	var inv domain.Invoice
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return domain.Invoice{}, cli.Exit(fmt.Sprintf("invalid invoice JSON: %v", err), 2)
	}
	// Quantity and price are never negative, same as ParseNumber.
	for i := range inv.Items {
		item := &inv.Items[i]
		item.Quantity = math.Max(item.Quantity, 0)
		item.Price = math.Max(item.Price, 0)
		item.CalculateAmount()
	}
	inv.CalculateTotalDue()
	return inv, nil
}

func exportExit(err error) error {
	if exportErr, ok := whatsapp.AsExportError(err); ok {
		return cli.Exit(fmt.Sprintf("%s: %s", exportErr.Title, exportErr.Description), 1)
	}
	return err
}
