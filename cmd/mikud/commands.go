package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mikud-go/mikud"
	"github.com/mikud-go/mikud/internal/render"
)

var errUsage = errors.New("bad usage")

type command struct {
	usage string
	run   func(ctx context.Context, client *mikud.Client, args []string, out io.Writer) error
}

var commands = map[string]command{
	"zip": {
		usage: "zip -city <name> | -city-id <id>  -street <name> | -street-id <id>  -house <n> [-entry <e>] | -pob <n>  [-copy] [-json]",
		run:   runZip,
	},
	"address": {
		usage: "address [-json] <zip>",
		run:   runAddress,
	},
	"cities": {
		usage: "cities [-json] <prefix>",
		run:   runCities,
	},
	"streets": {
		usage: "streets -city <name> | -city-id <id> [-json] <prefix>",
		run:   runStreets,
	},
}

var commandOrder = []string{"zip", "address", "cities", "streets"}

func newCommandFlagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "print results as JSON")
	return fs, asJSON
}

func parseCommandFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

func runZip(ctx context.Context, client *mikud.Client, args []string, out io.Writer) error {
	fs, asJSON := newCommandFlagSet("zip")

	var (
		q       mikud.Query
		copyZip bool
	)
	fs.StringVar(&q.CityName, "city", "", "city name")
	fs.IntVar(&q.CityID, "city-id", 0, "city id")
	fs.StringVar(&q.StreetName, "street", "", "street name")
	fs.IntVar(&q.StreetID, "street-id", 0, "street id")
	fs.IntVar(&q.HouseNumber, "house", 0, "house number")
	fs.StringVar(&q.Entry, "entry", "", "building entry")
	fs.IntVar(&q.POB, "pob", 0, "post office box")
	fs.BoolVar(&copyZip, "copy", false, "copy the zip code to the clipboard")

	if err := parseCommandFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	addr, err := client.SearchMikud(ctx, q)
	if err != nil {
		return err
	}

	if err = render.New(out, *asJSON).Address(addr); err != nil {
		return err
	}

	if copyZip && addr.Zip != 0 {
		if err = clipboard.WriteAll(strconv.Itoa(addr.Zip)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

func runAddress(ctx context.Context, client *mikud.Client, args []string, out io.Writer) error {
	fs, asJSON := newCommandFlagSet("address")
	if err := parseCommandFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one zip code", errUsage)
	}

	addr, err := client.SearchAddress(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return render.New(out, *asJSON).Address(addr)
}

func runCities(ctx context.Context, client *mikud.Client, args []string, out io.Writer) error {
	fs, asJSON := newCommandFlagSet("cities")
	if err := parseCommandFlags(fs, args); err != nil {
		return err
	}

	cities, err := client.SearchCities(ctx, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	return render.New(out, *asJSON).Cities(cities)
}

func runStreets(ctx context.Context, client *mikud.Client, args []string, out io.Writer) error {
	fs, asJSON := newCommandFlagSet("streets")

	var (
		cityName string
		cityID   int
	)
	fs.StringVar(&cityName, "city", "", "city name")
	fs.IntVar(&cityID, "city-id", 0, "city id")

	if err := parseCommandFlags(fs, args); err != nil {
		return err
	}
	if cityName == "" && cityID == 0 {
		return fmt.Errorf("%w: -city or -city-id is required", errUsage)
	}

	streets, err := client.SearchStreets(ctx, cityName, strings.Join(fs.Args(), " "), cityID)
	if err != nil {
		return err
	}
	return render.New(out, *asJSON).Streets(streets)
}
