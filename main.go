package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeonforge/pkg/engine/catalog"
	"dungeonforge/pkg/engine/terminal"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/assemble"
	"dungeonforge/pkg/game/devtools"
	"dungeonforge/pkg/game/generator"
	"dungeonforge/pkg/game/renderer"
)

// Messages are looked up by their English text, so a missing catalog
// still prints readable output.
const (
	msgGenerated     = "%s: %dx%d grid, seed %d"
	msgCounts        = "rooms: %d  passages: %d  regions: %d  unresolved: %d"
	msgTooWide       = "warning: the map is %d columns wide but the terminal has %d"
	msgDumpWritten   = "Map dump written to %s"
	msgError         = "Error"
	msgGenerators    = "Available generators: %s"
	msgUnknownColour = "unknown colour mode %q (want auto, always or never)"
)

// localesDir finds the message catalogs: ./locales when run from the source
// tree, otherwise the locales directory next to the executable.
func localesDir() string {
	if info, err := os.Stat("locales"); err == nil && info.IsDir() {
		return "locales"
	}
	exe, err := os.Executable()
	if err != nil {
		return "locales"
	}
	return filepath.Join(filepath.Dir(exe), "locales")
}

func initGettext(lang string) {
	gotext.Configure(localesDir(), lang, "default")
}

// fail prints err and exits with status 1
func fail(err error) {
	fmt.Fprintln(os.Stderr, renderer.FormatString("DENIED{%s}: %v", gotext.Get(msgError), err))
	os.Exit(1)
}

// configureColor applies the -color flag and reports whether the map
// should be rendered in colour
func configureColor(mode string) (bool, error) {
	switch mode {
	case "always":
		color.ForceColor()
		return true, nil
	case "never":
		color.Disable()
		return false, nil
	case "auto":
		if !terminal.IsTerminal(os.Stdout) {
			color.Disable()
			return false, nil
		}
		return true, nil
	default:
		return false, errors.New(gotext.Get(msgUnknownColour, mode))
	}
}

// loadOptions reads the options file, if any, and lets explicitly set
// flags override it
func loadOptions(path string, rows, cols int, seed int64) (generator.Options, error) {
	opts := generator.DefaultOptions()
	if path != "" {
		loaded, err := generator.Load(path)
		if err != nil {
			return opts, err
		}
		opts = *loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			opts.Rows = rows
		case "cols":
			opts.Cols = cols
		case "seed":
			opts.Seed = seed
		}
	})
	return opts, opts.Validate()
}

// loadCatalog returns the standard catalog, or the templates at path
func loadCatalog(path, subsetID string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Standard(subsetID), nil
	}
	return catalog.LoadPath(path)
}

func main() {
	genName := flag.String("generator", "scatter", "generator to run ("+strings.Join(generator.Names(), ", ")+")")
	rows := flag.Int("rows", 0, "grid rows (overrides the options file)")
	cols := flag.Int("cols", 0, "grid columns (overrides the options file)")
	seed := flag.Int64("seed", 0, "random seed (overrides the options file)")
	catalogPath := flag.String("catalog", "", "room catalog file or directory of *.rooms.yaml files (default: built-in catalog)")
	optionsPath := flag.String("options", "", "YAML generation options file")
	dumpPath := flag.String("dump", "", "write a debug map dump to this file")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	lang := flag.String("lang", "en_GB", "message language")
	verbose := flag.Bool("v", false, "log generation progress to stderr")
	flag.Parse()

	initGettext(*lang)
	renderer.InitColors()

	colored, err := configureColor(*colorMode)
	if err != nil {
		fail(err)
	}

	opts, err := loadOptions(*optionsPath, *rows, *cols, *seed)
	if err != nil {
		fail(err)
	}
	if *verbose {
		opts.Logger = log.New(renderer.NewStyledWriter(os.Stderr, renderer.ColorSubtle), "dungeonforge: ", log.LstdFlags)
	}

	gen, err := generator.Lookup(*genName)
	if err != nil {
		fmt.Fprintln(os.Stderr, gotext.Get(msgGenerators, strings.Join(generator.Names(), ", ")))
		fail(err)
	}

	cat, err := loadCatalog(*catalogPath, opts.SubsetID)
	if err != nil {
		fail(err)
	}

	grid, err := gen.Generate(cat, opts)
	if err != nil {
		fail(err)
	}

	renderer.ColorAction.Println(gotext.Get(msgGenerated, gen.Name(), grid.Rows(), grid.Cols(), opts.Seed))
	if !terminal.Fits(grid.Cols()) {
		width, _ := terminal.GetSize()
		fmt.Fprintln(os.Stderr, gotext.Get(msgTooWide, grid.Cols(), width))
	}

	if err := devtools.WriteMap(os.Stdout, grid, devtools.MapOptions{Color: colored}); err != nil {
		fail(err)
	}

	regions := assemble.PathSets(grid).Count()
	renderer.ColorSubtle.Println(gotext.Get(msgCounts,
		grid.Count(world.Room), grid.Count(world.Passage), regions, devtools.Unresolved(grid)))

	if *dumpPath != "" {
		abs, err := devtools.DumpToFile(*dumpPath, grid, devtools.Metadata{
			Generator: *genName,
			Seed:      opts.Seed,
			SubsetID:  opts.SubsetID,
		})
		if err != nil {
			fail(err)
		}
		fmt.Println(gotext.Get(msgDumpWritten, abs))
	}
}
