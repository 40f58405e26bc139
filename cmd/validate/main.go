// Command validate checks a catalog configuration directory without
// starting the server. Exits non-zero when the catalog is unusable.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/oakvale/homestead/internal/catalog"
)

func main() {
	dir := flag.String("dir", "", "catalog directory to validate (default: embedded catalog)")
	flag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "validation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	if dir == "" {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		fmt.Printf("embedded catalog OK: %d items, %d recipes\n", cat.ItemCount(), cat.RecipeCount())
		return nil
	}

	loader := catalog.NewLoader()
	config, err := loader.Load(dir)
	if err != nil {
		return err
	}
	if err := loader.Validate(config); err != nil {
		return err
	}

	fmt.Printf("%s OK: %d items, %d activities, %d recipes, %d perks, %d upgrades\n",
		dir, len(config.Items), len(config.Activities), len(config.Recipes),
		len(config.Perks), len(config.Upgrades))
	return nil
}
