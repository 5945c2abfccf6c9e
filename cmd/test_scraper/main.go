package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/raushankrgupta/tonies-catalog/config"
	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/parser"
	"github.com/raushankrgupta/tonies-catalog/scrapers/base"
	"github.com/raushankrgupta/tonies-catalog/scrapers/tonies"
)

type report struct {
	Input   string                `json:"input"`
	Sources []string              `json:"sources"`
	Product *models.ParsedProduct `json:"product"`
}

func main() {
	fetch := flag.Bool("fetch", false, "treat arguments as tonies.com URLs and fetch them")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-fetch] <file.html|url>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *fetch {
		config.LoadConfig()
		base.ChromeDriverPath = config.ChromeDriverPath
	}

	failed := false
	for _, arg := range flag.Args() {
		r, err := run(arg, *fetch)
		if err != nil {
			log.Printf("%s: %v\n", arg, err)
			failed = true
			continue
		}

		b, _ := json.MarshalIndent(r, "", "  ")
		fmt.Println(string(b))
		fmt.Println("--------------------------------------------------")
	}
	if failed {
		os.Exit(1)
	}
}

func run(arg string, fetch bool) (report, error) {
	if !fetch {
		raw, err := os.ReadFile(arg)
		if err != nil {
			return report{}, err
		}
		extraction := parser.Extract(string(raw))
		return report{Input: arg, Sources: extraction.Sources(), Product: extraction.Merge()}, nil
	}

	if _, err := models.ValidateImportURL(arg, config.ImportAllowedHost); err != nil {
		return report{}, err
	}
	scraper := tonies.NewToniesScraper(config.ImportAllowedHost, config.FetchTimeout, config.BrowserFallback)

	extraction, err := scraper.Extract(context.Background(), arg)
	if err != nil {
		return report{}, err
	}
	return report{Input: arg, Sources: extraction.Sources(), Product: extraction.Merge()}, nil
}
