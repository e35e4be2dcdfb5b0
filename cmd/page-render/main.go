package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-agencysite"
	"github.com/goliatone/go-agencysite/pkg/orchestrator"
	"github.com/goliatone/go-agencysite/pkg/site"
)

func main() {
	pageName := flag.String("page", string(site.PageHome), "page to render ("+pageNames()+")")
	renderer := flag.String("renderer", "vanilla", "renderer to use (vanilla or json)")
	variant := flag.String("variant", "", "theme variant (dark or light)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	page := site.Page(strings.TrimSpace(*pageName))
	if !page.Valid() {
		log.Fatalf("unknown page %q (want one of %s)", *pageName, pageNames())
	}

	var opts []orchestrator.Option
	if *variant != "" {
		opt, err := agencysite.WithThemeVariant(*variant)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		opts = append(opts, opt)
	}

	body, err := agencysite.RenderPage(context.Background(), page, *renderer, opts...)
	if err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, body, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(string(body))
	}
}

func pageNames() string {
	names := make([]string, 0, len(site.Pages()))
	for _, page := range site.Pages() {
		names = append(names, page.String())
	}
	return strings.Join(names, ", ")
}
