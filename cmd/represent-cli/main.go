package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	represent "github.com/goliatone/go-represent"
	"github.com/goliatone/go-represent/pkg/view"
)

func main() {
	name := flag.String("name", "representers.Record", "qualified representer name")
	views := flag.String("views", "views", "template root directory")
	configPath := flag.String("config", "", "view config file (JSON or YAML), overrides -views")
	viewName := flag.String("view", "show", "view to render")
	format := flag.String("format", "html", "output format")
	modelPath := flag.String("model", "", "JSON file holding the model attributes")
	readers := flag.String("readers", "", "comma separated reader names")
	filtered := flag.String("filtered", "", "filtered readers as name:filter|filter, comma separated")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	model, err := loadModel(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}

	options, err := readerOptions(*readers, *filtered)
	if err != nil {
		log.Fatalf("Invalid reader declaration: %v", err)
	}

	def, err := represent.Define(*name, options...)
	if err != nil {
		log.Fatalf("Failed to define representer: %v", err)
	}

	cfg := view.Config{Root: *views}
	if *configPath != "" {
		dir, base := filepath.Split(*configPath)
		if dir == "" {
			dir = "."
		}
		cfg, err = view.LoadConfig(os.DirFS(dir), base)
		if err != nil {
			log.Fatalf("Failed to load view config: %v", err)
		}
	}

	engine, err := represent.NewEngine(cfg, nil, nil)
	if err != nil {
		log.Fatalf("Failed to build view engine: %v", err)
	}

	rendered, err := represent.Render(ctx, def, model, &cliController{engine: engine, format: *format}, *viewName)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("View written to %s\n", *output)
	} else {
		fmt.Println(rendered)
	}
}

// cliController satisfies the controller surface RenderAs needs. Output is
// collected from the render result, so the response writer stays nil.
type cliController struct {
	engine view.Engine
	format string
}

func (c *cliController) ViewEngine() view.Engine   { return c.engine }
func (c *cliController) DefaultFormat() string     { return c.format }
func (c *cliController) ResponseWriter() io.Writer { return nil }

func loadModel(path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]any{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	model := map[string]any{}
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return model, nil
}

func readerOptions(readers, filtered string) ([]represent.Option, error) {
	var options []represent.Option

	if names := splitList(readers); len(names) > 0 {
		options = append(options, represent.WithReaders(names...))
	}

	for _, spec := range splitList(filtered) {
		name, chain, found := strings.Cut(spec, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("expected name:filter|filter, got %q", spec)
		}
		filterNames := strings.Split(chain, "|")
		for i, filterName := range filterNames {
			filterNames[i] = strings.TrimSpace(filterName)
		}
		options = append(options, represent.WithFilteredReader(strings.TrimSpace(name), filterNames...))
	}

	return options, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
