package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	represent "github.com/goliatone/go-represent"
)

// represent-scaffold walks through creating the conventional template layout
// for a representer: one file per view under the definition's template
// directory, named <view>.<format>.tpl.
func main() {
	name, err := askName()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	root := "views"
	if err := survey.AskOne(&survey.Input{
		Message: "Template root directory:",
		Default: root,
	}, &root); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	viewsRaw := "show"
	if err := survey.AskOne(&survey.Input{
		Message: "Views to scaffold (comma separated):",
		Default: viewsRaw,
	}, &viewsRaw); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	format := "html"
	if err := survey.AskOne(&survey.Select{
		Message: "Default format:",
		Options: []string{"html", "json", "txt"},
		Default: format,
	}, &format); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	def, err := represent.Define(name, represent.WithFormat(format))
	if err != nil {
		log.Fatalf("Invalid representer name: %v", err)
	}

	var created []string
	for _, view := range splitViews(viewsRaw) {
		path := filepath.Join(root, filepath.FromSlash(def.TemplatePath(view, format))+".tpl")
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("skip %s (exists)\n", path)
			continue
		}

		overwrite := true
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Create %s?", path),
			Default: true,
		}, &overwrite); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if !overwrite {
			continue
		}

		if err := writeSkeleton(path, def.LocalName(), view); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		created = append(created, path)
	}

	for _, path := range created {
		fmt.Printf("created %s\n", path)
	}
}

func askName() (string, error) {
	var name string
	err := survey.AskOne(&survey.Input{
		Message: "Representer name (e.g. representers.Book):",
	}, &name, survey.WithValidator(func(ans any) error {
		value, _ := ans.(string)
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("name is required")
		}
		return nil
	}))
	return strings.TrimSpace(name), err
}

func splitViews(raw string) []string {
	var views []string
	for _, view := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(view); trimmed != "" {
			views = append(views, trimmed)
		}
	}
	return views
}

func writeSkeleton(path, localName, view string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	content := fmt.Sprintf("{# %s view, bound to the %q local #}\n<article>\n  {{ %s.title }}\n</article>\n", view, localName, localName)
	return os.WriteFile(path, []byte(content), 0o644)
}
