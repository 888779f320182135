package main

// Generate a resume from the terminal:
//   go run ./cmd/resumegen -json resume.json
//   go run ./cmd/resumegen -interactive
//   go run ./cmd/resumegen -example

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resumegen/internal/generations"
	"resumegen/internal/prompt"
	"resumegen/resume/layout"
	"resumegen/resume/model"
	"resumegen/resume/render"
	"resumegen/resume/schema"
)

func main() {
	jsonPath := flag.String("json", "", "path to a resume JSON file")
	interactive := flag.Bool("interactive", false, "build the resume interactively")
	example := flag.Bool("example", false, "generate the bundled example resume")
	outDir := flag.String("out", ".", "directory to write the output files into")
	flag.Parse()

	modes := 0
	for _, enabled := range []bool{*jsonPath != "", *interactive, *example} {
		if enabled {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "usage: resumegen (-json FILE | -interactive | -example) [-out DIR]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	resume, err := loadResume(*jsonPath, *interactive)
	if err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := generate(resume, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadResume(jsonPath string, interactive bool) (model.Resume, error) {
	switch {
	case jsonPath != "":
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return model.Resume{}, err
		}
		return schema.DecodeBytes(data)
	case interactive:
		resume, err := prompt.NewBuilder().Run()
		if err != nil {
			return model.Resume{}, err
		}
		return resume, resume.Validate()
	default:
		return schema.Example(), nil
	}
}

func generate(resume model.Resume, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	tier, volume := layout.Select(resume)
	fit := layout.FitToPage(tier, resume)

	docxBytes, err := render.RenderResume(resume, fit.Tier)
	if err != nil {
		return err
	}
	jsonBytes, err := schema.EncodeBytes(resume)
	if err != nil {
		return err
	}

	docxName := generations.OutputFileName(resume)
	jsonName := strings.TrimSuffix(docxName, ".docx") + "_data.json"

	docxPath := filepath.Join(outDir, docxName)
	if err := os.WriteFile(docxPath, docxBytes, 0o644); err != nil {
		return err
	}
	jsonPath := filepath.Join(outDir, jsonName)
	if err := os.WriteFile(jsonPath, jsonBytes, 0o644); err != nil {
		return err
	}

	fmt.Printf("layout: %s (content volume %.0f, ~%.1f pages)\n", fit.Tier.Name, volume, fit.Pages)
	if fit.Overflows {
		fmt.Println("note: content likely exceeds one page even at the most compact layout")
	}
	fmt.Printf("wrote %s\n", docxPath)
	fmt.Printf("wrote %s\n", jsonPath)
	return nil
}
