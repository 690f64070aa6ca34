// labelgen is a command-line tool for generating synthetic ground-truth
// labels for regions on scanned documents.
//
// It reads the OCR result for a document (engine read-result JSON, a saved
// Google Document AI response, or an hOCR file), a YAML file describing the
// field regions, and writes a label file with synthesized text and word
// bounding boxes that match the surrounding page's text scale.
//
// Usage:
//
//	labelgen -regions regions.yaml -output labels.json [ocr input]
//
// OCR input (one required):
//
//	-ocr string      Path to read-result JSON (single page or array of pages)
//	-docai string    Path to a Document AI response saved as JSON
//	-hocr string     Path to an hOCR file
//
// Options:
//
//	-resolution float  Map units per device pixel (default 1)
//	-seed int          Random seed (default: current time)
//	-no-jitter         Disable all random perturbation
//	-propose           Print tag proposals for the regions instead of generating
//	-overwrite         Overwrite the output file if it exists
//
// Region file format:
//
//	regions:
//	  - bbox: [0, 0, 100, 0, 100, -50, 0, -50]
//	    canvasBbox: [0, 0, 200, 0, 200, -100, 0, -100]
//	    page: 1
//	    tag: {name: invoiceTotal, type: number, format: currency}
//	    ocrLine: 3   # omit to sample lines randomly
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gardar/labelsynth/pkg/gdocai"
	"github.com/gardar/labelsynth/pkg/hocr"
	"github.com/gardar/labelsynth/pkg/labelgen"
	"github.com/gardar/labelsynth/pkg/ocr"
)

// regionConfig mirrors labelgen.Region with an optional reference line, so
// an omitted ocrLine means "sample randomly" rather than line zero.
type regionConfig struct {
	BBox       []float64    `yaml:"bbox"`
	CanvasBBox []float64    `yaml:"canvasBbox"`
	Page       int          `yaml:"page"`
	Tag        labelgen.Tag `yaml:"tag"`
	OCRLine    *int         `yaml:"ocrLine"`
}

type regionsFile struct {
	Regions []regionConfig `yaml:"regions"`
}

type labelsFile struct {
	Document string           `json:"document"`
	Labels   []labelgen.Label `json:"labels"`
}

func main() {
	ocrPath := flag.String("ocr", "", "Path to read-result JSON")
	docaiPath := flag.String("docai", "", "Path to a Document AI response saved as JSON")
	hocrPath := flag.String("hocr", "", "Path to an hOCR file")
	regionsPath := flag.String("regions", "", "Path to the regions YAML file")
	outputPath := flag.String("output", "", "Output labels JSON path")
	resolution := flag.Float64("resolution", 1, "Map units per device pixel")
	seed := flag.Int64("seed", 0, "Random seed (0 = current time)")
	noJitter := flag.Bool("no-jitter", false, "Disable all random perturbation")
	propose := flag.Bool("propose", false, "Print tag proposals instead of generating")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output file if it already exists")
	flag.Parse()

	if *regionsPath == "" {
		fmt.Println("Error: Must provide -regions path")
		os.Exit(1)
	}

	pages, source, err := loadPages(*ocrPath, *docaiPath, *hocrPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	regions, err := loadRegions(*regionsPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if *propose {
		for _, region := range regions {
			page, err := pageFor(pages, region.Page)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			proposal := labelgen.ProposeTag(region.BBox, page)
			out, err := json.Marshal(proposal)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		}
		return
	}

	if *outputPath == "" {
		fmt.Println("Error: Must provide -output path")
		os.Exit(1)
	}
	if _, err := os.Stat(*outputPath); err == nil && !*overwrite {
		fmt.Printf("Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
		os.Exit(1)
	}

	cfg := labelgen.DefaultConfig()
	if *noJitter {
		cfg.Jitter = false
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := labelgen.NewGenerator(cfg, labelgen.NewPDFMeasurer(), *seed)

	out := labelsFile{Document: filepath.Base(source)}
	for _, region := range regions {
		page, err := pageFor(pages, region.Page)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		info, err := gen.Generate(region, page, *resolution)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		out.Labels = append(out.Labels, labelgen.ToLabel(info))
		fmt.Printf("Generated %q for field %q on page %d\n", info.Text, info.Name, info.Page)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d labels to %s\n", len(out.Labels), *outputPath)
}

// loadPages reads the OCR input from whichever source flag was provided.
func loadPages(ocrPath, docaiPath, hocrPath string) ([]ocr.ReadResult, string, error) {
	switch {
	case ocrPath != "":
		data, err := os.ReadFile(ocrPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading read-result file: %w", err)
		}
		var pages []ocr.ReadResult
		if err := json.Unmarshal(data, &pages); err != nil {
			var page ocr.ReadResult
			if err := json.Unmarshal(data, &page); err != nil {
				return nil, "", fmt.Errorf("parsing read-result file: %w", err)
			}
			pages = []ocr.ReadResult{page}
		}
		return pages, ocrPath, nil

	case docaiPath != "":
		doc, err := gdocai.LoadDocument(docaiPath)
		if err != nil {
			return nil, "", err
		}
		pages, err := gdocai.FromProto(doc)
		return pages, docaiPath, err

	case hocrPath != "":
		data, err := os.ReadFile(hocrPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading hocr file: %w", err)
		}
		pages, err := hocr.ParseReadResults(data)
		return pages, hocrPath, err

	default:
		return nil, "", fmt.Errorf("must provide one of -ocr, -docai or -hocr")
	}
}

// loadRegions parses the regions YAML file.
func loadRegions(path string) ([]labelgen.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regions file: %w", err)
	}
	var file regionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing regions file: %w", err)
	}
	if len(file.Regions) == 0 {
		return nil, fmt.Errorf("regions file %s defines no regions", path)
	}

	regions := make([]labelgen.Region, 0, len(file.Regions))
	for _, rc := range file.Regions {
		region := labelgen.Region{
			BBox:       rc.BBox,
			CanvasBBox: rc.CanvasBBox,
			Page:       rc.Page,
			Tag:        rc.Tag,
			OCRLine:    -1,
		}
		if rc.OCRLine != nil {
			region.OCRLine = *rc.OCRLine
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// pageFor finds the read result for a 1-based page number.
func pageFor(pages []ocr.ReadResult, number int) (ocr.ReadResult, error) {
	for _, page := range pages {
		if page.Page == number {
			return page, nil
		}
	}
	if number >= 1 && number <= len(pages) {
		return pages[number-1], nil
	}
	return ocr.ReadResult{}, fmt.Errorf("no ocr result for page %d", number)
}
