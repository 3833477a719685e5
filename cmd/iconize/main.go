package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/iconize"
	"github.com/esimov/iconize/utils"
	"golang.org/x/term"
)

const helpBanner = `
┬┌─┐┌─┐┌┐┌┬┌─┐┌─┐
││  │ │││││┌─┘├┤
┴└─┘└─┘┘└┘┴└─┘└─┘

Deterministic icon set renderer.
    Version: %s

`

// pipeName is the output name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir    = flag.String("out", "icons", "Output directory, or - to stream a single PNG to stdout")
	sizes     = flag.String("sizes", "16,48,128", "Comma separated list of icon sizes")
	mode      = flag.String("mode", "vector", "Rendering mode: vector|glyph")
	glyph     = flag.String("glyph", iconize.DefaultGlyph, "Glyph drawn in glyph mode")
	fontPath  = flag.String("font", "", "Font file path or URL used in glyph mode")
	fontScale = flag.Float64("scale", iconize.DefaultFontScale, "Glyph point size as a fraction of the icon size")
	baseSize  = flag.Int("base", 0, "Render once at this size and resample every target size from it")
	prefix    = flag.String("prefix", "icon", "Output file name prefix")
	format    = flag.String("format", "png", "Output format: png|bmp|jpg")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	targets, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	validFormats := []string{"png", "bmp", "jpg"}
	if !utils.Contains(validFormats, *format) {
		log.Fatal(utils.DecorateText(fmt.Sprintf("%s file type not supported", *format), utils.ErrorMessage))
	}

	proc := &iconize.Processor{
		Mode:      iconize.Mode(*mode),
		Glyph:     *glyph,
		FontPath:  *fontPath,
		FontScale: *fontScale,
	}

	// Check if the font source is a local file or URL.
	if utils.IsValidUrl(*fontPath) {
		src, err := utils.DownloadFont(*fontPath)
		if err != nil {
			log.Fatalf("%s %s",
				utils.DecorateText("Failed to download the font file:", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer os.Remove(src.Name())
		defer src.Close()

		proc.FontPath = src.Name()
	}

	if *outDir == pipeName {
		if err := pipeIcon(proc, targets); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		return
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("Unable to create the output directory:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONIZE", utils.StatusMessage),
		utils.DecorateText("is rendering the icon set...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80)
	spinner.Start()

	now := time.Now()

	// When a base size is requested the icon is rendered only once and
	// every target size is resampled from the same base image.
	var base *image.NRGBA
	if *baseSize > 0 {
		bp := *proc
		bp.Size = *baseSize
		base, err = bp.Render()
		if err != nil {
			spinner.Stop()
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}

	// The icons are rendered and saved sequentially, one file per size.
	results := make([]error, 0, len(targets))
	paths := make([]string, 0, len(targets))
	for _, size := range targets {
		var img *image.NRGBA
		if base != nil {
			img = iconize.Resample(base, size)
		} else {
			sp := *proc
			sp.Size = size
			img, err = sp.Render()
			if err != nil {
				spinner.Stop()
				log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
			}
		}

		path := filepath.Join(*outDir, fmt.Sprintf("%s%d.%s", *prefix, size, *format))
		paths = append(paths, path)
		results = append(results, iconize.Save(img, path))
	}
	spinner.Stop()

	for i, path := range paths {
		printStatus(path, results[i])
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// pipeIcon streams a single rendered icon to stdout as PNG.
func pipeIcon(proc *iconize.Processor, targets []int) error {
	if len(targets) != 1 {
		return fmt.Errorf("`%s` requires exactly one size, got %d", pipeName, len(targets))
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("`%s` should be used with a pipe for stdout", pipeName)
	}

	sp := *proc
	sp.Size = targets[0]
	img, err := sp.Render()
	if err != nil {
		return err
	}
	return iconize.Encode(os.Stdout, img)
}

// parseSizes converts the comma separated size list to integers.
func parseSizes(csv string) ([]int, error) {
	var targets []int
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		size, err := strconv.Atoi(tok)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid icon size: %q", tok)
		}
		targets = append(targets, size)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("please provide at least one icon size")
	}
	return targets, nil
}

// printStatus displays the relevant information about the rendering process.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError saving the icon: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(os.Stderr, "\nThe icon has been saved as: %s %s\n",
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		utils.DefaultColor,
	)
}
