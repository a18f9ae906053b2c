// Command wandtrace runs a wand selection on an image and outputs the outline.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"wand-tracer/internal/overlay"
	"wand-tracer/internal/version"
	"wand-tracer/internal/wand"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (TIFF, PNG, or JPEG)")
	clickX := flag.Int("x", -1, "Clicked pixel column")
	clickY := flag.Int("y", -1, "Clicked pixel row")
	configPath := flag.String("config", "", "Optional yaml file with wand parameters")
	rays := flag.Int("rays", 0, "Override number of rays")
	tolerance := flag.Float64("tolerance", -1, "Override gray-level tolerance (0-255)")
	maskPath := flag.String("mask", "", "Write the selection mask as PNG")
	overlayPath := flag.String("overlay", "", "Write the image with the outline drawn on it as PNG")
	dumpConfig := flag.Bool("dump-config", false, "Print the effective parameters and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	params := wand.DefaultParams()
	if *configPath != "" {
		p, err := wand.LoadParams(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		params = p
	}
	if *rays > 0 {
		params = params.WithRays(*rays)
	}
	if *tolerance >= 0 {
		params = params.WithTolerance(*tolerance)
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(1)
	}

	if *dumpConfig {
		doc, err := params.YAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Print(doc)
		return
	}

	if *imagePath == "" || *clickX < 0 || *clickY < 0 {
		fmt.Println("Usage: wandtrace -image <path> -x <col> -y <row> [-config wand.yaml] [-mask out.png] [-overlay out.png]")
		os.Exit(1)
	}

	// Load image
	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %s image: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())
	fmt.Printf("Rays: %d, max radius %.0f, tolerance %.1f\n", params.Rays, params.MaxRadius, params.Tolerance)

	// Coordinates on the command line are relative to the image origin
	sel, err := wand.Select(img, bounds.Min.X+*clickX, bounds.Min.Y+*clickY, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Selection failed: %v\n", err)
		os.Exit(1)
	}

	o := sel.Outline
	fmt.Printf("\nSelection at (%d,%d):\n", sel.Center.X, sel.Center.Y)
	fmt.Printf("  Mean radius: %.2f px (stddev %.2f, CV %.3f, circular=%v)\n",
		sel.MeanRadius, sel.StdDev, sel.Circularity, sel.IsCircle)
	fmt.Printf("  Outline: %d pixels from %d samples (%d midpoints, %d bridged)\n",
		len(o.Points), o.Samples, o.Midpoints, o.Bridged)
	fmt.Printf("  Enclosed area: %.1f px\n", o.Area())

	fmt.Printf("\n%6s %6s\n", "X", "Y")
	for _, p := range o.Points {
		fmt.Printf("%6d %6d\n", p.X, p.Y)
	}

	if *maskPath != "" {
		if err := writePNG(*maskPath, sel.Mask); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write mask: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote mask to %s\n", *maskPath)
	}

	if *overlayPath != "" {
		data, err := overlay.Render(img, sel.Center, o.Points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render overlay: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*overlayPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote overlay to %s\n", *overlayPath)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
