package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/000o0/triangler"
	"github.com/000o0/triangler/utils"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	_ "golang.org/x/image/webp"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination image or directory")
	points      = flag.Int("pts", 2500, "Number of points to extract")
	edge        = flag.String("edge", "sobel", "Edge method: gradient, entropy, sobel")
	sample      = flag.String("sample", "threshold", "Sampling method: poisson, threshold")
	blurRadius  = flag.Int("blur", 2, "Blur radius, gradient edge method only")
	wireframe   = flag.Int("wireframe", 0, "Wireframe mode (0 none, 1 with fill, 2 stroke only)")
	noise       = flag.Int("noise", 0, "Noise factor")
	lineWidth   = flag.Float64("width", 1, "Wireframe line width")
	strokeSolid = flag.Bool("solid", false, "Solid line color")
	grayscale   = flag.Bool("gray", false, "Convert to grayscale")
	maxSize     = flag.Int("maxsize", 0, "Fit the source image into this bounding box before processing")
)

// Supported image files for directory sources.
var extensions = []string{".jpg", ".jpeg", ".png"}

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal().Msg("usage: triangler -in input.jpg -out output.png")
	}

	edgeMethod, err := parseEdge(*edge)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -edge flag")
	}
	sampleMethod, err := parseSample(*sample)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -sample flag")
	}

	proc := &triangler.Processor{
		Points:      *points,
		Edge:        edgeMethod,
		Sample:      sampleMethod,
		BlurRadius:  *blurRadius,
		Wireframe:   *wireframe,
		Noise:       *noise,
		LineWidth:   *lineWidth,
		StrokeSolid: *strokeSolid,
		Grayscale:   *grayscale,
	}

	src := *source
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		tmp, err := utils.DownloadImage(src)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to download source image")
		}
		defer os.Remove(tmp.Name())
		tmp.Close()
		src = tmp.Name()
	}

	fs, err := os.Stat(src)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open source")
	}

	toProcess := make(map[string]string)

	switch mode := fs.Mode(); {
	case mode.IsDir():
		entries, err := os.ReadDir(src)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read source dir")
		}

		dst, err := os.Stat(*destination)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to stat destination")
		}
		if !dst.Mode().IsDir() {
			log.Fatal().Msg("destination must be a directory when the source is one")
		}

		for _, entry := range entries {
			if entry.IsDir() || !supportedExt(entry.Name()) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			in := filepath.Join(src, entry.Name())
			out := filepath.Join(*destination, name+".png")
			toProcess[in] = out
		}

	case mode.IsRegular():
		toProcess[src] = *destination
	}

	for in, out := range toProcess {
		if err := convert(proc, in, out, log); err != nil {
			log.Error().Err(err).Str("file", in).Msg("conversion failed")
		}
	}
}

// convert triangulates one source file into the destination path.
func convert(proc *triangler.Processor, in, out string, log zerolog.Logger) error {
	src, err := imaging.Open(in, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("unable to decode %s: %w", in, err)
	}
	if *maxSize > 0 {
		src = imaging.Fit(src, *maxSize, *maxSize, imaging.Lanczos)
	}

	var spin *utils.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spin = utils.NewSpinner(os.Stderr)
		spin.Start("Generating triangulated image...")
	}

	start := time.Now()
	res, triangles, pts, err := proc.Process(src)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if err := imaging.Save(res, out); err != nil {
		return fmt.Errorf("unable to save %s: %w", out, err)
	}

	log.Info().
		Int("triangles", len(triangles)).
		Int("points", len(pts)).
		Str("elapsed", utils.FormatTime(time.Since(start))).
		Str("output", filepath.Base(out)).
		Msg("image generated")
	return nil
}

func parseEdge(s string) (triangler.EdgeMethod, error) {
	switch strings.ToLower(s) {
	case "gradient":
		return triangler.Gradient, nil
	case "entropy":
		return triangler.Entropy, nil
	case "sobel":
		return triangler.Sobel, nil
	}
	return 0, fmt.Errorf("unsupported edge method %q, valid methods: gradient, entropy, sobel", s)
}

func parseSample(s string) (triangler.SampleMethod, error) {
	switch strings.ToLower(s) {
	case "poisson":
		return triangler.PoissonDisk, nil
	case "threshold":
		return triangler.Threshold, nil
	}
	return 0, fmt.Errorf("unsupported sampling method %q, valid methods: poisson, threshold", s)
}

func supportedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
