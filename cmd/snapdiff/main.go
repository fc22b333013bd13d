// Command snapdiff compares two artifact files and reports the verdict.
//
// Exit code 0 means the artifacts match, 1 means they differ, 2 means the
// invocation itself was wrong (usage or configuration error).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Theenell/snapdiff"
)

func main() {
	var (
		contentType = flag.String("content-type", "", "content type of the artifacts (inferred from the file extension when empty)")
		threshold   = flag.Float64("threshold", 0.2, "per-pixel color-closeness tolerance in [0,1]")
		maxPixels   = flag.Int("max-diff-pixels", -1, "absolute cap on differing pixels (-1: unset)")
		maxRatio    = flag.Float64("max-diff-pixel-ratio", -1, "cap on differing pixels as a fraction of total pixels (-1: unset)")
		algorithm   = flag.String("algorithm", string(snapdiff.AlgorithmPerceptualThreshold), "pixel-diff algorithm: perceptual-threshold or color-distance-cie94")
		diffPath    = flag.String("diff", "", "write the diff visualization to this path on image mismatches")
		verbose     = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: snapdiff [flags] actual expected")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		snapdiff.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mismatch, err := run(flag.Arg(0), flag.Arg(1), *contentType, options(*threshold, *maxPixels, *maxRatio, *algorithm))
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapdiff: %v\n", err)
		os.Exit(2)
	}
	if mismatch == nil {
		fmt.Println("Artifacts match")
		return
	}

	fmt.Println(mismatch.Message)
	if *diffPath != "" && mismatch.Diff != nil {
		if err := os.WriteFile(*diffPath, mismatch.Diff, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "snapdiff: %v\n", errors.Wrap(err, "write diff image"))
			os.Exit(2)
		}
		fmt.Printf("Diff written to %s\n", *diffPath)
	}
	os.Exit(1)
}

func options(threshold float64, maxPixels int, maxRatio float64, algorithm string) *snapdiff.Options {
	opts := &snapdiff.Options{
		Threshold: snapdiff.Float64(threshold),
		Algorithm: snapdiff.Algorithm(algorithm),
	}
	if maxPixels >= 0 {
		opts.MaxDiffPixels = snapdiff.Int(maxPixels)
	}
	if maxRatio >= 0 {
		opts.MaxDiffPixelRatio = snapdiff.Float64(maxRatio)
	}
	return opts
}

func run(actualPath, expectedPath, contentType string, opts *snapdiff.Options) (*snapdiff.Mismatch, error) {
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read actual artifact %q", actualPath)
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read expected artifact %q", expectedPath)
	}

	if contentType == "" {
		contentType = detectContentType(actualPath)
	}

	compare := snapdiff.ForContentType(contentType)
	if contentType == "text/plain" {
		// The text comparator takes the actual artifact as a string.
		return compare(string(actual), expected, opts)
	}
	return compare(actual, expected, opts)
}

// detectContentType maps the file extension to a MIME type. Unknown
// extensions fall through to "", which selects the binary comparator.
func detectContentType(path string) string {
	switch ext := filepath.Ext(path); ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".txt":
		return "text/plain"
	default:
		return mime.TypeByExtension(ext)
	}
}
