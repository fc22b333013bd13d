// Package snapdiff decides whether a freshly produced test artifact matches
// a previously recorded baseline, within a configurable tolerance, and
// explains the difference when it does not.
//
// # Overview
//
// snapdiff is the verdict engine behind snapshot and visual-regression
// testing. A caller supplies an actual result, an expected baseline, and
// comparison options, and receives either a match or a structured mismatch
// report carrying a human-readable message and, for images, a rendered
// visual diff.
//
// # Quick Start
//
//	import "github.com/Theenell/snapdiff"
//
//	compare := snapdiff.ForContentType("image/png")
//
//	mismatch, err := compare(actualPNG, expectedPNG, &snapdiff.Options{
//		MaxDiffPixelRatio: snapdiff.Float64(0.01),
//	})
//	if err != nil {
//		// misconfigured comparison (for example an unknown algorithm)
//	}
//	if mismatch != nil {
//		fmt.Println(mismatch.Message)
//		os.WriteFile("diff.png", mismatch.Diff, 0o644)
//	}
//
// # Comparators
//
// ForContentType selects one of three comparators:
//   - image/png, image/jpeg, image/webp: decode both buffers, count
//     differing pixels with a pluggable pixel-diff kernel, and apply the
//     threshold policy from Options.
//   - text/plain: semantic character-level diff rendered with terminal
//     styling embedded in the mismatch message.
//   - everything else: exact byte equality.
//
// Unknown content types degrade to the strict binary comparator rather than
// failing; selection itself cannot error.
//
// # Architecture
//
// The library is organized into:
//   - Public API: ForContentType, Comparator, Options, Mismatch
//   - Kernels: PixelDiffer (pixelmatch, CIE94) and TextDiffer, both
//     replaceable interfaces
//   - Internal: imagecodec (per-format decode/encode with size limits)
//
// All comparators are pure functions of their inputs and are safe for
// concurrent use from parallel test workers.
package snapdiff
