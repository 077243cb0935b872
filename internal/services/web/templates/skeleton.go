package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// SkeletonBaseClass is always applied to skeleton placeholders.
const SkeletonBaseClass = "animate-pulse rounded-md bg-muted"

// ClassNames joins non-blank class inputs in order with single spaces.
func ClassNames(inputs ...string) string {
	parts := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if trimmed := strings.TrimSpace(input); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// Skeleton renders a pulsing placeholder block. Caller classes follow the
// base classes; blank values are ignored.
func Skeleton(className ...string) templ.Component {
	class := ClassNames(append([]string{SkeletonBaseClass}, className...)...)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div data-slot="skeleton"`)
		hw.attr("class", class)
		hw.raw(`></div>`)
		return hw.err
	})
}
