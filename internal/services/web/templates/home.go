package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// homeSkeletonRows shapes the placeholder menu shown until menu data exists.
var homeSkeletonRows = [][]string{
	{"h-6 w-1/3", "h-4 w-full", "h-4 w-2/3"},
	{"h-6 w-1/4", "h-4 w-full", "h-4 w-1/2"},
	{"h-6 w-2/5", "h-4 w-5/6", "h-4 w-3/5"},
}

// HomePage renders the placeholder landing content. A nil localizer falls
// back to the default language.
func HomePage(loc Localizer) templ.Component {
	heading := T(loc, "web.home.heading")
	waiting := T(loc, "web.home.waiting")
	loadingLabel := T(loc, "web.home.loading_label")

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="flex flex-col gap-6">`)
		hw.raw(`<h1 class="text-3xl font-bold tracking-tight">`)
		hw.text(heading)
		hw.raw(`</h1><p class="text-muted-foreground">`)
		hw.text(waiting)
		hw.raw(`</p><div role="status" aria-busy="true"`)
		hw.attr("aria-label", loadingLabel)
		hw.raw(` class="flex flex-col gap-8">`)
		for _, row := range homeSkeletonRows {
			hw.raw(`<div class="flex flex-col gap-2">`)
			for _, class := range row {
				hw.render(ctx, Skeleton(class))
			}
			hw.raw(`</div>`)
		}
		hw.raw(`</div></section>`)
		return hw.err
	})
}
