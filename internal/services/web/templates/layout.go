package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/karta/internal/platform/branding"
	platformi18n "github.com/louisbranch/karta/internal/platform/i18n"
	webi18n "github.com/louisbranch/karta/internal/services/web/platform/i18n"
	"github.com/louisbranch/karta/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// LayoutOptions configures the root document shell.
type LayoutOptions struct {
	Title       string
	Description string
	Lang        string
}

// ComposePageTitle appends the product name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// Layout renders the HTML document and places the context children inside
// <main>. It applies global styles and page metadata.
func Layout(opts LayoutOptions) templ.Component {
	lang := strings.TrimSpace(opts.Lang)
	if lang == "" {
		lang = platformi18n.DefaultTag().String()
	}
	description := strings.TrimSpace(opts.Description)
	if description == "" {
		description = T(nil, "web.meta.description")
	}
	title := ComposePageTitle(opts.Title)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html`)
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw(`<title>`)
		hw.text(title)
		hw.raw(`</title><meta name="description"`)
		hw.attr("content", description)
		hw.raw(`><meta name="application-name"`)
		hw.attr("content", branding.AppName)
		hw.raw(`><link rel="stylesheet"`)
		hw.attr("href", routepath.Static("app.css"))
		hw.raw(`><script defer`)
		hw.attr("src", htmxScriptURL)
		hw.raw(`></script></head><body class="min-h-screen bg-background font-sans antialiased">`)
		hw.raw(`<main id="main" class="container mx-auto px-4 py-10">`)
		hw.render(ctx, children)
		hw.raw(`</main>`)
		languageSwitcher(hw, lang)
		hw.raw(`</body></html>`)
		return hw.err
	})
}

// languageSwitcher links every supported language back to the home page.
func languageSwitcher(hw *htmlWriter, current string) {
	loc := webi18n.Printer(platformi18n.DefaultTag())
	if tag, ok := platformi18n.ParseTag(current); ok {
		loc = webi18n.Printer(tag)
	}
	hw.raw(`<footer class="container mx-auto px-4 pb-6 text-sm"><nav`)
	hw.attr("aria-label", T(loc, "web.language.label"))
	hw.raw(`>`)
	for i, tag := range platformi18n.SupportedTags() {
		if i > 0 {
			hw.raw(` `)
		}
		code := tag.String()
		base, _ := tag.Base()
		hw.raw(`<a`)
		hw.attr("href", routepath.WithLang(routepath.Root, code))
		hw.attr("hreflang", code)
		if code == current {
			hw.attr("aria-current", "true")
		}
		hw.raw(`>`)
		hw.text(strings.ToUpper(base.String()))
		hw.raw(`</a>`)
	}
	hw.raw(`</nav></footer>`)
}
