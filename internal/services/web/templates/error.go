package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/karta/internal/services/web/routepath"
)

const (
	errorTitleKey           = "web.error.title"
	errorNotFoundTitleKey   = "web.error.not_found.title"
	errorNotFoundBodyKey    = "web.error.not_found.body"
	errorUnavailableBodyKey = "web.error.unavailable.body"
	errorBackHomeKey        = "web.error.back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, errorNotFoundTitleKey)
	}
	return T(loc, errorTitleKey)
}

func errorMessage(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, errorNotFoundBodyKey)
	}
	return T(loc, errorUnavailableBodyKey)
}

// ErrorState renders the error page body for a status code.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	heading := ErrorPageTitle(statusCode, loc)
	body := errorMessage(statusCode, loc)
	back := T(loc, errorBackHomeKey)

	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="flex flex-col items-start gap-4" data-status="`)
		hw.text(strconv.Itoa(statusCode))
		hw.raw(`"><h1 class="text-2xl font-semibold">`)
		hw.text(heading)
		hw.raw(`</h1><p class="text-muted-foreground">`)
		hw.text(body)
		hw.raw(`</p><a class="underline"`)
		hw.attr("href", routepath.Root)
		hw.raw(`>`)
		hw.text(back)
		hw.raw(`</a></section>`)
		return hw.err
	})
}
