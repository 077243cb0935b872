package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can
// emit markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(markup string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, markup)
}

func (hw *htmlWriter) text(value string) {
	hw.raw(templ.EscapeString(value))
}

func (hw *htmlWriter) attr(name string, value string) {
	hw.raw(" " + name + `="`)
	hw.text(value)
	hw.raw(`"`)
}

func (hw *htmlWriter) render(ctx context.Context, component templ.Component) {
	if hw.err != nil || component == nil {
		return
	}
	hw.err = component.Render(ctx, hw.w)
}
