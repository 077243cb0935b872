package templates

import (
	"strings"

	platformi18n "github.com/louisbranch/karta/internal/platform/i18n"
	webi18n "github.com/louisbranch/karta/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer aliases the web localizer contract used by templates.
type Localizer = webi18n.Localizer

// T localizes key, using the default language when loc is nil.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		loc = webi18n.Printer(platformi18n.DefaultTag())
	}
	return strings.TrimSpace(loc.Sprintf(key, args...))
}
