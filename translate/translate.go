// Package translate formats the user visible messages of lepr.
//
// The language is taken from the LEPR_LOCALE environment variable when it is
// set, and from the system locales otherwise. Messages are written as en-US
// Sprintf() formats, which also serve as the fallback language.
package translate

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	LOCALE_ENV      = "LEPR_LOCALE" // Comma separated locale override.
	LOCALE_FALLBACK = "en-US"       // Language of the message formats.
)

var printer *message.Printer

func init() {
	Use(locales()...)
}

// locales returns the preferred locales, most preferred first.
func locales() (tags []string) {
	if env, ok := os.LookupEnv(LOCALE_ENV); ok {
		for _, tag := range strings.Split(env, ",") {
			tag = strings.TrimSpace(tag)
			if len(tag) != 0 {
				tags = append(tags, tag)
			}
		}
		return
	}

	tags, err := locale.GetLocales()
	if err != nil {
		log.Printf("lepr: locale: %v", err)
	}

	return
}

// valid returns the parsable locales of tags, or LOCALE_FALLBACK when there
// are none.
func valid(tags []string) (names []string) {
	for _, name := range tags {
		_, err := language.Parse(name)
		if err != nil {
			log.Printf("lepr: locale %q: %v", name, err)
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		names = []string{LOCALE_FALLBACK}
	}

	return
}

// Use selects the language of the messages from a list of locales, most
// preferred first. Unparsable locales are skipped; with none left, the
// messages are formatted in LOCALE_FALLBACK.
func Use(tags ...string) {
	printer = message.NewPrinter(message.MatchLanguage(valid(tags)...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
