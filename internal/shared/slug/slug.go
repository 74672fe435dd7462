package slug

import (
	"strings"

	gosimple "github.com/gosimple/slug"
)

const maxLength = 200

func init() {
	gosimple.MaxLength = maxLength
}

// Make returns explicit when given, otherwise a slug derived from source.
func Make(explicit, source string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return gosimple.Make(s)
	}
	return gosimple.Make(source)
}

func IsValid(s string) bool {
	return gosimple.IsSlug(s)
}
