package assets

import (
	"strings"
)

// rights splits a rights cell on commas or, if there are no commas, on line breaks. A nil
// dictionary keeps every right, otherwise only rights listed in the dictionary are kept (so an
// empty dictionary keeps none).
func rights(v string, dictionary []string) []string {
	var fields []string
	if strings.Contains(v, ",") {
		fields = strings.Split(v, ",")
	} else {
		fields = strings.Split(strings.ReplaceAll(v, "\r\n", "\n"), "\n")
	}

	allowed := map[string]bool{}
	for _, r := range dictionary {
		allowed[r] = true
	}

	list := []string{}
	for _, r := range fields {
		if r = strings.TrimSpace(r); r == "" {
			continue
		}

		if dictionary != nil && !allowed[r] {
			continue
		}

		list = append(list, r)
	}

	return list
}
