package i18n

import (
	"regexp"
	"strconv"
)

var argMarker = regexp.MustCompile(`%([0-9]{1,2})`)

// Arg replaces every occurrence of the lowest numbered %1 to %99 marker of text with value.
// Calling it once per argument fills %1, %2... in order. Text without marker is returned unchanged.
func Arg(text, value string) string {
	lowest := 0
	for _, m := range argMarker.FindAllStringSubmatch(text, -1) {
		n, _ := strconv.Atoi(m[1])
		if n >= 1 && (lowest == 0 || n < lowest) {
			lowest = n
		}
	}
	if lowest == 0 {
		return text
	}
	return argMarker.ReplaceAllStringFunc(text, func(marker string) string {
		if n, _ := strconv.Atoi(marker[1:]); n == lowest {
			return value
		}
		return marker
	})
}

// Args applies Arg for each value in order.
func Args(text string, values ...string) string {
	for _, v := range values {
		text = Arg(text, v)
	}
	return text
}
