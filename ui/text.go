package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Keys longer than this do not widen the padding of the others.
const maxKeyPadding = 30

func Color() aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	return Color().Bold(text).String()
}

func RedText(text string) string {
	return Color().Red(text).String()
}

func GreenText(text string) string {
	return Color().Green(text).String()
}

func YellowText(text string) string {
	return Color().Yellow(text).String()
}

func BlueText(text string) string {
	return Color().Blue(text).String()
}

func MagentaText(text string) string {
	return Color().Magenta(text).String()
}

func GrayText(text string) string {
	return Color().Gray(12, text).String()
}

// KeyValues renders a map as aligned "key: value" lines sorted by key.
func KeyValues(values map[string]string) string {
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	width := 0
	for k := range values {
		keys = append(keys, k)
		if len(k) > width && len(k) <= maxKeyPadding {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		label := k + ":"
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", maxInt(width+2-len(label), 1)))
		b.WriteString(values[k])
		b.WriteString("\n")
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// Truncate shortens s to length runes by eliding its middle.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length < 5 {
		length = 5
	}
	keep := length - 3
	head := (keep + 1) / 2
	tail := keep / 2
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}

func PrefixLines(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
