package journal

import (
	"regexp"
	"strings"
)

type keywordTag struct {
	tag      string
	keywords []string
}

// Tags follow the JVDT-7 axis order; each names an axis and the pole letter
// the writing leans toward. Keywords match whole words, allowing a plural or
// past-tense ending; a trailing * marks a stem that may continue ("analy*").
var tagRules = []keywordTag{
	{"Perception:A", []string{"pattern", "connect*", "imagin*"}},
	{"Perception:N", []string{"analy*", "detail", "data"}},
	{"Interpretation:R", []string{"principle", "origin", "root cause"}},
	{"Interpretation:C", []string{"context", "situation", "circumstance"}},
	{"Reflection:I", []string{"i feel", "myself", "inner"}},
	{"Reflection:E", []string{"feedback", "shared with", "discussed"}},
	{"Application:D", []string{"vision", "dream", "someday"}},
	{"Application:P", []string{"checklist", "next step", "practical"}},
	{"Motivation:S", []string{"my growth", "personal goal", "for me"}},
	{"Motivation:M", []string{"mission", "purpose", "our team"}},
	{"Orientation:T", []string{"deadline", "to-do", "task"}},
	{"Orientation:H", []string{"long-term", "horizon", "future"}},
	{"Value Expression:L", []string{"love", "care", "kindness"}},
	{"Value Expression:R", []string{"respect", "fairness", "boundar*"}},
}

type tagMatcher struct {
	tag string
	re  *regexp.Regexp
}

var tagMatchers = compileTagRules(tagRules)

func compileTagRules(rules []keywordTag) []tagMatcher {
	out := make([]tagMatcher, 0, len(rules))
	for _, rule := range rules {
		alts := make([]string, 0, len(rule.keywords))
		for _, kw := range rule.keywords {
			if stem, ok := strings.CutSuffix(kw, "*"); ok {
				alts = append(alts, regexp.QuoteMeta(stem)+`\w*`)
				continue
			}
			alts = append(alts, regexp.QuoteMeta(kw)+`(?:s|es|d|ed)?\b`)
		}
		out = append(out, tagMatcher{
			tag: rule.tag,
			re:  regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)`),
		})
	}
	return out
}

// Tag returns the axis tags whose keywords appear in text, case-insensitive.
// The result is never nil.
func Tag(text string) []string {
	lower := strings.ToLower(text)
	tags := []string{}
	for _, m := range tagMatchers {
		if m.re.MatchString(lower) {
			tags = append(tags, m.tag)
		}
	}
	return tags
}
