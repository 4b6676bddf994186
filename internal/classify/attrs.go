package classify

import (
	"regexp"
	"strings"
)

var (
	storageGB = regexp.MustCompile(`(?i)(\d+)\s*GB(?:[^a-zA-Z]|$)`)
	storageTB = regexp.MustCompile(`(?i)(\d+)\s*TB(?:[^a-zA-Z]|$)`)
)

// Storage extracts a capacity label like "256GB" or "1TB" from listing
// text, or "" when none is present. TB is checked first so "1TB" never
// reads as gigabytes.
func Storage(text string) string {
	if m := storageTB.FindStringSubmatch(text); m != nil {
		return m[1] + "TB"
	}
	if m := storageGB.FindStringSubmatch(text); m != nil {
		return m[1] + "GB"
	}
	return ""
}

// gradeRules map condition phrasing to a normalized grade label. Ordered:
// first match wins, so the specific "cracked screen" beats the generic
// "broken".
var gradeRules = []struct {
	re    *regexp.Regexp
	grade string
}{
	{regexp.MustCompile(`new\s*sealed|sealed\s*new|factory\s*sealed|brand\s*new|new\s*in\s*box|\bnib\b`), "New Sealed"},
	{regexp.MustCompile(`open\s*box|opened\s*box|box\s*open`), "Open Box"},
	{regexp.MustCompile(`\ba\s*grade|grade\s*a\b|excellent\s*condition|like\s*new|mint\s*condition|pristine`), "A Grade"},
	{regexp.MustCompile(`\bb\s*grade|grade\s*b\b|good\s*condition|fair\s*condition`), "B Grade"},
	{regexp.MustCompile(`\bc\s*grade|grade\s*c\b|poor\s*condition|rough\s*condition|heavily\s*used`), "C Grade"},
	{regexp.MustCompile(`\bd\s*grade|grade\s*d\b|very\s*poor|bad\s*condition`), "D Grade"},
	{regexp.MustCompile(`\bdoa\b|dead\s*on\s*arrival|not\s*working|no\s*power`), "DOA"},
	{regexp.MustCompile(`cracked\s*screen|screen\s*cracked|broken\s*screen|shattered\s*screen`), "Cracked Screen"},
	{regexp.MustCompile(`cracked\s*back|back\s*cracked|back\s*glass\s*cracked`), "Cracked Back"},
	{regexp.MustCompile(`water\s*damage|liquid\s*damage|water\s*logged`), "Water Damage"},
	{regexp.MustCompile(`broken|damaged|faulty|defective`), "Damaged/Other"},
}

// Grade extracts a normalized condition grade from listing text, or ""
// when the text carries no condition phrasing.
func Grade(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range gradeRules {
		if rule.re.MatchString(lower) {
			return rule.grade
		}
	}
	return ""
}
