// Package episode extracts episode ordinals from release titles.
//
// Fansub release titles mix languages, bracket groups and dash separators:
// "[Group] Show Name - 12 [1080p]", "【字幕组】[Show][28][简日双语]",
// "Show 第12話". Extraction is best effort; a title with no recognizable
// ordinal is a normal negative outcome, not an error condition worth a retry.
package episode

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var (
	// ErrUnresolved means no episode number could be extracted from the title.
	ErrUnresolved = errors.New("no episode number in title")
	// ErrAmbiguous means the title carries more than one episode number
	// (a batch release such as "01-03").
	ErrAmbiguous = errors.New("multiple episode numbers in title")
)

// Number is an episode ordinal as a left-zero-padded string with a minimum
// width of two: "03", "12", "104". Fractional specials keep their dot: "22.5".
type Number string

// Value returns the numeric value of the ordinal, ignoring padding.
func (n Number) Value() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Format renders a raw numeric string as a padded Number: "3" becomes "03",
// "003" becomes "03", "104" stays "104".
func Format(raw string) Number {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Number(raw)
	}
	out := strconv.FormatFloat(f, 'f', -1, 64)
	for len(out) < 2 {
		out = "0" + out
	}
	return Number(out)
}

var (
	// the trailing range groups keep batch releases ("EP01-03", "S01E01-12",
	// "第1-12話") from resolving to their first endpoint
	reHanEpisode = regexp.MustCompile(`第\s*(\d{1,4}(?:\.\d+)?)(?:\s*[-~]\s*(\d{1,4}(?:\.\d+)?))?\s*[話话集]`)
	reSeasonEp   = regexp.MustCompile(`(?i)\bs\d{1,2}\s?e(\d{1,4})(?:\s*[-~]\s*e?(\d{1,4}))?\b`)
	reEpWord     = regexp.MustCompile(`(?i)\b(?:ep|episode|e)\.?\s?(\d{1,4}(?:\.\d+)?)(?:\s*[-~]\s*(?:ep\.?|episode|e\.?)?\s?(\d{1,4}(?:\.\d+)?))?\b`)
	reBracket    = regexp.MustCompile(`[\[【(（][^\]】)）]*[\]】)）]`)
	rePureNo     = regexp.MustCompile(`^(\d{1,4}(?:\.\d+)?)(?:\s*[vV]\d+)?(?:\s*(?:END|完))?$`)
	reRangeTok   = regexp.MustCompile(`^(\d{1,3}(?:\.\d+)?)\s*[-~]\s*(\d{1,3}(?:\.\d+)?)$`)
	reNumberTok  = regexp.MustCompile(`^(\d{1,4}(?:\.\d+)?)(?:[vV]\d+)?$`)

	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{3,4}[pi]\b`),
		regexp.MustCompile(`(?i)\b\d{3,4}x\d{3,4}\b`),
		regexp.MustCompile(`(?i)\b[xh]\.?26[45]\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}-?bits?\b`),
		regexp.MustCompile(`(?i)\b\d{2,3}fps\b`),
		regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:aac|flac|opus|hevc|avc)(?:2\.0|5\.1|7\.1)?\b`),
	}

	// bare numbers that are almost certainly a resolution, not an ordinal
	resolutionValues = map[string]struct{}{
		"480": {}, "576": {}, "720": {}, "1080": {}, "2160": {},
	}
)

// Extract returns every episode ordinal found in the title in order of
// appearance. A batch release such as "Show 01-03" yields its endpoints.
// ErrUnresolved is returned when the title carries no recognizable ordinal.
func Extract(title string) ([]Number, error) {
	// fold full-width digits and brackets used by CJK release groups
	norm := width.Narrow.String(title)

	if m := reHanEpisode.FindStringSubmatch(norm); m != nil {
		return spanNumbers(m), nil
	}

	if m := reSeasonEp.FindStringSubmatch(norm); m != nil {
		return spanNumbers(m), nil
	}

	clean := reBracket.ReplaceAllStringFunc(norm, func(group string) string {
		inner := strings.TrimFunc(group, func(r rune) bool {
			return strings.ContainsRune("[]()【】（）", r)
		})
		inner = strings.TrimSpace(inner)
		if reRangeTok.MatchString(inner) {
			return " " + inner + " "
		}
		if m := rePureNo.FindStringSubmatch(inner); m != nil && !looksLikeYear(m[1]) && !isResolution(m[1]) {
			return " " + m[1] + " "
		}
		return " "
	})

	for _, p := range noisePatterns {
		clean = p.ReplaceAllString(clean, " ")
	}

	if m := reEpWord.FindStringSubmatch(clean); m != nil {
		return spanNumbers(m), nil
	}

	tokens := strings.Fields(clean)

	// batch range: "01-03", "01~12"
	for _, tok := range tokens {
		if m := reRangeTok.FindStringSubmatch(tok); m != nil {
			return []Number{Format(m[1]), Format(m[2])}, nil
		}
	}

	// prefer a number directly following a dash separator, the dominant
	// "Show Name - 12" notation; otherwise fall back to the last bare number
	var candidates []string
	var dashed []string
	for i, tok := range tokens {
		m := reNumberTok.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		if looksLikeYear(m[1]) || isResolution(m[1]) {
			continue
		}
		candidates = append(candidates, m[1])
		if i > 0 && isDash(tokens[i-1]) {
			dashed = append(dashed, m[1])
		}
	}

	if len(dashed) > 0 {
		return []Number{Format(dashed[len(dashed)-1])}, nil
	}
	if len(candidates) > 0 {
		return []Number{Format(candidates[len(candidates)-1])}, nil
	}

	return nil, ErrUnresolved
}

// ExtractOne returns the single episode ordinal of the title. Batch titles
// report ErrAmbiguous; this keeps multi-episode releases out of single-episode
// dedup decisions.
func ExtractOne(title string) (Number, error) {
	numbers, err := Extract(title)
	if err != nil {
		return "", err
	}
	if len(numbers) != 1 {
		return "", ErrAmbiguous
	}
	return numbers[0], nil
}

// spanNumbers maps a (number, optional range end) submatch onto one ordinal
// or a batch's endpoints.
func spanNumbers(m []string) []Number {
	if m[2] != "" {
		return []Number{Format(m[1]), Format(m[2])}
	}
	return []Number{Format(m[1])}
}

func looksLikeYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	return strings.HasPrefix(s, "19") || strings.HasPrefix(s, "20")
}

func isResolution(s string) bool {
	_, ok := resolutionValues[s]
	return ok
}

func isDash(tok string) bool {
	return tok == "-" || tok == "–" || tok == "—"
}
