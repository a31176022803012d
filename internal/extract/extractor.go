// Package extract implements the pattern rules that turn free-form user
// text into structured daily-log fields, plus the completeness check over
// the accumulated record.
package extract

import (
	"regexp"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
)

// DateLayout is the canonical on-record date format.
const DateLayout = "2006-01-02"

var (
	datePhrasePattern = regexp.MustCompile(`(?i)(?:for|on)\s+([\w\s\-,]+)`)
	arrivalPattern    = regexp.MustCompile(`(?:arrived|came)\s+at\s+(\d{1,2}:\d{2})`)
	departurePattern  = regexp.MustCompile(`(?:left|departed)\s+at\s+(\d{1,2}:\d{2})`)
	topicsPattern     = regexp.MustCompile(`(?:studied|learned)\s+(.*)`)

	markPatterns = func() map[string]*regexp.Regexp {
		patterns := make(map[string]*regexp.Regexp, len(models.ChildNames))
		for _, child := range models.ChildNames {
			patterns[child] = regexp.MustCompile(child + `\s*:*\s*(\d{1,2})`)
		}
		return patterns
	}()
)

// Apply runs every extraction rule over text and mutates rec in place.
// Rules are independent: a single turn may supply any subset of fields, and
// an already-set field is overwritten only when a new match is found. The
// Friday flag is sticky once true. Unmatched patterns are silent; missing
// data only ever shows up through MissingFields.
func Apply(rec *models.OngoingRecord, text string, now time.Time) {
	if rec.Marks == nil {
		rec.Marks = make(map[string]string)
	}

	applyDate(rec, text, now)

	lower := strings.ToLower(text)

	if strings.Contains(lower, "friday") {
		rec.IsFriday = true
	}

	if matches := arrivalPattern.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		rec.Arrival = matches[len(matches)-1][1]
	}

	if matches := departurePattern.FindAllStringSubmatch(lower, -1); len(matches) > 0 {
		rec.Departure = matches[len(matches)-1][1]
	}

	// First match only, captured to end of line. The capture is not trimmed
	// of a trailing date phrase, so "studied AI for January 10th" stores
	// "ai for january 10th" even though the date rule consumed the same
	// suffix. Known quirk, kept on purpose.
	if match := topicsPattern.FindStringSubmatch(lower); match != nil {
		rec.Topics = strings.TrimSpace(match[1])
	}

	if rec.IsFriday {
		for _, child := range models.ChildNames {
			if matches := markPatterns[child].FindAllStringSubmatch(lower, -1); len(matches) > 0 {
				rec.Marks[child] = matches[len(matches)-1][1]
			}
		}
	}
}

// applyDate resolves "for <phrase>" / "on <phrase>" spans against the
// natural-language date parser, in order of appearance. The first span that
// parses wins and overwrites any date set on an earlier turn. When nothing
// parses the existing date is kept, or defaults to today if none was ever
// set. Unparsable spans never surface as errors.
func applyDate(rec *models.OngoingRecord, text string, now time.Time) {
	cfg := &dateparser.Configuration{CurrentTime: now}

	for _, match := range datePhrasePattern.FindAllStringSubmatch(text, -1) {
		parsed, err := dateparser.Parse(cfg, strings.TrimSpace(match[1]))
		if err != nil {
			continue
		}
		rec.Date = parsed.Time.Format(DateLayout)
		return
	}

	if rec.Date == "" {
		rec.Date = now.Format(DateLayout)
	}
}
