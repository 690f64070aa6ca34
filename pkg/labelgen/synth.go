package labelgen

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lucasjones/reggen"
)

// PatternSampler is the injected random-string capability: it returns one
// string matching a regular-expression-style pattern.
type PatternSampler interface {
	Sample(pattern string) (string, error)
}

// WordSampler is the injected random-word capability: a phrase of random
// lowercase words, each formatted through format.
type WordSampler interface {
	Phrase(minWords, maxWords, minLen, maxLen int, format func(string) string) string
}

// patternRepeatLimit caps unbounded repetitions during pattern sampling.
// The registered grammars are all explicitly bounded, so it only matters
// for caller-supplied patterns.
const patternRepeatLimit = 10

// RegexSampler samples strings from regex patterns, seeded from the given
// random source so generation stays deterministic given a seed.
type RegexSampler struct {
	rng *rand.Rand
}

// NewRegexSampler returns a pattern sampler drawing from rng.
func NewRegexSampler(rng *rand.Rand) *RegexSampler {
	return &RegexSampler{rng: rng}
}

// Sample implements PatternSampler.
func (s *RegexSampler) Sample(pattern string) (string, error) {
	gen, err := reggen.NewGenerator(pattern)
	if err != nil {
		return "", fmt.Errorf("bad generation pattern %q: %w", pattern, err)
	}
	gen.SetSeed(s.rng.Int63())
	return gen.Generate(patternRepeatLimit), nil
}

// FakerWords samples lowercase words from a word list.
type FakerWords struct {
	faker *gofakeit.Faker
}

// NewFakerWords returns a word sampler seeded from seed.
func NewFakerWords(seed int64) *FakerWords {
	return &FakerWords{faker: gofakeit.New(seed)}
}

// Phrase implements WordSampler. Words outside the length bounds are
// redrawn a few times before being accepted as-is.
func (w *FakerWords) Phrase(minWords, maxWords, minLen, maxLen int, format func(string) string) string {
	if maxWords < minWords {
		maxWords = minWords
	}
	count := minWords + w.faker.Number(0, maxWords-minWords)
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := w.faker.Word()
		for attempt := 0; attempt < 5 && (len(word) < minLen || len(word) > maxLen); attempt++ {
			word = w.faker.Word()
		}
		if format != nil {
			word = format(word)
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

// Date grammar pieces. The separator is chosen once per line and repeated
// between all groups, mirroring how real documents keep one separator.
var dateSeparators = []string{"-", " ", "/", "."}

const (
	dayPattern   = `(0[1-9]|[12][0-9]|3[01])`
	monthPattern = `(0[1-9]|1[0-2])`
	yearPattern  = `([0-9]{4}|[0-9]{2})`
	timePattern  = `([01][0-9]|2[0-3]):[0-5][0-9]`
)

// currencyPattern: optional leading symbol, grouped thousands, optional
// two-decimal fraction.
const currencyPattern = `(\$|€|£)?[1-9][0-9]{0,2}(,[0-9]{3}){0,2}(\.[0-9]{2})?`

// synthesizeText produces the multi-line sample text for a field. The line
// count is sampled from [HeightLow, HeightHigh) and each line is an
// independent draw from the field's grammar.
//
// SelectionMark fields have no grammar and fail explicitly. Any other
// unregistered (type, format) pair falls back to the generic bounded-length
// pattern so an odd pairing never blocks generation; the fallback is logged
// as a warning.
func synthesizeText(cfg Config, rng *rand.Rand, patterns PatternSampler, words WordSampler, tag Tag, limits lengthLimits) (string, error) {
	if tag.Type == FieldTypeSelectionMark {
		return "", fmt.Errorf("selection mark fields have no text grammar")
	}

	lineCount := randIntInRange(rng, limits.HeightLow, limits.HeightHigh)
	if lineCount < 1 {
		lineCount = 1
	}

	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		line, err := synthesizeLine(cfg, rng, patterns, words, tag, limits)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// synthesizeLine draws a single line from the grammar for (type, format).
func synthesizeLine(cfg Config, rng *rand.Rand, patterns PatternSampler, words WordSampler, tag Tag, limits lengthLimits) (string, error) {
	low, high := limits.WidthLow, limits.WidthHigh

	if cfg.NaturalWords && words != nil && tag.Type == FieldTypeString && tag.Format == FormatAlphanumeric {
		return naturalLine(words, low, high), nil
	}

	pattern, ok := patternFor(rng, tag, low, high)
	if !ok {
		cfg.warnf("no grammar for %s/%s fields, using generic pattern", tag.Type, tag.Format)
	}
	return patterns.Sample(pattern)
}

// patternFor maps a (type, format) pair to its grammar. The second return
// is false when the generic default arm was taken.
func patternFor(rng *rand.Rand, tag Tag, low, high int) (string, bool) {
	bound := fmt.Sprintf("{%d,%d}", low, high)

	switch tag.Type {
	case FieldTypeString:
		switch tag.Format {
		case FormatAlphanumeric:
			return `[a-zA-Z ]` + bound, true
		case FormatNoWhiteSpaces:
			return `[a-zA-Z0-9]` + bound, true
		case FormatNotSpecified:
			return `.` + bound, true
		}
	case FieldTypeNumber:
		switch tag.Format {
		case FormatCurrency:
			return currencyPattern, true
		case FormatNotSpecified:
			return `[0-9]` + bound, true
		}
	case FieldTypeDate:
		switch tag.Format {
		case FormatDMY, FormatMDY, FormatYMD, FormatNotSpecified:
			return datePattern(rng, tag.Format), true
		}
	case FieldTypeTime:
		if tag.Format == FormatNotSpecified {
			return timePattern, true
		}
	case FieldTypeInteger:
		if tag.Format == FormatNotSpecified {
			return `[0-9]` + bound, true
		}
	}

	return `.` + bound, false
}

// datePattern builds a date grammar with the requested group order and a
// single separator shared by both gaps. The separator is chosen here and
// substituted into the pattern rather than expressed as a backreference.
func datePattern(rng *rand.Rand, format FieldFormat) string {
	sep := regexp.QuoteMeta(dateSeparators[rng.Intn(len(dateSeparators))])

	order := format
	if order == FormatNotSpecified {
		order = []FieldFormat{FormatDMY, FormatMDY, FormatYMD}[rng.Intn(3)]
	}

	switch order {
	case FormatMDY:
		return monthPattern + sep + dayPattern + sep + yearPattern
	case FormatYMD:
		return yearPattern + sep + monthPattern + sep + dayPattern
	default:
		return dayPattern + sep + monthPattern + sep + yearPattern
	}
}

// naturalLine joins random words until the lower character bound is met,
// then trims to the upper bound.
func naturalLine(words WordSampler, low, high int) string {
	if high < 1 {
		high = 1
	}
	maxWords := high/5 + 1
	line := words.Phrase(1, maxWords, 2, 12, nil)
	for len(line) < low {
		line += " " + words.Phrase(1, 1, 2, 12, nil)
	}
	if len(line) > high {
		line = strings.TrimRight(line[:high], " ")
	}
	return line
}
