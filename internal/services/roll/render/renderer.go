// Package render formats roll reports as chat-ready text.
package render

import (
	"strconv"
	"strings"

	"github.com/louisbranch/cortex-dice/internal/core/check"
	"github.com/louisbranch/cortex-dice/internal/core/dice"
	"github.com/louisbranch/cortex-dice/internal/services/roll"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	keyBotch        = "roll.botch"
	keyOnlyTotal    = "roll.only_total"
	keyBestTotal    = "roll.best_total"
	keyBestEffect   = "roll.best_effect"
	keyHitches      = "roll.hitches"
	keyIgnored      = "roll.ignored"
	keySeed         = "roll.seed"
	keySample       = "roll.sample"
	keyCheckSuccess = "roll.check.success"
	keyCheckHeroic  = "roll.check.heroic"
	keyCheckFailure = "roll.check.failure"
	keyPoolAdded    = "pool.added"
	keyPoolEmpty    = "pool.empty"

	defaultBotch     = "Botch!"
	defaultPoolEmpty = "The pool is empty."
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Tag resolves a locale such as "pt-BR" or "en_US" to a supported language.
// Unknown or malformed locales resolve to English.
func Tag(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := tagMatcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supportedTags[index]
}

// Printer returns a message printer for the supplied locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale))
}

// Report renders one roll: the pool composition when known, a line per die
// group with hitches in parentheses, the suggested Totals when present, then
// the hitch count.
func Report(loc Localizer, report roll.Report) string {
	body := reportBody(loc, report)
	if len(report.Composition.Groups) == 0 {
		return body
	}
	return Composition(loc, report.Composition) + "\n" + body
}

func reportBody(loc Localizer, report roll.Report) string {
	lines := make([]string, 0, len(report.Groups)+4)
	for _, group := range report.Groups {
		lines = append(lines, groupLine(group))
	}
	lines = append(lines, selectionLines(loc, report)...)
	lines = append(lines, localize(loc, keyHitches, report.Hitches))
	if len(report.Rejected) > 0 {
		tokens := make([]string, 0, len(report.Rejected))
		for _, rejected := range report.Rejected {
			tokens = append(tokens, rejected.Token)
		}
		lines = append(lines, localize(loc, keyIgnored, strings.Join(tokens, ", ")))
	}
	return strings.Join(lines, "\n")
}

// Samples renders several reports of the same pool: the shared composition
// once, each roll numbered, then the shared seed.
func Samples(loc Localizer, reports []roll.Report) string {
	if len(reports) == 1 {
		return Report(loc, reports[0])
	}
	blocks := make([]string, 0, len(reports)+2)
	if len(reports) > 0 && len(reports[0].Composition.Groups) > 0 {
		blocks = append(blocks, Composition(loc, reports[0].Composition))
	}
	for i, report := range reports {
		blocks = append(blocks, localize(loc, keySample, i+1)+"\n"+reportBody(loc, report))
	}
	if len(reports) > 0 {
		blocks = append(blocks, localize(loc, keySeed, strconv.FormatInt(reports[0].Seed, 10)))
	}
	return strings.Join(blocks, "\n\n")
}

// Composition renders the confirmation of a pool Add.
func Composition(loc Localizer, composition dice.Composition) string {
	if len(composition.Groups) == 0 {
		return localizeWithFallback(loc, keyPoolEmpty, defaultPoolEmpty)
	}
	return localize(loc, keyPoolAdded, listDice(composition.Groups), listDice(composition.Added))
}

func groupLine(group roll.Group) string {
	var b strings.Builder
	b.WriteString(group.Size.String())
	b.WriteString(" : ")
	for i, face := range group.Faces {
		if i > 0 {
			b.WriteByte(' ')
		}
		value := strconv.Itoa(face.Value)
		if face.Hitch {
			value = "(" + value + ")"
		}
		b.WriteString(value)
	}
	return b.String()
}

func selectionLines(loc Localizer, report roll.Report) []string {
	selection := report.Selection
	if selection == nil {
		return nil
	}
	var checks roll.Checks
	if report.Checks != nil {
		checks = *report.Checks
	}

	switch selection.Outcome {
	case dice.OutcomeBotch:
		return []string{localizeWithFallback(loc, keyBotch, defaultBotch)}
	case dice.OutcomeTotalOnly:
		only := selection.Only
		lines := []string{localize(loc, keyOnlyTotal, only.Total, addends(only), only.Effect.String())}
		return appendCheck(loc, lines, report.Checks != nil, checks.Only)
	default:
		best := selection.BestTotal
		lines := []string{localize(loc, keyBestTotal, best.Total, addends(best), best.Effect.String())}
		lines = appendCheck(loc, lines, report.Checks != nil, checks.BestTotal)
		effect := selection.BestEffect
		lines = append(lines, localize(loc, keyBestEffect, effect.Effect.String(), effect.Total, addends(effect)))
		return appendCheck(loc, lines, report.Checks != nil, checks.BestEffect)
	}
}

func appendCheck(loc Localizer, lines []string, present bool, result check.Result) []string {
	if !present {
		return lines
	}
	var line string
	switch {
	case result.Heroic:
		line = localize(loc, keyCheckHeroic, result.Difficulty, result.Margin)
	case result.Success:
		line = localize(loc, keyCheckSuccess, result.Difficulty, result.Margin)
	default:
		line = localize(loc, keyCheckFailure, result.Difficulty, -result.Margin)
	}
	return append(lines, "  "+line)
}

func addends(pick dice.Pick) string {
	faces := make([]string, 0, len(pick.Addends))
	for _, addend := range pick.Addends {
		faces = append(faces, strconv.Itoa(addend.Face))
	}
	return strings.Join(faces, " + ")
}

func listDice(groups []dice.Die) string {
	names := make([]string, 0, len(groups))
	for _, group := range groups {
		names = append(names, group.String())
	}
	return strings.Join(names, ", ")
}

func localize(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if asString, ok := key.(string); ok {
			return asString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

func localizeWithFallback(loc Localizer, key string, fallback string) string {
	value := strings.TrimSpace(localize(loc, key))
	if value == "" || value == key {
		return fallback
	}
	return value
}
