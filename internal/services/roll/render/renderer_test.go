package render

import (
	"fmt"
	"testing"

	"github.com/louisbranch/cortex-dice/internal/core/check"
	"github.com/louisbranch/cortex-dice/internal/core/dice"
	"github.com/louisbranch/cortex-dice/internal/services/roll"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func scenarioReport() roll.Report {
	return roll.Report{
		Pool: "D6, 2D8, D12",
		Groups: []roll.Group{
			{Size: dice.D6, Faces: []roll.Face{{Value: 3}}},
			{Size: dice.D8, Faces: []roll.Face{{Value: 5}, {Value: 7}}},
			{Size: dice.D12, Faces: []roll.Face{{Value: 1, Hitch: true}}},
		},
		Hitches: 1,
		Selection: &dice.Selection{
			Outcome: dice.OutcomeTotalAndEffect,
			Hitches: 1,
			BestTotal: dice.Pick{
				Total:   12,
				Addends: []dice.Result{{Face: 7, Size: dice.D8}, {Face: 5, Size: dice.D8}},
				Effect:  dice.D8,
			},
			BestEffect: dice.Pick{
				Total:   10,
				Addends: []dice.Result{{Face: 7, Size: dice.D8}, {Face: 3, Size: dice.D6}},
				Effect:  dice.D8,
			},
		},
	}
}

func TestReportWithRealPrinterUsesRegisteredCatalog(t *testing.T) {
	t.Parallel()

	got := Report(message.NewPrinter(language.AmericanEnglish), scenarioReport())
	want := "D6 : 3\n" +
		"D8 : 5 7\n" +
		"D12 : (1)\n" +
		"Best Total: 12 (7 + 5) with Effect: D8\n" +
		"Best Effect: D8 with Total: 10 (7 + 3)\n" +
		"Hitches: 1"
	if got != want {
		t.Fatalf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportPortuguese(t *testing.T) {
	t.Parallel()

	got := Report(Printer("pt-BR"), scenarioReport())
	want := "D6 : 3\n" +
		"D8 : 5 7\n" +
		"D12 : (1)\n" +
		"Melhor Total: 12 (7 + 5) com Efeito: D8\n" +
		"Melhor Efeito: D8 com Total: 10 (7 + 3)\n" +
		"Complicações: 1"
	if got != want {
		t.Fatalf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportBotch(t *testing.T) {
	t.Parallel()

	report := roll.Report{
		Groups: []roll.Group{
			{Size: dice.D4, Faces: []roll.Face{{Value: 1, Hitch: true}}},
			{Size: dice.D8, Faces: []roll.Face{{Value: 1, Hitch: true}}},
		},
		Hitches:   2,
		Botch:     true,
		Selection: &dice.Selection{Outcome: dice.OutcomeBotch, Hitches: 2},
	}

	got := Report(fakeLocalizer{values: map[string]string{keyHitches: "Hitches: %d"}}, report)
	want := "D4 : (1)\nD8 : (1)\nBotch!\nHitches: 2"
	if got != want {
		t.Fatalf("Report() = %q, want %q", got, want)
	}
}

func TestReportOnlyTotalWithCheck(t *testing.T) {
	t.Parallel()

	report := roll.Report{
		Groups: []roll.Group{
			{Size: dice.D6, Faces: []roll.Face{{Value: 4}}},
			{Size: dice.D10, Faces: []roll.Face{{Value: 1, Hitch: true}}},
		},
		Hitches: 1,
		Selection: &dice.Selection{
			Outcome: dice.OutcomeTotalOnly,
			Hitches: 1,
			Only: dice.Pick{
				Total:   4,
				Addends: []dice.Result{{Face: 4, Size: dice.D6}},
				Effect:  dice.D4,
			},
		},
		Checks: &roll.Checks{Only: check.Check(4, 6)},
	}

	got := Report(message.NewPrinter(language.English), report)
	want := "D6 : 4\n" +
		"D10 : (1)\n" +
		"Only Total: 4 (4) with Effect: D4\n" +
		"  Misses difficulty 6 by 2\n" +
		"Hitches: 1"
	if got != want {
		t.Fatalf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportChecksEachPick(t *testing.T) {
	t.Parallel()

	report := scenarioReport()
	report.Checks = &roll.Checks{
		BestTotal:  check.Check(12, 7),
		BestEffect: check.Check(10, 7),
	}

	got := Report(message.NewPrinter(language.English), report)
	want := "D6 : 3\n" +
		"D8 : 5 7\n" +
		"D12 : (1)\n" +
		"Best Total: 12 (7 + 5) with Effect: D8\n" +
		"  Heroic success over difficulty 7 by 5\n" +
		"Best Effect: D8 with Total: 10 (7 + 3)\n" +
		"  Beats difficulty 7 by 3\n" +
		"Hitches: 1"
	if got != want {
		t.Fatalf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestReportWithoutSelectionListsIgnoredTokens(t *testing.T) {
	t.Parallel()

	report := roll.Report{
		Groups:   []roll.Group{{Size: dice.D12, Faces: []roll.Face{{Value: 9}, {Value: 2}}}},
		Rejected: []roll.Rejection{{Token: "d20"}, {Token: "hello"}},
	}

	got := Report(message.NewPrinter(language.English), report)
	want := "D12 : 9 2\nHitches: 0\nIgnored: d20, hello"
	if got != want {
		t.Fatalf("Report() = %q, want %q", got, want)
	}
}

func TestSamples(t *testing.T) {
	t.Parallel()

	first := roll.Report{Groups: []roll.Group{{Size: dice.D8, Faces: []roll.Face{{Value: 6}}}}, Seed: 1234567}
	second := roll.Report{Groups: []roll.Group{{Size: dice.D8, Faces: []roll.Face{{Value: 2}}}}, Seed: 1234567}

	got := Samples(message.NewPrinter(language.English), []roll.Report{first, second})
	want := "Roll #1\nD8 : 6\nHitches: 0\n\n" +
		"Roll #2\nD8 : 2\nHitches: 0\n\n" +
		"Seed: 1234567"
	if got != want {
		t.Fatalf("Samples() =\n%s\nwant\n%s", got, want)
	}

	if single := Samples(message.NewPrinter(language.English), []roll.Report{first}); single != "D8 : 6\nHitches: 0" {
		t.Fatalf("Samples() single = %q", single)
	}
}

func TestReportLeadsWithComposition(t *testing.T) {
	t.Parallel()

	report := roll.Report{
		Composition: dice.Composition{
			Groups: []dice.Die{{Size: dice.D6, Qty: 2}},
			Added:  []dice.Die{{Size: dice.D6, Qty: 1}, {Size: dice.D6, Qty: 1}},
		},
		Groups: []roll.Group{{Size: dice.D6, Faces: []roll.Face{{Value: 4}, {Value: 5}}}},
	}

	got := Report(message.NewPrinter(language.English), report)
	want := "2D6 (added D6, D6)\nD6 : 4 5\nHitches: 0"
	if got != want {
		t.Fatalf("Report() = %q, want %q", got, want)
	}
}

func TestSamplesShowCompositionOnce(t *testing.T) {
	t.Parallel()

	composition := dice.Composition{
		Groups: []dice.Die{{Size: dice.D8, Qty: 1}},
		Added:  []dice.Die{{Size: dice.D8, Qty: 1}},
	}
	first := roll.Report{Composition: composition, Groups: []roll.Group{{Size: dice.D8, Faces: []roll.Face{{Value: 6}}}}, Seed: 9}
	second := roll.Report{Composition: composition, Groups: []roll.Group{{Size: dice.D8, Faces: []roll.Face{{Value: 2}}}}, Seed: 9}

	got := Samples(message.NewPrinter(language.English), []roll.Report{first, second})
	want := "D8 (added D8)\n\n" +
		"Roll #1\nD8 : 6\nHitches: 0\n\n" +
		"Roll #2\nD8 : 2\nHitches: 0\n\n" +
		"Seed: 9"
	if got != want {
		t.Fatalf("Samples() =\n%s\nwant\n%s", got, want)
	}
}

func TestComposition(t *testing.T) {
	t.Parallel()

	pool := dice.NewPool()
	composition, err := pool.Add(dice.Die{Size: dice.D6, Qty: 1}, dice.Die{Size: dice.D8, Qty: 2})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	printer := message.NewPrinter(language.English)
	if got := Composition(printer, composition); got != "D6, 2D8 (added D6, 2D8)" {
		t.Fatalf("Composition() = %q", got)
	}
	if got := Composition(printer, dice.Composition{}); got != "The pool is empty." {
		t.Fatalf("Composition(empty) = %q", got)
	}
	if got := Composition(nil, dice.Composition{}); got != defaultPoolEmpty {
		t.Fatalf("Composition(nil localizer) = %q", got)
	}
}

func TestTag(t *testing.T) {
	t.Parallel()

	ptBR := language.MustParse("pt-BR")
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en-US", language.English},
		{"pt-BR", ptBR},
		{"pt_BR", ptBR},
		{"pt", ptBR},
		{"ja-JP", language.English},
		{"not a locale!", language.English},
	}

	for _, tt := range tests {
		if got := Tag(tt.locale); got != tt.want {
			t.Errorf("Tag(%q) = %s, want %s", tt.locale, got, tt.want)
		}
	}
}

type fakeLocalizer struct {
	values map[string]string
}

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	asString, ok := key.(string)
	if !ok {
		return ""
	}
	template := f.values[asString]
	if template == "" {
		return asString
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}
