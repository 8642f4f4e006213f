package roll

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"d6", "2d8"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Keep != 2 || cfg.HitchOn != 1 || cfg.MaxDice != 30 {
		t.Fatalf("unexpected rule defaults: %+v", cfg)
	}
	if !cfg.SuggestBest {
		t.Fatal("expected suggestions on by default")
	}
	if cfg.Samples != 1 || cfg.Locale != "en-US" || cfg.Seed != nil {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Dice != "d6 2d8" {
		t.Fatalf("expected dice from args, got %q", cfg.Dice)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CORTEX_KEEP", "4")
	t.Setenv("CORTEX_LANG", "pt-BR")

	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	args := []string{"-keep", "3", "-hitch-on", "2", "-best=false", "-difficulty", "7", "-seed", "99", "-n", "10", "d10", "d12"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Keep != 3 {
		t.Fatalf("expected flag to beat env, got keep %d", cfg.Keep)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfg.Locale)
	}
	if cfg.HitchOn != 2 || cfg.SuggestBest || cfg.Difficulty != 7 || cfg.Samples != 10 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Seed == nil || *cfg.Seed != 99 {
		t.Fatalf("expected seed 99, got %v", cfg.Seed)
	}
	if cfg.Dice != "d10 d12" {
		t.Fatalf("expected dice from args, got %q", cfg.Dice)
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	tests := []struct {
		name string
		args []string
	}{
		{"missing dice", nil},
		{"bad seed", []string{"-seed", "soon", "d6"}},
		{"zero rolls", []string{"-n", "0", "d6"}},
		{"too many rolls", []string{"-n", "101", "d6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("roll", flag.ContinueOnError)
			fs.SetOutput(&bytes.Buffer{})
			if _, err := ParseConfig(fs, tt.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseConfigRejectsTooManySamplesFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CORTEX_SAMPLES", "1000")
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"d6"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunSeededRollIsRepeatable(t *testing.T) {
	seed := int64(1234)
	cfg := Config{Keep: 2, HitchOn: 1, MaxDice: 30, SuggestBest: true, Samples: 2, Locale: "en-US", Seed: &seed, Dice: "d6 2d8 d12"}

	var first, second bytes.Buffer
	if err := Run(context.Background(), cfg, &first); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := Run(context.Background(), cfg, &second); err != nil {
		t.Fatalf("run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("seeded output differs:\n%s\n---\n%s", first.String(), second.String())
	}
	for _, want := range []string{"Roll #1", "Roll #2", "D6 : ", "D8 : ", "D12 : ", "Hitches: ", "Seed: 1234"} {
		if !strings.Contains(first.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, first.String())
		}
	}
}

func TestRunLocalizesErrors(t *testing.T) {
	cfg := Config{Keep: 2, HitchOn: 1, MaxDice: 30, Locale: "pt-BR", Dice: "d20"}
	err := Run(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Nenhum dado válido foi encontrado no comando." {
		t.Fatalf("error = %q", err.Error())
	}
}
