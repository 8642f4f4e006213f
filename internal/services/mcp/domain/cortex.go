package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/cortex-dice/internal/core/check"
	"github.com/louisbranch/cortex-dice/internal/core/dice"
	apperrors "github.com/louisbranch/cortex-dice/internal/platform/errors"
	"github.com/louisbranch/cortex-dice/internal/services/roll"
	"github.com/louisbranch/cortex-dice/internal/services/roll/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Roller rolls one Cortex dice pool.
type Roller interface {
	Roll(ctx context.Context, req roll.Request) (roll.Report, error)
}

// Settings are the server-wide defaults a tool call may override.
type Settings struct {
	Rules  roll.Rules
	Locale string
}

// CortexRollInput represents the MCP tool input for a Cortex roll.
type CortexRollInput struct {
	Dice        string `json:"dice" jsonschema:"dice notation separated by spaces, for example d6 2d8 d12"`
	Keep        *int   `json:"keep,omitempty" jsonschema:"number of dice summed into a total (default 2)"`
	HitchOn     *int   `json:"hitch_on,omitempty" jsonschema:"highest face that counts as a hitch (default 1)"`
	Difficulty  *int   `json:"difficulty,omitempty" jsonschema:"optional difficulty each suggested total is checked against"`
	SuggestBest *bool  `json:"suggest_best,omitempty" jsonschema:"include the best total and effect suggestions (default true)"`
	Seed        *int64 `json:"seed,omitempty" jsonschema:"optional seed that replays a previous roll"`
	Locale      string `json:"locale,omitempty" jsonschema:"locale for the rendered text (en-US or pt-BR)"`
}

// CortexFace is one rolled face.
type CortexFace struct {
	Value int  `json:"value" jsonschema:"rolled face"`
	Hitch bool `json:"hitch" jsonschema:"true when the face is a hitch"`
}

// CortexGroup is the roll of one die group.
type CortexGroup struct {
	Size  string       `json:"size" jsonschema:"die size, for example D8"`
	Faces []CortexFace `json:"faces" jsonschema:"rolled faces in roll order"`
}

// CortexAddend is one die summed into a total.
type CortexAddend struct {
	Face int    `json:"face" jsonschema:"rolled face"`
	Size string `json:"size" jsonschema:"die size the face came from"`
}

// CortexCheck is a total compared against the requested difficulty.
type CortexCheck struct {
	Difficulty int  `json:"difficulty" jsonschema:"difficulty the total was checked against"`
	Success    bool `json:"success" jsonschema:"true when the total beats the difficulty"`
	Heroic     bool `json:"heroic" jsonschema:"true when the total beats the difficulty by 5 or more"`
	Margin     int  `json:"margin" jsonschema:"total minus difficulty"`
}

// CortexPick is one suggested total and effect die.
type CortexPick struct {
	Total   int            `json:"total" jsonschema:"sum of the kept faces"`
	Addends []CortexAddend `json:"addends,omitempty" jsonschema:"faces summed into the total"`
	Effect  string         `json:"effect" jsonschema:"effect die size"`
	Check   *CortexCheck   `json:"check,omitempty" jsonschema:"difficulty check for this total"`
}

// CortexRejection is a token dropped from the dice line.
type CortexRejection struct {
	Token string `json:"token" jsonschema:"token as written"`
	Error string `json:"error" jsonschema:"why the token is not a die"`
}

// CortexRollResult represents the MCP tool output for a Cortex roll.
type CortexRollResult struct {
	Pool        string            `json:"pool" jsonschema:"pool composition, for example D6, 2D8, D12"`
	Composition string            `json:"composition,omitempty" jsonschema:"pool as built from the input, for example D6, 2D8 (added D6, D8, D8)"`
	Groups      []CortexGroup     `json:"groups" jsonschema:"rolled faces per die group"`
	Hitches     int               `json:"hitches" jsonschema:"number of hitches rolled"`
	Botch       bool              `json:"botch" jsonschema:"true when every die rolled a 1"`
	Outcome     string            `json:"outcome,omitempty" jsonschema:"BOTCH, TOTAL_ONLY or TOTAL_AND_EFFECT"`
	Only        *CortexPick       `json:"only,omitempty" jsonschema:"the only total when too few dice are eligible"`
	BestTotal   *CortexPick       `json:"best_total,omitempty" jsonschema:"best total first suggestion"`
	BestEffect  *CortexPick       `json:"best_effect,omitempty" jsonschema:"best effect first suggestion"`
	Rejected    []CortexRejection `json:"rejected,omitempty" jsonschema:"tokens ignored from the dice line"`
	Seed        int64             `json:"seed" jsonschema:"seed that replays this roll"`
	Text        string            `json:"text" jsonschema:"roll rendered as chat text"`
}

// CortexParseInput represents the MCP tool input for parsing dice notation.
type CortexParseInput struct {
	Dice   string `json:"dice" jsonschema:"dice notation separated by spaces"`
	Locale string `json:"locale,omitempty" jsonschema:"locale for error messages (en-US or pt-BR)"`
}

// CortexDie is one parsed die group.
type CortexDie struct {
	Notation string `json:"notation" jsonschema:"normalized notation, for example 2D8"`
	Size     string `json:"size" jsonschema:"die size"`
	Qty      int    `json:"qty" jsonschema:"number of dice"`
}

// CortexParseResult represents the MCP tool output for parsing dice notation.
type CortexParseResult struct {
	Dice        []CortexDie       `json:"dice,omitempty" jsonschema:"valid die groups in input order"`
	Rejected    []CortexRejection `json:"rejected,omitempty" jsonschema:"tokens that are not valid dice"`
	Composition string            `json:"composition,omitempty" jsonschema:"pool the valid dice would build"`
	PoolError   string            `json:"pool_error,omitempty" jsonschema:"why the valid dice cannot form one pool"`
}

// CortexRulesInput represents the MCP tool input for ruleset metadata.
type CortexRulesInput struct{}

// CortexRulesResult represents the MCP tool output for ruleset metadata.
type CortexRulesResult struct {
	System         string   `json:"system" jsonschema:"game system name"`
	Sizes          []string `json:"sizes" jsonschema:"supported die sizes"`
	Keep           int      `json:"keep" jsonschema:"default number of dice summed into a total"`
	HitchOn        int      `json:"hitch_on" jsonschema:"default highest face counted as a hitch"`
	MaxDice        int      `json:"max_dice" jsonschema:"largest pool accepted by this server"`
	HitchRule      string   `json:"hitch_rule" jsonschema:"hitch rule"`
	BotchRule      string   `json:"botch_rule" jsonschema:"botch rule"`
	EffectRule     string   `json:"effect_rule" jsonschema:"effect die rule"`
	DifficultyRule string   `json:"difficulty_rule" jsonschema:"difficulty handling rule"`
	Strategies     []string `json:"strategies" jsonschema:"suggestion strategies"`
	Outcomes       []string `json:"outcomes" jsonschema:"supported outcome enums"`
}

// CortexRollTool defines the MCP tool schema for Cortex rolls.
func CortexRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cortex_roll",
		Description: "Rolls a Cortex dice pool and suggests the best total and effect",
	}
}

// CortexParseTool defines the MCP tool schema for dice notation parsing.
func CortexParseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cortex_parse",
		Description: "Parses Cortex dice notation without rolling",
	}
}

// CortexRulesTool defines the MCP tool schema for ruleset metadata.
func CortexRulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cortex_rules",
		Description: "Describes the Cortex dice pool semantics",
	}
}

// CortexRollHandler rolls a pool with the server defaults overridden by the
// input. Domain failures are returned as localized errors.
func CortexRollHandler(roller Roller, settings Settings) mcp.ToolHandlerFor[CortexRollInput, CortexRollResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CortexRollInput) (*mcp.CallToolResult, CortexRollResult, error) {
		if roller == nil {
			return nil, CortexRollResult{}, errors.New("roller is not configured")
		}
		locale := pickLocale(input.Locale, settings.Locale)

		rules := settings.Rules
		if input.Keep != nil {
			rules.Keep = *input.Keep
		}
		if input.HitchOn != nil {
			rules.HitchOn = *input.HitchOn
		}
		if input.Difficulty != nil {
			rules.Difficulty = *input.Difficulty
		}
		if input.SuggestBest != nil {
			rules.SuggestBest = *input.SuggestBest
		}

		report, err := roller.Roll(ctx, roll.Request{Dice: input.Dice, Rules: rules, Seed: input.Seed})
		if err != nil {
			return nil, CortexRollResult{}, errors.New(apperrors.LocalizedMessage(err, locale))
		}

		result := rollResult(report, locale)
		printer := render.Printer(locale)
		result.Composition = render.Composition(printer, report.Composition)
		result.Text = render.Report(printer, report)
		return textResult(result.Text), result, nil
	}
}

// CortexParseHandler parses each token strictly and reports why rejected
// tokens are not dice.
func CortexParseHandler(settings Settings) mcp.ToolHandlerFor[CortexParseInput, CortexParseResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input CortexParseInput) (*mcp.CallToolResult, CortexParseResult, error) {
		locale := pickLocale(input.Locale, settings.Locale)
		tokens := strings.Fields(input.Dice)
		if len(tokens) == 0 {
			_, err := roll.Parse(input.Dice)
			return nil, CortexParseResult{}, errors.New(apperrors.LocalizedMessage(err, locale))
		}

		result := CortexParseResult{}
		batch := make([]dice.Die, 0, len(tokens))
		for _, token := range tokens {
			die, err := roll.ParseDie(token)
			if err != nil {
				result.Rejected = append(result.Rejected, CortexRejection{
					Token: token,
					Error: apperrors.LocalizedMessage(err, locale),
				})
				continue
			}
			batch = append(batch, die)
			result.Dice = append(result.Dice, CortexDie{
				Notation: die.String(),
				Size:     die.Size.String(),
				Qty:      die.Qty,
			})
		}

		if len(batch) > 0 {
			composition, err := roll.Compose(batch, settings.Rules)
			if err != nil {
				result.PoolError = apperrors.LocalizedMessage(err, locale)
			} else {
				result.Composition = render.Composition(render.Printer(locale), composition)
			}
		}

		text := result.Composition
		if text == "" {
			notations := make([]string, 0, len(result.Dice))
			for _, die := range result.Dice {
				notations = append(notations, die.Notation)
			}
			text = strings.Join(notations, ", ")
		}
		return textResult(text), result, nil
	}
}

// CortexRulesHandler returns static ruleset metadata.
func CortexRulesHandler(settings Settings) mcp.ToolHandlerFor[CortexRulesInput, CortexRulesResult] {
	return func(context.Context, *mcp.CallToolRequest, CortexRulesInput) (*mcp.CallToolResult, CortexRulesResult, error) {
		sizes := make([]string, 0, len(dice.Sizes))
		for _, size := range dice.Sizes {
			sizes = append(sizes, size.String())
		}
		return nil, CortexRulesResult{
			System:         "Cortex",
			Sizes:          sizes,
			Keep:           settings.Rules.Keep,
			HitchOn:        settings.Rules.HitchOn,
			MaxDice:        settings.Rules.MaxDice,
			HitchRule:      "a face at or below hitch_on is a hitch and cannot be kept or chosen as effect",
			BotchRule:      "every die in the pool rolled a natural 1",
			EffectRule:     "best total first takes the largest die among the kept faces; best effect first sets aside the lowest face of the largest die rolled; D4 when too few dice are eligible",
			DifficultyRule: "a total must beat the difficulty; ties fail; beating it by 5 or more is heroic",
			Strategies:     []string{"BEST_TOTAL_FIRST", "BEST_EFFECT_FIRST"},
			Outcomes:       []string{outcomeName(dice.OutcomeBotch), outcomeName(dice.OutcomeTotalOnly), outcomeName(dice.OutcomeTotalAndEffect)},
		}, nil
	}
}

func rollResult(report roll.Report, locale string) CortexRollResult {
	result := CortexRollResult{
		Pool:    report.Pool,
		Hitches: report.Hitches,
		Botch:   report.Botch,
		Seed:    report.Seed,
		Groups:  make([]CortexGroup, 0, len(report.Groups)),
	}
	for _, group := range report.Groups {
		faces := make([]CortexFace, 0, len(group.Faces))
		for _, face := range group.Faces {
			faces = append(faces, CortexFace{Value: face.Value, Hitch: face.Hitch})
		}
		result.Groups = append(result.Groups, CortexGroup{Size: group.Size.String(), Faces: faces})
	}
	for _, rejected := range report.Rejected {
		result.Rejected = append(result.Rejected, CortexRejection{
			Token: rejected.Token,
			Error: apperrors.LocalizedMessage(rejected.Err, locale),
		})
	}

	selection := report.Selection
	if selection == nil {
		return result
	}
	result.Outcome = outcomeName(selection.Outcome)
	var checks roll.Checks
	if report.Checks != nil {
		checks = *report.Checks
	}
	withCheck := report.Checks != nil

	switch selection.Outcome {
	case dice.OutcomeTotalOnly:
		result.Only = pickResult(selection.Only, withCheck, checks.Only)
	case dice.OutcomeTotalAndEffect:
		result.BestTotal = pickResult(selection.BestTotal, withCheck, checks.BestTotal)
		result.BestEffect = pickResult(selection.BestEffect, withCheck, checks.BestEffect)
	}
	return result
}

func pickResult(pick dice.Pick, withCheck bool, result check.Result) *CortexPick {
	out := &CortexPick{Total: pick.Total, Effect: pick.Effect.String()}
	for _, addend := range pick.Addends {
		out.Addends = append(out.Addends, CortexAddend{Face: addend.Face, Size: addend.Size.String()})
	}
	if withCheck {
		out.Check = &CortexCheck{
			Difficulty: result.Difficulty,
			Success:    result.Success,
			Heroic:     result.Heroic,
			Margin:     result.Margin,
		}
	}
	return out
}

func outcomeName(outcome dice.Outcome) string {
	switch outcome {
	case dice.OutcomeBotch:
		return "BOTCH"
	case dice.OutcomeTotalOnly:
		return "TOTAL_ONLY"
	case dice.OutcomeTotalAndEffect:
		return "TOTAL_AND_EFFECT"
	default:
		return "OUTCOME_UNSPECIFIED"
	}
}

func pickLocale(requested, fallback string) string {
	if value := strings.TrimSpace(requested); value != "" {
		return value
	}
	return fallback
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
