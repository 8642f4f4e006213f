// Package roll runs Cortex dice rolls for command and tool entry points.
//
// It turns a line of dice notation and a set of table rules into a Report:
// the per-die faces with hitches flagged, the hitch count, the botch flag and,
// when requested, the best Total and Effect selection with optional difficulty
// checks. Rendering the report as text lives in the render subpackage.
package roll

import (
	"context"
	"log"
	"strconv"

	"github.com/louisbranch/cortex-dice/internal/core/check"
	"github.com/louisbranch/cortex-dice/internal/core/dice"
	apperrors "github.com/louisbranch/cortex-dice/internal/platform/errors"
	"github.com/louisbranch/cortex-dice/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/cortex-dice/internal/services/roll"

// MaxSamples bounds how many times one request may roll its pool.
const MaxSamples = 100

// Request describes one roll.
type Request struct {
	// Dice is a line of dice notation such as "d6 2d8 d12".
	Dice  string
	Rules Rules
	// Seed replays a previous roll when set; otherwise a fresh seed is drawn.
	Seed *int64
	// Samples rolls the same pool this many times; values below 1 mean once.
	// More than MaxSamples is rejected.
	Samples int
}

// Face is one rolled face.
type Face struct {
	Value int
	Hitch bool
}

// Group is the roll of one die group.
type Group struct {
	Size  dice.Size
	Faces []Face
}

// Checks holds the difficulty check for each suggested Total.
type Checks struct {
	Only       check.Result
	BestTotal  check.Result
	BestEffect check.Result
}

// Report is everything a formatter needs to describe one roll.
type Report struct {
	Pool string
	// Composition is the pool as it was built, before any roll.
	Composition dice.Composition
	Groups      []Group
	Rejected    []Rejection
	Seed        int64
	Hitches     int
	Botch       bool
	Selection   *dice.Selection
	Checks      *Checks
}

// Service rolls dice pools.
type Service struct {
	tracer    trace.Tracer
	seeder    func() (int64, error)
	newSource func(seed int64) dice.Source
}

// Option configures a Service.
type Option func(*Service)

// WithSeeder replaces the seed generator used when a request has no seed.
func WithSeeder(seeder func() (int64, error)) Option {
	return func(s *Service) {
		if seeder != nil {
			s.seeder = seeder
		}
	}
}

// WithSourceFactory replaces how a seed becomes a dice source.
func WithSourceFactory(factory func(seed int64) dice.Source) Option {
	return func(s *Service) {
		if factory != nil {
			s.newSource = factory
		}
	}
}

// WithTracerProvider traces rolls through tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewService returns a Service that traces through the global tracer provider.
func NewService(opts ...Option) *Service {
	s := &Service{
		tracer:    otel.Tracer(tracerName),
		seeder:    random.NewSeed,
		newSource: dice.NewSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Roll rolls the requested pool once.
func (s *Service) Roll(ctx context.Context, req Request) (Report, error) {
	req.Samples = 1
	reports, err := s.RollSamples(ctx, req)
	if err != nil {
		return Report{}, err
	}
	return reports[0], nil
}

// RollSamples builds the requested pool and rolls it req.Samples times. All
// samples share one source, so a seeded request replays the whole series.
func (s *Service) RollSamples(ctx context.Context, req Request) (reports []Report, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := s.tracer.Start(ctx, "roll.Service.Roll")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	rules := req.Rules
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if req.Samples > MaxSamples {
		return nil, apperrors.WithMetadata(apperrors.CodeRulesInvalidSamples, "samples out of range: "+strconv.Itoa(req.Samples), map[string]string{"Limit": strconv.Itoa(MaxSamples)})
	}

	parsed, err := Parse(req.Dice)
	if err != nil {
		return nil, err
	}
	for _, rejected := range parsed.Rejected {
		log.Printf("roll: ignoring %q: %v", rejected.Token, rejected.Err)
	}

	seed, err := s.seed(req.Seed)
	if err != nil {
		return nil, err
	}

	pool := dice.NewPool(dice.WithSource(s.newSource(seed)), dice.WithMaxDice(rules.MaxDice))
	composition, err := pool.Add(parsed.Dice...)
	if err != nil {
		return nil, domainError(err, rules.MaxDice)
	}

	samples := req.Samples
	if samples < 1 {
		samples = 1
	}
	span.SetAttributes(
		attribute.String("cortex.pool", pool.String()),
		attribute.Int("cortex.dice", pool.Count()),
		attribute.Int("cortex.keep", rules.Keep),
		attribute.Int("cortex.hitch_on", rules.HitchOn),
		attribute.Int("cortex.samples", samples),
		attribute.Int64("cortex.seed", seed),
	)

	reports = make([]Report, 0, samples)
	for i := 0; i < samples; i++ {
		pool.Roll()
		report := buildReport(pool, rules)
		report.Composition = composition
		report.Rejected = parsed.Rejected
		report.Seed = seed
		reports = append(reports, report)
	}

	last := reports[len(reports)-1]
	span.SetAttributes(
		attribute.Int("cortex.hitches", last.Hitches),
		attribute.Bool("cortex.botch", last.Botch),
	)
	if last.Selection != nil {
		span.SetAttributes(attribute.String("cortex.outcome", last.Selection.Outcome.String()))
	}
	return reports, nil
}

// Compose adds dice to an empty pool under rules and reports the resulting
// composition without rolling.
func Compose(batch []dice.Die, rules Rules) (dice.Composition, error) {
	if err := rules.Validate(); err != nil {
		return dice.Composition{}, err
	}
	pool := dice.NewPool(dice.WithMaxDice(rules.MaxDice))
	composition, err := pool.Add(batch...)
	if err != nil {
		return dice.Composition{}, domainError(err, rules.MaxDice)
	}
	return composition, nil
}

func (s *Service) seed(requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	seed, err := s.seeder()
	if err != nil {
		return 0, domainError(err, 0)
	}
	return seed, nil
}

func buildReport(pool *dice.Pool, rules Rules) Report {
	report := Report{
		Pool:    pool.String(),
		Hitches: pool.HitchCount(rules.HitchOn),
		Botch:   pool.IsBotch(),
	}
	for _, group := range pool.Groups() {
		faces := make([]Face, 0, len(group.Values))
		for _, value := range group.Values {
			faces = append(faces, Face{Value: value, Hitch: dice.IsHitch(value, rules.HitchOn)})
		}
		report.Groups = append(report.Groups, Group{Size: group.Size, Faces: faces})
	}

	if !rules.SuggestBest {
		return report
	}
	selection := pool.SelectBest(rules.Keep, rules.HitchOn)
	report.Selection = &selection

	if rules.Difficulty > 0 && selection.Outcome != dice.OutcomeBotch {
		report.Checks = &Checks{
			Only:       check.Check(selection.Only.Total, rules.Difficulty),
			BestTotal:  check.Check(selection.BestTotal.Total, rules.Difficulty),
			BestEffect: check.Check(selection.BestEffect.Total, rules.Difficulty),
		}
	}
	return report
}
