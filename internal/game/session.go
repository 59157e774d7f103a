package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spacehole-rogue/supertrek/internal/world"
)

// Outcome is the state of the mission.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

const logSize = 50

// Session is one game. It owns all simulation state and is not safe for
// concurrent use.
type Session struct {
	ID    uuid.UUID
	Rules world.Rules
	Log   *MessageLog

	rng    Rand
	logger *slog.Logger

	galaxy   *Galaxy
	quadrant *Quadrant
	ship     Ship
	outcome  Outcome

	hostilesLeft  int
	hostilesStart int
	basesLeft     int
}

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the session's random source for a reproducible game.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.rng = NewRand(seed) }
}

// WithRand installs a custom random source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithRules overrides the default game tuning.
func WithRules(r world.Rules) Option {
	return func(s *Session) { s.Rules = r }
}

// WithLogger sets the base logger. Session fields are appended to it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session and starts the first game.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:    uuid.New(),
		Rules: world.DefaultRules(),
		Log:   NewMessageLog(logSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(timeSeed())
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "game", "session", s.ID.String())
	s.Reset()
	return s
}

// Reset discards the current game and starts a new one: new galaxy, new
// ship position, new deadline. It returns the mission briefing.
func (s *Session) Reset() []string {
	r := s.Rules
	stardate := float64(randRange(s.rng, r.StardateMin, r.StardateMax))
	s.ship = Ship{
		Energy:           r.InitialEnergy,
		InitialEnergy:    r.InitialEnergy,
		Torpedoes:        r.InitialTorpedoes,
		InitialTorpedoes: r.InitialTorpedoes,
		Stardate:         stardate,
		StartStardate:    stardate,
		TimeLimit:        randRange(s.rng, r.TimeLimitMin, r.TimeLimitMax),
	}
	s.ship.Quadrant.X = randRange(s.rng, 1, world.Size)
	s.ship.Quadrant.Y = randRange(s.rng, 1, world.Size)
	s.ship.Sector.X = randRange(s.rng, 1, world.Size)
	s.ship.Sector.Y = randRange(s.rng, 1, world.Size)

	s.galaxy = generateGalaxy(s.rng)
	s.hostilesLeft = s.galaxy.TotalHostiles()
	s.hostilesStart = s.hostilesLeft
	s.basesLeft = s.galaxy.TotalBases()
	if s.hostilesLeft > s.ship.TimeLimit {
		s.ship.TimeLimit = s.hostilesLeft + 1
	}
	s.outcome = InProgress
	s.Log.Clear()

	s.logger.Info("new game",
		"hostiles", s.hostilesLeft,
		"bases", s.basesLeft,
		"time_limit", s.ship.TimeLimit,
		"quadrant", s.ship.Quadrant)

	var ev events
	s.enterQuadrant(&ev, s.ship.Quadrant)
	ev.add(fmt.Sprintf("DESTROY %d KLINGONS", s.hostilesLeft), MsgInfo)
	ev.add(fmt.Sprintf("%d DAYS, %d BASES", s.ship.TimeLimit, s.basesLeft), MsgInfo)
	return s.publish(&ev)
}

// EnterQuadrant moves the ship into quadrant (qx, qy), keeping its sector
// position, and rebuilds the sector grid.
func (s *Session) EnterQuadrant(qx, qy int) []string {
	return s.run("enter_quadrant", func(ev *events) error {
		c := world.Coord{X: qx, Y: qy}
		if !c.InBounds() {
			return rejectf(RejectInvalidParameter, "INVALID QUADRANT (1-8)")
		}
		s.enterQuadrant(ev, c)
		return nil
	})
}

func (s *Session) enterQuadrant(ev *events, c world.Coord) {
	s.ship.Quadrant = c
	s.ship.Docked = false
	s.galaxy.Reveal(c)
	summary := s.galaxy.Summary(c)

	q := newQuadrant(c)
	q.addShip(s.ship.Sector)
	for range summary.Hostiles {
		if at, ok := s.findEmptySector(q); ok {
			energy := float64(s.Rules.AvgHostileEnergy) * (0.5 + s.rng.Float64())
			q.addHostile(at, int(energy))
		}
	}
	if summary.Bases > 0 {
		if at, ok := s.findEmptySector(q); ok {
			q.addBase(at)
		}
	}
	for range summary.Stars {
		if at, ok := s.findEmptySector(q); ok {
			q.addStar(at)
		}
	}
	s.quadrant = q
	s.checkDocking()

	s.logger.Info("entered quadrant", "quadrant", c, "hostiles", summary.Hostiles, "bases", summary.Bases, "stars", summary.Stars)
	if summary.Hostiles > 0 {
		ev.add(fmt.Sprintf("COMBAT AREA - %d KLINGONS", summary.Hostiles), MsgWarning)
	}
	if s.ship.Docked {
		ev.add("DOCKED AT STARBASE", MsgDiscovery)
	}
}

// findEmptySector draws random sectors until one is free. Crowded quadrants
// may exhaust the attempts, in which case the entity is not placed.
func (s *Session) findEmptySector(q *Quadrant) (world.Coord, bool) {
	for range s.Rules.PlacementAttempts {
		c := world.Coord{X: randRange(s.rng, 1, world.Size)}
		c.Y = randRange(s.rng, 1, world.Size)
		if q.Grid.IsEmpty(c) {
			return c, true
		}
	}
	s.logger.Debug("placement exhausted", "quadrant", q.Coord, "attempts", s.Rules.PlacementAttempts)
	return world.Coord{}, false
}

// Navigate moves the ship along course at the given warp factor.
func (s *Session) Navigate(course, warp float64) []string {
	return s.run("navigate", func(ev *events) error {
		return s.navigate(ev, course, warp)
	})
}

// FirePhasers splits energy evenly across the living hostiles in the quadrant.
func (s *Session) FirePhasers(energy int) []string {
	return s.run("phasers", func(ev *events) error {
		return s.firePhasers(ev, energy)
	})
}

// FireTorpedo launches one photon torpedo along course.
func (s *Session) FireTorpedo(course float64) []string {
	return s.run("torpedo", func(ev *events) error {
		return s.fireTorpedo(ev, course)
	})
}

// SetShields moves energy between the main reserve and the shields.
func (s *Session) SetShields(amount int) []string {
	return s.run("shields", func(ev *events) error {
		return s.setShields(ev, amount)
	})
}

// HostilesFire lets every living hostile in the quadrant shoot at the ship.
func (s *Session) HostilesFire() []string {
	return s.run("hostiles_fire", func(ev *events) error {
		s.hostilesFire(ev)
		return nil
	})
}

// run executes one mutating command. Terminal games refuse every command.
// A rejection becomes the command's single message and changes nothing.
func (s *Session) run(name string, fn func(ev *events) error) []string {
	if s.outcome != InProgress {
		return s.reject(name, rejectf(RejectGameOver, "GAME OVER - RESET REQUIRED"))
	}

	var ev events
	if err := fn(&ev); err != nil {
		return s.reject(name, err)
	}
	s.logger.Debug("command", "command", name, "messages", len(ev.msgs))

	switch s.outcome {
	case Won:
		s.logger.Info("mission complete", "stardate", s.ship.Stardate)
		ev.add("=== MISSION SUCCESS ===", MsgDiscovery)
	case Lost:
		s.logger.Info("mission failed", "stardate", s.ship.Stardate, "hostiles_left", s.hostilesLeft)
		ev.add("=== GAME OVER ===", MsgCritical)
	}
	return s.publish(&ev)
}

func (s *Session) reject(name string, err error) []string {
	s.logger.Debug("command rejected", "command", name, "kind", KindOf(err), "reason", err.Error())
	s.Log.Add(err.Error(), MsgWarning)
	return []string{err.Error()}
}

// publish copies a command's messages into the log and returns their text.
func (s *Session) publish(ev *events) []string {
	for _, m := range ev.msgs {
		s.Log.Add(m.Text, m.Priority)
	}
	return ev.texts()
}

// Outcome reports whether the mission is in progress, won or lost.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// TimeRemaining is the number of stardates left before the deadline.
func (s *Session) TimeRemaining() float64 {
	return s.ship.TimeRemaining()
}

// Operational reports whether a ship device is undamaged.
func (s *Session) Operational(d world.Device) bool {
	return s.ship.Damage.Operational(d)
}

// Ship returns a copy of the ship's state.
func (s *Session) Ship() Ship {
	return s.ship
}

// HostilesRemaining is the galaxy-wide hostile count.
func (s *Session) HostilesRemaining() int {
	return s.hostilesLeft
}

// BasesRemaining is the galaxy-wide starbase count.
func (s *Session) BasesRemaining() int {
	return s.basesLeft
}
