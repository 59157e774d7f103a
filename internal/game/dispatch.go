package game

// CommandKind selects the action a Command performs.
type CommandKind uint8

const (
	CmdNavigate CommandKind = iota + 1
	CmdPhasers
	CmdTorpedo
	CmdShields
)

func (k CommandKind) String() string {
	switch k {
	case CmdNavigate:
		return "navigate"
	case CmdPhasers:
		return "phasers"
	case CmdTorpedo:
		return "torpedo"
	case CmdShields:
		return "shields"
	default:
		return "unknown"
	}
}

// Command is one parsed player turn. Only the fields its Kind uses are read:
// Course and Warp for navigation, Course for torpedoes, Amount for phasers
// and shields.
type Command struct {
	Kind   CommandKind
	Course float64
	Warp   float64
	Amount int
}

const weaponsTime = 0.1

// Do plays one full turn: the action, then (if the game goes on) hostile
// return fire, then the clock. Shields are reconfigured without drawing fire.
// A rejected action ends the turn with nothing else happening.
func (s *Session) Do(cmd Command) []string {
	return s.run(cmd.Kind.String(), func(ev *events) error {
		var err error
		switch cmd.Kind {
		case CmdNavigate:
			err = s.navigate(ev, cmd.Course, cmd.Warp)
		case CmdPhasers:
			err = s.firePhasers(ev, cmd.Amount)
		case CmdTorpedo:
			err = s.fireTorpedo(ev, cmd.Course)
		case CmdShields:
			err = s.setShields(ev, cmd.Amount)
		default:
			err = rejectf(RejectInvalidParameter, "UNKNOWN COMMAND")
		}
		if err != nil {
			return err
		}

		if cmd.Kind != CmdShields && s.outcome == InProgress {
			s.hostilesFire(ev)
		}
		if cmd.Kind == CmdPhasers || cmd.Kind == CmdTorpedo {
			s.ship.Stardate += weaponsTime
		}
		return nil
	})
}
