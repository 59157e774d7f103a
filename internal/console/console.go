// Package console turns typed command lines into game turns.
package console

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/spacehole-rogue/supertrek/internal/game"
)

// MaxInput is the longest command line the prompt accepts.
const MaxInput = 20

type handler func(c *Console, args []string) []string

type command struct {
	run   handler
	usage string
	help  string
}

// Console owns the prompt buffer and dispatches submitted lines to a session.
type Console struct {
	session  *game.Session
	commands map[string]command
	aliases  map[string]string
	input    []rune
	logger   *slog.Logger
}

// New creates a console bound to s.
func New(s *game.Session) *Console {
	c := &Console{
		session: s,
		logger:  slog.With("component", "console"),
	}
	c.commands = map[string]command{
		"nav":  {run: (*Console).navigate, usage: "NAV <course> <warp>", help: "NAV <c> <w>: Navigate"},
		"srs":  {run: (*Console).shortRangeScan, help: "SRS: Short Range Scan"},
		"lrs":  {run: (*Console).longRangeScan, help: "LRS: Long Range Scan"},
		"pha":  {run: (*Console).phasers, usage: "PHA <energy>", help: "PHA <e>: Fire Phasers"},
		"tor":  {run: (*Console).torpedo, usage: "TOR <course>", help: "TOR <c>: Fire Torpedo"},
		"she":  {run: (*Console).shields, usage: "SHE <amount>", help: "SHE <a>: Set Shields"},
		"sta":  {run: (*Console).status, help: "STA: Status Report"},
		"dam":  {run: (*Console).damage, help: "DAM: Damage Report"},
		"help": {run: (*Console).showHelp, help: "HELP: This list"},
		"new":  {run: (*Console).newGame, help: "NEW: Start a new game"},
	}
	c.aliases = map[string]string{
		"n":  "nav",
		"s":  "srs",
		"l":  "lrs",
		"p":  "pha",
		"t":  "tor",
		"h":  "she",
		"st": "sta",
		"d":  "dam",
		"?":  "help",
	}
	return c
}

// Input returns the text typed so far.
func (c *Console) Input() string {
	return string(c.input)
}

// Type appends r to the prompt. Control characters and input past MaxInput
// are ignored.
func (c *Console) Type(r rune) {
	if len(c.input) >= MaxInput || !unicode.IsPrint(r) || r > unicode.MaxASCII {
		return
	}
	c.input = append(c.input, unicode.ToUpper(r))
}

// Backspace removes the last typed character.
func (c *Console) Backspace() {
	if len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
}

// Submit executes the prompt and clears it.
func (c *Console) Submit() []string {
	line := string(c.input)
	c.input = c.input[:0]
	return c.Execute(line)
}

// Execute runs one command line. Game turns are logged by the session; the
// console logs everything else it prints.
func (c *Console) Execute(line string) []string {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}
	name, ok := c.resolve(fields[0])
	if !ok {
		return c.print(fmt.Sprintf("UNKNOWN: %s", strings.ToUpper(fields[0])))
	}
	c.logger.Debug("execute", "command", name, "args", fields[1:])
	return c.commands[name].run(c, fields[1:])
}

// resolve maps an alias or unique prefix to a command name.
func (c *Console) resolve(word string) (string, bool) {
	if full, ok := c.aliases[word]; ok {
		return full, true
	}
	if _, ok := c.commands[word]; ok {
		return word, true
	}
	var matches []string
	for name := range c.commands {
		if strings.HasPrefix(name, word) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}

// print records console-only output in the session log.
func (c *Console) print(lines ...string) []string {
	for _, l := range lines {
		c.session.Log.Add(l, game.MsgInfo)
	}
	return lines
}

func (c *Console) usage(name string) []string {
	return c.print(c.commands[name].usage)
}

func (c *Console) navigate(args []string) []string {
	if len(args) < 2 {
		return c.usage("nav")
	}
	course, err1 := strconv.ParseFloat(args[0], 64)
	warp, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		return c.usage("nav")
	}
	return c.session.Do(game.Command{Kind: game.CmdNavigate, Course: course, Warp: warp})
}

func (c *Console) phasers(args []string) []string {
	if len(args) < 1 {
		return c.usage("pha")
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return c.usage("pha")
	}
	return c.session.Do(game.Command{Kind: game.CmdPhasers, Amount: amount})
}

func (c *Console) torpedo(args []string) []string {
	if len(args) < 1 {
		return c.usage("tor")
	}
	course, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return c.usage("tor")
	}
	return c.session.Do(game.Command{Kind: game.CmdTorpedo, Course: course})
}

func (c *Console) shields(args []string) []string {
	if len(args) < 1 {
		return c.usage("she")
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return c.usage("she")
	}
	return c.session.Do(game.Command{Kind: game.CmdShields, Amount: amount})
}

func (c *Console) shortRangeScan([]string) []string {
	return c.print("SHORT RANGE SCAN")
}

func (c *Console) longRangeScan([]string) []string {
	return c.print(c.session.LongRangeScan()...)
}

func (c *Console) status([]string) []string {
	return c.print(c.session.StatusReport()...)
}

func (c *Console) damage([]string) []string {
	return c.print(c.session.DamageReport()...)
}

func (c *Console) newGame([]string) []string {
	return c.session.Reset()
}

func (c *Console) showHelp([]string) []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, c.commands[name].help)
	}
	return c.print(lines...)
}
