package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandKind string

const (
	CommandMove       CommandKind = "move"
	CommandUndo       CommandKind = "undo"
	CommandNewRound   CommandKind = "new"
	CommandResetAll   CommandKind = "reset"
	CommandStats      CommandKind = "stats"
	CommandMode       CommandKind = "mode"
	CommandDifficulty CommandKind = "difficulty"
	CommandTheme      CommandKind = "theme"
	CommandNames      CommandKind = "names"
	CommandHelp       CommandKind = "help"
	CommandQuit       CommandKind = "quit"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

const helpText = `commands:
  <row> <col>              place your mark, rows and columns are 1-3
  undo                     take back the last move (both moves against the AI)
  new                      start a new round
  reset                    zero the score and start a new round
  stats                    show all-time statistics
  mode two|ai              switch between two players and playing the AI
  difficulty easy|medium|hard
  theme dark|light|retro
  names <x-name> <o-name>
  help, quit`

// Command is one parsed line of input. Row and Col are zero-based.
type Command struct {
	Kind CommandKind
	Row  int
	Col  int
	Args []string
}

// ParseCommand reads a line such as "2 3", "undo" or "mode ai".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	if row, err := strconv.Atoi(fields[0]); err == nil {
		return parseMove(row, fields[1:])
	}

	kind := CommandKind(fields[0])
	args := fields[1:]

	switch kind {
	case CommandUndo, CommandNewRound, CommandResetAll, CommandStats, CommandHelp, CommandQuit:
		return Command{Kind: kind}, nil
	case "move":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%w: move <row> <col>", ErrBadArguments)
		}
		row, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: row %q", ErrBadArguments, args[0])
		}
		return parseMove(row, args[1:])
	case CommandMode, CommandDifficulty, CommandTheme:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes one value", ErrBadArguments, kind)
		}
		return Command{Kind: kind, Args: args}, nil
	case CommandNames:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: names <x-name> <o-name>", ErrBadArguments)
		}
		// keep the player's capitalisation
		raw := strings.Fields(line)
		return Command{Kind: kind, Args: raw[1:3]}, nil
	case "exit", "q":
		return Command{Kind: CommandQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
}

func parseMove(row int, rest []string) (Command, error) {
	if len(rest) != 1 {
		return Command{}, fmt.Errorf("%w: expected <row> <col>", ErrBadArguments)
	}

	col, err := strconv.Atoi(rest[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: col %q", ErrBadArguments, rest[0])
	}

	return Command{Kind: CommandMove, Row: row - 1, Col: col - 1}, nil
}
