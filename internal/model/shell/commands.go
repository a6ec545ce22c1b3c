package shell

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind enumerates everything a user can ask the shell to do.
type Kind int

const (
	KindConvert Kind = iota
	KindAmount
	KindFrom
	KindTo
	KindSwap
	KindNotify
	KindThreshold
	KindHistory
	KindClear
	KindExport
	KindChart
	KindCurrencies
	KindStatus
	KindHelp
	KindQuit
)

var kindNames = map[Kind]string{
	KindConvert:    "convert",
	KindAmount:     "amount",
	KindFrom:       "from",
	KindTo:         "to",
	KindSwap:       "swap",
	KindNotify:     "notify",
	KindThreshold:  "threshold",
	KindHistory:    "history",
	KindClear:      "clear",
	KindExport:     "export",
	KindChart:      "chart",
	KindCurrencies: "currencies",
	KindStatus:     "status",
	KindHelp:       "help",
	KindQuit:       "quit",
}

var aliases = map[string]Kind{
	"c":    KindConvert,
	"exit": KindQuit,
	"q":    KindQuit,
	"?":    KindHelp,
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

type Command struct {
	Kind Kind
	Args []string
}

func NewCommand(kind Kind, args ...string) Command {
	return Command{Kind: kind, Args: args}
}

// ParseCommand reads "name arg...". A leading slash is accepted and ignored.
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	kind, ok := lookupKind(name)
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", fields[0])
	}
	return Command{Kind: kind, Args: fields[1:]}, nil
}

func lookupKind(name string) (Kind, bool) {
	if kind, ok := aliases[name]; ok {
		return kind, true
	}
	for kind, n := range kindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}
