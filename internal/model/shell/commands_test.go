package shell

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseCommand_ShouldResolveNamesAndAliases(t *testing.T) {
	cases := map[string]Command{
		"convert":              NewCommand(KindConvert),
		"/convert 10 eur usd":  NewCommand(KindConvert, "10", "eur", "usd"),
		"  AMOUNT   42 ":       NewCommand(KindAmount, "42"),
		"c":                    NewCommand(KindConvert),
		"q":                    NewCommand(KindQuit),
		"exit":                 NewCommand(KindQuit),
		"?":                    NewCommand(KindHelp),
		"export out.pdf week":  NewCommand(KindExport, "out.pdf", "week"),
		"notify":               NewCommand(KindNotify),
	}
	for line, want := range cases {
		got, err := ParseCommand(line)
		require.NoError(t, err, line)
		assert.Equal(t, want.Kind, got.Kind, line)
		assert.ElementsMatch(t, want.Args, got.Args, line)
	}
}

func Test_OnParseCommand_ShouldRejectEmptyAndUnknown(t *testing.T) {
	_, err := ParseCommand("   ")
	assert.True(t, errors.Is(err, ErrEmptyCommand))

	_, err = ParseCommand("launch rockets")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func Test_OnKindString_ShouldNameEveryKind(t *testing.T) {
	for kind := KindConvert; kind <= KindQuit; kind++ {
		assert.NotEqual(t, "unknown", kind.String())
	}
	assert.Equal(t, "unknown", Kind(-1).String())
}
