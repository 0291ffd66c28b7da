package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spirilis/ircbot"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	c, err := loadConfig("./testdata/ircbot.yaml")
	require.NoError(t, err)

	assert.Equal(t, "irc.example.net", c.Server)
	assert.Equal(t, ircbot.DefaultPort, c.Port)
	assert.Equal(t, "ircbot", c.User)
	assert.Equal(t, []string{"#bots"}, c.Channels)
	assert.Equal(t, []string{"owner"}, c.Admins)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	var testCases = []string{
		"nick: bot\n",
		"server: localhost\n",
		"server: localhost\nnick: bot\nadmin: typo\n",
	}

	for _, input := range testCases {
		_, err := parseConfig([]byte(input))
		assert.Error(t, err, "input %q", input)
	}

	c, err := parseConfig([]byte("server: localhost\nnick: bot\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Nil(t, c.Admins)
}
