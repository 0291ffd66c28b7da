package ircbot

import (
	"fmt"
	"io/ioutil"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Length limits for the strings a Bot stores. Longer values are truncated.
const (
	MaxNameLen        = 31
	MaxNickLen        = MaxNameLen
	MaxServerLen      = 63
	MaxDescriptionLen = 127
)

// Defaults applied to zero fields of a Config.
const (
	DefaultPort           = 6667
	DefaultDescription    = "ircbot"
	DefaultNickRetries    = 8
	DefaultPollInterval   = 50 * time.Millisecond
	DefaultConnectTimeout = 10 * time.Second
)

// Config is a structure used to configure a Bot.
type Config struct {
	// Server and port to connect to.
	Server string `yaml:"server"`
	Port   int    `yaml:"port"`

	// Connection settings. User defaults to Nick.
	Nick        string `yaml:"nick"`
	User        string `yaml:"user"`
	Description string `yaml:"description"`

	// Password is sent with PASS before registering, if set.
	Password string `yaml:"password"`

	// Channels are added to the channel registry by NewBot. At most
	// MaxChannels are used.
	Channels []string `yaml:"channels"`

	// NickRetries is how many nick collisions in a row are tolerated before
	// the bot gives up.
	NickRetries int `yaml:"nick_retries"`

	// PollInterval is how often a Runner polls the bot.
	PollInterval time.Duration `yaml:"poll_interval"`

	// ConnectTimeout bounds dialing when the bot uses a TCPTransport.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// Logger receives diagnostics. Defaults to NopLogger.
	Logger Logger `yaml:"-"`

	// Clock defaults to SystemClock.
	Clock Clock `yaml:"-"`
}

// ParseConfig reads a Config from YAML and fills in defaults.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("ircbot: parse config: %w", err)
	}

	ret := config.WithDefaults()

	return &ret, nil
}

// LoadConfig reads a YAML Config from the named file.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ircbot: load config: %w", err)
	}

	return ParseConfig(data)
}

// WithDefaults returns a copy of c with every zero field set to its default and
// bounded strings truncated.
func (c Config) WithDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.User == "" {
		c.User = c.Nick
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.NickRetries <= 0 {
		c.NickRetries = DefaultNickRetries
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.Logger == nil {
		c.Logger = NopLogger{}
	}
	if c.Clock == nil {
		c.Clock = SystemClock()
	}

	c.Server = truncate(c.Server, MaxServerLen)
	c.Nick = truncate(c.Nick, MaxNickLen)
	c.User = truncate(c.User, MaxNameLen)
	c.Description = truncate(c.Description, MaxDescriptionLen)

	return c
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
