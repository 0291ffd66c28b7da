package ircbot

import (
	"fmt"
	"time"
)

// Version of the ircbot engine.
const Version = "0.1.0"

// Buffer sizes used for ingesting data from the transport.
const (
	stagingSize = 512
	ringSize    = 1024
	lineSize    = 1024
)

// nickDelay is how long the bot waits after sending NICK before it sends
// USER.
const nickDelay = 500 * time.Millisecond

// ConnState is the state of the connection and registration handshake.
type ConnState int

// Connection states, in the order they are normally passed through.
const (
	Disconnected ConnState = iota
	Connecting
	Connected
	ServerInit
	RegisteringNick
	NickRegistered
	RegisteringUser
	UserRegistered
	MotdFinished
)

var stateNames = [...]string{
	Disconnected:    "Disconnected",
	Connecting:      "Connecting",
	Connected:       "Connected",
	ServerInit:      "ServerInit",
	RegisteringNick: "RegisteringNick",
	NickRegistered:  "NickRegistered",
	RegisteringUser: "RegisteringUser",
	UserRegistered:  "UserRegistered",
	MotdFinished:    "MotdFinished",
}

var stateDescriptions = [...]string{
	Disconnected:    "Not connected",
	Connecting:      "Attempting to connect",
	Connected:       "Connected; waiting for server response",
	ServerInit:      "Connected; server has shown signs of life",
	RegisteringNick: "Registering Nick",
	NickRegistered:  "Nick registered",
	RegisteringUser: "Registering User & Description",
	UserRegistered:  "User & Description Registered; waiting for end of MOTD",
	MotdFinished:    "IRC connection healthy",
}

func (s ConnState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("ConnState(%d)", int(s))
	}
	return stateNames[s]
}

// Description returns a human readable explanation of the state.
func (s ConnState) Description() string {
	if s < 0 || int(s) >= len(stateDescriptions) {
		return "Unknown state"
	}
	return stateDescriptions[s]
}

// Bot is a poll driven IRC client. It never blocks and never starts
// goroutines: all work, including every handler call, happens inside Poll
// and the methods called by the application. A Bot is not safe for
// concurrent use; see Runner for driving one from a goroutine.
type Bot struct {
	transport Transport
	logger    Logger
	clock     Clock

	server      string
	port        int
	nick        string
	user        string
	description string
	password    string

	nickRetries int
	collisions  int

	state      ConnState
	enabled    bool
	motdSeen   bool
	announced  bool
	passSent   bool
	nickSentAt time.Time

	staging []byte
	ring    *RingBuffer
	line    []byte

	channels  [MaxChannels]channelSlot
	userJoins watchList
	userParts watchList
	commands  [MaxCommands]*command
	onUnknown CommandHandler

	onConnect    EventHandler
	onDisconnect EventHandler

	filters     []Filter
	dispatching bool
	discarding  bool
}

// NewBot creates a Bot which talks over t. The bot does nothing until Begin
// is called. Channels listed in the config are added to the registry; ones
// that don't fit are logged and skipped.
func NewBot(t Transport, config Config) *Bot {
	config = config.WithDefaults()

	b := &Bot{
		transport:   t,
		logger:      config.Logger,
		clock:       config.Clock,
		server:      config.Server,
		port:        config.Port,
		nick:        config.Nick,
		user:        config.User,
		description: config.Description,
		password:    config.Password,
		nickRetries: config.NickRetries,
		staging:     make([]byte, stagingSize),
		ring:        NewRingBuffer(ringSize),
		line:        make([]byte, lineSize),
	}

	for _, name := range config.Channels {
		if _, err := b.AddChannel(name); err != nil {
			b.logger.Warn("ircbot: skipping channel ", name, ": ", err)
		}
	}

	return b
}

// Begin enables the bot, resets the connection state and polls once. The
// registries are left alone.
func (b *Bot) Begin() {
	b.enabled = true
	b.state = Disconnected
	b.Poll()
}

// End sends QUIT, closes the transport and disables the bot until the next
// call to Begin.
func (b *Bot) End() {
	if b.transport.Connected() {
		b.send("QUIT :Bot quitting")
		b.transport.Close()
		b.announceDisconnect()
	}

	b.state = Disconnected
	b.enabled = false
}

// Enabled reports whether Poll does anything.
func (b *Bot) Enabled() bool {
	return b.enabled
}

// State returns the current connection state.
func (b *Bot) State() ConnState {
	return b.state
}

// StateDescription describes the current state for humans.
func (b *Bot) StateDescription() string {
	if !b.enabled {
		return "Bot disabled"
	}
	return b.state.Description()
}

// IsConnected reports whether the transport is up and the server has been
// reached.
func (b *Bot) IsConnected() bool {
	return b.state > Connecting && b.transport.Connected()
}

// Nick returns the nick currently used, including any suffix added after a
// collision.
func (b *Bot) Nick() string {
	return b.nick
}

// SetServer changes the server. If the bot is connected it reconnects.
func (b *Bot) SetServer(server string) {
	server = truncate(server, MaxServerLen)
	if b.state > Disconnected && server != b.server {
		b.End()
		b.server = server
		b.Begin()
		return
	}

	b.server = server
}

// SetPort changes the port. If the bot is connected it reconnects.
func (b *Bot) SetPort(port int) {
	if b.state > Disconnected && port != b.port {
		b.End()
		b.port = port
		b.Begin()
		return
	}

	b.port = port
}

// SetNick changes the nick. Once the nick has been registered the change is
// sent to the server right away.
func (b *Bot) SetNick(nick string) {
	b.nick = truncate(nick, MaxNickLen)
	b.collisions = 0

	if b.state > NickRegistered {
		b.send("NICK " + b.nick)
	}
}

// SetUsername changes the user name sent at the next registration.
func (b *Bot) SetUsername(user string) {
	b.user = truncate(user, MaxNameLen)
}

// SetDescription changes the real name sent at the next registration.
func (b *Bot) SetDescription(desc string) {
	b.description = truncate(desc, MaxDescriptionLen)
}

// SetPassword changes the server password sent at the next registration.
func (b *Bot) SetPassword(password string) {
	b.password = password
}

// SetLogger replaces the logger. A nil logger discards everything.
func (b *Bot) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	b.logger = logger
}

// AddFilter adds a filter every outgoing line is passed through.
func (b *Bot) AddFilter(f Filter) {
	b.filters = append(b.filters, f)
}

// AttachOnConnect sets the handler called once the transport is connected.
func (b *Bot) AttachOnConnect(h EventHandler) error {
	if h == nil {
		return ErrNilHandler
	}
	if b.onConnect != nil {
		return ErrAlreadyAttached
	}
	b.onConnect = h
	return nil
}

// DetachOnConnect removes the connect handler.
func (b *Bot) DetachOnConnect() error {
	if b.onConnect == nil {
		return ErrNotAttached
	}
	b.onConnect = nil
	return nil
}

// AttachOnDisconnect sets the handler called when a connection announced
// to the connect handler goes away.
func (b *Bot) AttachOnDisconnect(h EventHandler) error {
	if h == nil {
		return ErrNilHandler
	}
	if b.onDisconnect != nil {
		return ErrAlreadyAttached
	}
	b.onDisconnect = h
	return nil
}

// DetachOnDisconnect removes the disconnect handler.
func (b *Bot) DetachOnDisconnect() error {
	if b.onDisconnect == nil {
		return ErrNotAttached
	}
	b.onDisconnect = nil
	return nil
}

// SendPrivmsg sends message to channel, addressed to toNick unless it is
// empty. The bot must be registered and in the channel.
func (b *Bot) SendPrivmsg(channel, toNick, message string) error {
	idx, err := b.sendTarget(channel)
	if err != nil {
		return err
	}

	line := "PRIVMSG " + b.channels[idx].name + " :"
	if toNick != "" {
		line += toNick + ": "
	}

	return b.send(line + message)
}

// SendCTCP sends a CTCP request such as ACTION to channel.
func (b *Bot) SendCTCP(channel, ctcp, message string) error {
	idx, err := b.sendTarget(channel)
	if err != nil {
		return err
	}

	return b.send("PRIVMSG " + b.channels[idx].name + " :\x01" + ctcp + " " + message + "\x01")
}

func (b *Bot) sendTarget(channel string) (int, error) {
	if b.state != MotdFinished {
		b.logger.Debug("ircbot: cannot send in state ", b.state)
		return -1, ErrNotRegistered
	}

	idx := b.findChannel(channel)
	if idx < 0 {
		return -1, ErrNoSuchChannel
	}

	if b.channels[idx].state != Joined {
		b.logger.Debug("ircbot: cannot send to ", channel, " in state ", b.channels[idx].state)
		return -1, ErrNotJoined
	}

	return idx, nil
}

// send writes one line, with the line ending added, unless a filter drops
// it.
func (b *Bot) send(line string) error {
	for _, f := range b.filters {
		if f.Filter(b, line) {
			b.logger.Debug("ircbot: filtered ", line)
			return nil
		}
	}

	b.logger.Debug("ircbot: --> ", line)

	_, err := b.transport.Write([]byte(line + "\r\n"))
	if err != nil {
		b.logger.Warn("ircbot: write failed: ", err)
	}

	return err
}

func (b *Bot) announceConnect() {
	b.announced = true
	if b.onConnect != nil {
		b.logger.Debug("ircbot: running connect handler")
		b.onConnect.HandleEvent(b)
	}
}

// announceDisconnect runs the disconnect handler if the connect handler saw this
// connection.
func (b *Bot) announceDisconnect() {
	if !b.announced {
		return
	}

	b.announced = false
	if b.onDisconnect != nil {
		b.logger.Debug("ircbot: running disconnect handler")
		b.onDisconnect.HandleEvent(b)
	}
}
