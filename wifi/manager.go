package wifi

import (
	"log/slog"
	"os"
	"time"
)

// Config is what the Manager needs from the device configuration
type Config struct {
	// Identity names the device; the auto AP is "<Identity> AP"
	Identity string
	// Known networks, tried in order
	APs []Credential
	// Auto AP passphrase
	AutoAPPassphrase string
	// Minutes without stations before the auto AP powers off.  Zero or
	// negative keeps the auto AP up forever.
	AutoAPPowerOff int
	// Enter backup mode after repeated reconnect failures
	BackupEnabled bool
	Timing        Timing
}

// Manager owns the connectivity state for one device.  It is not safe for
// concurrent use: Setup and the Check* poll functions must be called from
// the same main loop.
type Manager struct {
	cfg       Config
	timing    Timing
	stack     Stack
	display   Display
	clock     Clock
	log       *slog.Logger
	indicator Indicator
	companion Companion
	onChange  func(Snapshot)

	registry      *Registry
	state         State
	ssid          string
	addr          string
	failures      int
	lastReconnect time.Time
}

// Snapshot is a point-in-time view of the Manager for telemetry
type Snapshot struct {
	Identity  string `json:"identity"`
	State     Tag    `json:"state"`
	Connected bool   `json:"connected"`
	SSID      string `json:"ssid,omitempty"`
	Addr      string `json:"addr,omitempty"`
	Failures  int    `json:"failures"`
	AutoAP    string `json:"autoAP,omitempty"`
}

func NewManager(cfg Config, stack Stack, display Display) *Manager {
	if display == nil {
		display = nopDisplay{}
	}
	return &Manager{
		cfg:      cfg,
		timing:   cfg.Timing.withDefaults(),
		stack:    stack,
		display:  display,
		clock:    SystemClock,
		log:      slog.New(slog.NewTextHandler(os.Stdout, nil)),
		registry: NewRegistry(cfg.APs),
		state:    Disconnected{},
	}
}

func (m *Manager) SetClock(c Clock)           { m.clock = c }
func (m *Manager) SetLogger(l *slog.Logger)   { m.log = l }
func (m *Manager) SetIndicator(i Indicator)   { m.indicator = i }
func (m *Manager) SetCompanion(c Companion)   { m.companion = c }
func (m *Manager) OnChange(fn func(Snapshot)) { m.onChange = fn }
func (m *Manager) State() State               { return m.state }
func (m *Manager) Registry() *Registry        { return m.registry }
func (m *Manager) Failures() int              { return m.failures }
func (m *Manager) Timing() Timing             { return m.timing }

// Connected is true while joined to a known network.  The auto AP does not
// count.
func (m *Manager) Connected() bool {
	_, ok := m.state.(Connected)
	return ok
}

// SSID of the last joined network
func (m *Manager) SSID() string { return m.ssid }

// Addr is the station address from the last join
func (m *Manager) Addr() string { return m.addr }

// Setup brings the uplink up at boot.  It blocks while trying the known
// networks, then starts the auto AP if none joined.  Setup returns true if a
// known network was joined.
func (m *Manager) Setup() bool {
	if m.registry.Len() == 0 || !m.attachAll() {
		m.log.Warn("not connected to wifi, starting auto AP")
		m.display.Show(time.Second, "", " WiFi Not Connected!", "", "     loading ...")
		m.StartAutoAP()
	}

	if m.companion != nil {
		if err := m.companion.Stop(); err != nil {
			m.log.Warn("companion radio stop failed", "err", err)
		}
	}

	return m.Connected()
}

func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Identity:  m.cfg.Identity,
		State:     m.state.Tag(),
		Connected: m.Connected(),
		Failures:  m.failures,
	}
	if s.Connected {
		s.SSID, s.Addr = m.ssid, m.addr
	}
	if ap, ok := m.state.(AutoAP); ok {
		s.AutoAP = ap.SSID
	}
	return s
}

func (m *Manager) setState(s State) {
	prev := m.state
	m.state = s
	if prev.Tag() == s.Tag() {
		return
	}
	m.log.Debug("wifi state", "from", prev.Tag(), "to", s.Tag())
	if m.onChange != nil {
		m.onChange(m.Snapshot())
	}
}
