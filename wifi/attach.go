package wifi

import "time"

type outcome int

const (
	outcomePending outcome = iota
	outcomeJoined
	outcomeFailed
)

// attempt is the retry budget for one credential
type attempt struct {
	target    int
	pollsLeft int
	deadline  time.Time
}

func newAttempt(target int, now time.Time, t Timing) attempt {
	return attempt{
		target:    target,
		pollsLeft: t.MaxPolls,
		deadline:  now.Add(t.AttemptTimeout),
	}
}

// poll consumes one poll of the budget.  A joined status always wins, even
// on the last poll.
func (a *attempt) poll(now time.Time, status Status) outcome {
	a.pollsLeft--
	if status == StatusJoined {
		return outcomeJoined
	}
	if a.pollsLeft <= 0 || !now.Before(a.deadline) {
		return outcomeFailed
	}
	return outcomePending
}

func (a *attempt) state() Attaching {
	return Attaching{
		Target:            a.target,
		AttemptsRemaining: a.pollsLeft,
		Deadline:          a.deadline,
	}
}

// sequencer decides which credential to try next after a failed attempt
type sequencer struct {
	registry *Registry
	giveup   int
	laps     int
}

// failed advances to the next credential.  It returns true once the
// registry has wrapped giveup times, meaning boot should stop trying.  With
// a single credential every failure is a lap, so that credential is retried
// until the lap budget runs out.
func (s *sequencer) failed() (exhausted bool) {
	if s.registry.Advance() {
		s.laps++
	}
	return s.laps >= s.giveup
}

// attachAll tries the registry in order, starting at the cursor, until a
// network joins or the sequencer gives up
func (m *Manager) attachAll() bool {
	seq := sequencer{registry: m.registry, giveup: m.timing.GiveupLaps}

	m.stack.Disconnect()
	m.clock.Sleep(m.timing.PollInterval)

	for {
		cred, err := m.registry.Current()
		if err != nil {
			return false
		}
		if m.attach(cred) {
			return true
		}
		m.clock.Sleep(m.timing.FailureDelay)
		if seq.failed() {
			return false
		}
		m.stack.Disconnect()
	}
}

// attach makes one bounded attempt to join cred
func (m *Manager) attach(cred Credential) bool {
	m.log.Info("connecting to wifi", "ssid", cred.SSID)
	m.display.Show(0, "", "Connecting to WiFi:", "", cred.SSID+" ...")

	if err := m.stack.Join(cred.SSID, cred.Passphrase); err != nil {
		m.log.Warn("join request failed", "ssid", cred.SSID, "err", err)
	}

	a := newAttempt(m.registry.Index(), m.clock.Now(), m.timing)
	m.setState(a.state())
	defer m.led(false)

	for led := true; ; led = !led {
		m.led(led)
		m.clock.Sleep(m.timing.PollInterval)
		status := m.stack.Status()
		switch a.poll(m.clock.Now(), status) {
		case outcomeJoined:
			m.joined(cred)
			return true
		case outcomeFailed:
			m.log.Warn("wifi attempt failed", "ssid", cred.SSID,
				"status", status.String(), "known", status.Known())
			m.setState(Disconnected{})
			return false
		}
		m.setState(a.state())
	}
}

func (m *Manager) joined(cred Credential) {
	m.ssid = cred.SSID
	m.addr = m.stack.LocalAddr()
	m.log.Info("connected", "ssid", m.ssid, "addr", m.addr)
	m.display.Show(time.Second, "", "     Connected!!", "", "     "+m.ssid)
	m.setState(Connected{})
}

func (m *Manager) led(on bool) {
	if m.indicator != nil {
		m.indicator.Set(on)
	}
}
