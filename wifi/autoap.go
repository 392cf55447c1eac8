package wifi

import "time"

// StartAutoAP switches the radio to access point mode so the device can be
// reached for configuration
func (m *Manager) StartAutoAP() {
	ssid := m.cfg.Identity + " AP"

	m.display.Show(time.Second, "", "   Starting Auto AP", " Please connect to it ", "     loading ...")
	m.stack.Disconnect()
	if err := m.stack.StartAccessPoint(ssid, m.cfg.AutoAPPassphrase); err != nil {
		m.log.Error("auto AP start failed", "ssid", ssid, "err", err)
	} else {
		m.log.Info("auto AP started", "ssid", ssid)
	}

	m.setState(AutoAP{SSID: ssid, StartedAt: m.clock.Now()})
}

// CheckAutoAPPowerOff powers the auto AP down after AutoAPPowerOff minutes
// with no stations attached.  Any attached station restarts the idle clock.
func (m *Manager) CheckAutoAPPowerOff() {
	ap, ok := m.state.(AutoAP)
	if !ok || m.cfg.AutoAPPowerOff <= 0 {
		return
	}

	now := m.clock.Now()
	idle := time.Duration(m.cfg.AutoAPPowerOff) * time.Minute

	switch {
	case m.stack.StationCount() > 0:
		ap.LastStationSeen = now
	case ap.LastStationSeen.IsZero():
		ap.LastStationSeen = now
	case now.Sub(ap.LastStationSeen) >= idle:
		m.log.Info("stopping auto AP", "idle", idle)
		if err := m.stack.StopAccessPoint(); err != nil {
			m.log.Error("auto AP stop failed", "err", err)
		}
		m.log.Info("auto AP stopped (timeout)")
		m.setState(Disconnected{})
		return
	}

	m.state = ap
}
