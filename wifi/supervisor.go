package wifi

// CheckWiFi keeps the uplink alive after boot.  It is polled from the main
// loop and never waits: a reconnect is fired and its result is picked up on
// a later poll.
func (m *Manager) CheckWiFi() {
	now := m.clock.Now()
	joined := m.stack.Status() == StatusJoined

	if backup, ok := m.state.(BackupMode); ok {
		if joined {
			m.log.Info("wifi reconnect success, stopping backup mode")
			m.leaveBackup()
			return
		}
		if now.Sub(backup.EnteredAt) < m.timing.BackupWindow {
			return
		}
		m.log.Info("stopping backup mode", "after", m.timing.BackupWindow)
		m.leaveBackup()
	}

	switch m.state.(type) {
	case Attaching, AutoAP:
		return
	}

	if joined {
		if _, ok := m.state.(Disconnected); ok {
			m.recovered()
		}
		return
	}

	if _, ok := m.state.(Connected); ok {
		m.log.Warn("wifi connection lost", "ssid", m.ssid)
		m.setState(Disconnected{})
	}

	if !m.lastReconnect.IsZero() && now.Sub(m.lastReconnect) < m.timing.ReconnectInterval {
		return
	}
	m.reconnect()
}

func (m *Manager) reconnect() {
	cred, err := m.registry.Current()
	if err != nil {
		return
	}

	now := m.clock.Now()
	m.log.Info("reconnecting to wifi", "ssid", cred.SSID)
	m.stack.Disconnect()
	if err := m.stack.Join(cred.SSID, cred.Passphrase); err != nil {
		m.log.Warn("join request failed", "ssid", cred.SSID, "err", err)
	}
	m.lastReconnect = now

	// a join that completes on the spot is not a failure
	if m.stack.Status() == StatusJoined {
		m.recovered()
		return
	}

	if m.cfg.BackupEnabled {
		m.failures++
	}
	if m.failures >= m.timing.BackupThreshold {
		m.log.Warn("starting backup mode", "failures", m.failures)
		m.failures = 0
		m.setState(BackupMode{EnteredAt: now})
	}
}

func (m *Manager) recovered() {
	m.ssid = m.currentSSID()
	m.addr = m.stack.LocalAddr()
	m.log.Info("wifi reconnected", "ssid", m.ssid, "addr", m.addr)
	m.setState(Connected{})
}

func (m *Manager) leaveBackup() {
	m.failures = 0
	m.setState(Disconnected{})
}

func (m *Manager) currentSSID() string {
	cred, err := m.registry.Current()
	if err != nil {
		return ""
	}
	return cred.SSID
}
