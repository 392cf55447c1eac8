package wifi

import "time"

// Timing holds every delay, timeout and threshold the connectivity state
// machine uses.  Zero fields take the DefaultTiming value.
type Timing struct {
	// Attach status poll interval
	PollInterval time.Duration
	// Status polls per credential attempt
	MaxPolls int
	// Wall-clock ceiling for one credential attempt
	AttemptTimeout time.Duration
	// Pause after a failed attempt, before moving to the next credential.
	// Zero takes the default like every other field; use a negative value
	// for no pause.
	FailureDelay time.Duration
	// Full laps of the registry before boot gives up and starts the auto AP
	GiveupLaps int
	// Minimum time between supervised reconnects
	ReconnectInterval time.Duration
	// Supervised reconnect failures before entering backup mode
	BackupThreshold int
	// Longest stay in backup mode
	BackupWindow time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		PollInterval:      500 * time.Millisecond,
		MaxPolls:          20,
		AttemptTimeout:    10 * time.Second,
		FailureDelay:      time.Second,
		GiveupLaps:        1,
		ReconnectInterval: 30 * time.Second,
		BackupThreshold:   2,
		BackupWindow:      15 * time.Minute,
	}
}

func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.PollInterval <= 0 {
		t.PollInterval = def.PollInterval
	}
	if t.MaxPolls <= 0 {
		t.MaxPolls = def.MaxPolls
	}
	if t.AttemptTimeout <= 0 {
		t.AttemptTimeout = def.AttemptTimeout
	}
	if t.FailureDelay < 0 {
		t.FailureDelay = 0
	} else if t.FailureDelay == 0 {
		t.FailureDelay = def.FailureDelay
	}
	if t.GiveupLaps <= 0 {
		t.GiveupLaps = def.GiveupLaps
	}
	if t.ReconnectInterval <= 0 {
		t.ReconnectInterval = def.ReconnectInterval
	}
	if t.BackupThreshold <= 0 {
		t.BackupThreshold = def.BackupThreshold
	}
	if t.BackupWindow <= 0 {
		t.BackupWindow = def.BackupWindow
	}
	return t
}
