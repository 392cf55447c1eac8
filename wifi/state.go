package wifi

import "time"

// Tag names a connectivity state
type Tag string

const (
	TagDisconnected Tag = "disconnected"
	TagAttaching    Tag = "attaching"
	TagConnected    Tag = "connected"
	TagBackup       Tag = "backup"
	TagAutoAP       Tag = "autoap"
)

// State is one of Disconnected, Attaching, Connected, BackupMode or AutoAP.
// Exactly one is active on a Manager at a time.
type State interface {
	Tag() Tag
	state()
}

// Disconnected means no network and no attempt in progress
type Disconnected struct{}

// Attaching is an in-progress boot attempt against one registry entry
type Attaching struct {
	Target            int
	AttemptsRemaining int
	Deadline          time.Time
}

// Connected means a known network is joined
type Connected struct{}

// BackupMode is the degraded mode entered after repeated reconnect failures
type BackupMode struct {
	EnteredAt time.Time
}

// AutoAP is the self-hosted access point.  A zero LastStationSeen means no
// idle observation has been made yet.
type AutoAP struct {
	SSID            string
	StartedAt       time.Time
	LastStationSeen time.Time
}

func (Disconnected) Tag() Tag { return TagDisconnected }
func (Attaching) Tag() Tag    { return TagAttaching }
func (Connected) Tag() Tag    { return TagConnected }
func (BackupMode) Tag() Tag   { return TagBackup }
func (AutoAP) Tag() Tag       { return TagAutoAP }

func (Disconnected) state() {}
func (Attaching) state()    {}
func (Connected) state()    {}
func (BackupMode) state()   {}
func (AutoAP) state()       {}
