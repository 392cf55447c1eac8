package wifi

import "strconv"

// Status is the station status reported by the network stack.  Values
// outside the known set are kept as-is and reported as unrecognized.
type Status int

const (
	StatusIdle Status = iota
	StatusJoined
	StatusNoSSID
	StatusWrongCredentials
	StatusConnectionLost
	StatusDisconnected
)

// Known is false for codes the stack reported that have no named arm
func (s Status) Known() bool {
	return s >= StatusIdle && s <= StatusDisconnected
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusJoined:
		return "joined"
	case StatusNoSSID:
		return "ssid not available"
	case StatusWrongCredentials:
		return "connection failed, wrong password?"
	case StatusConnectionLost:
		return "connection lost"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "unrecognized status " + strconv.Itoa(int(s))
	}
}
