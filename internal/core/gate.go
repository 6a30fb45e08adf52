package core

// Gate answers whether a device may write to the chat. The banned set is
// loaded once from the moderation store; the gate itself never mutates it.
type Gate struct {
	banned map[string]struct{}
}

// NewGate builds a gate from a list of banned device identifiers.
func NewGate(deviceIDs []string) *Gate {
	banned := make(map[string]struct{}, len(deviceIDs))
	for _, id := range deviceIDs {
		banned[id] = struct{}{}
	}
	return &Gate{banned: banned}
}

// Allowed reports whether the device is not banned.
func (g *Gate) Allowed(deviceID string) bool {
	_, banned := g.banned[deviceID]
	return !banned
}
