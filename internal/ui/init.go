package ui

import zone "github.com/lrstanley/bubblezone"

// Init prepares process-wide UI state. The host calls it once at startup,
// before the first Model is created.
func Init() {
	zone.NewGlobal()
}
