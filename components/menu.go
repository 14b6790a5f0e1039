package components

import "github.com/yohamta/donburi"

// PlayerCountMenuData is the state of the player count selector.
type PlayerCountMenuData struct {
	Count    int
	Min, Max int
	Started  bool
	Quit     bool
}

func (m *PlayerCountMenuData) Increase() {
	if m.Count < m.Max {
		m.Count++
	}
}

func (m *PlayerCountMenuData) Decrease() {
	if m.Count > m.Min {
		m.Count--
	}
}

var PlayerCountMenu = donburi.NewComponentType[PlayerCountMenuData]()
