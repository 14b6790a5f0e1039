package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AnnouncementData is the centered round message overlay.
type AnnouncementData struct {
	Text  string
	Alpha float64
	Fade  *gween.Tween
}

// SetText replaces the message. The fade is restarted by the announcement system.
func (a *AnnouncementData) SetText(s string) {
	if a.Text == s {
		return
	}
	a.Text = s
	a.Alpha = 0
	a.Fade = nil
}

var Announcement = donburi.NewComponentType[AnnouncementData]()
