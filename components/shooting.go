package components

import (
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
)

// Triggers is one frame of fire button state.
type Triggers struct {
	MainDown, MainHeld, MainUp bool
	AltDown, AltHeld, AltUp    bool
}

// Shot is a shell launch request.
type Shot struct {
	Gun   cfg.GunID
	Force float64
}

// ShootingData charges the launch force while a fire button is held.
// Only one gun charges at a time; the other trigger is ignored until the shot leaves.
type ShootingData struct {
	MinForce    float64
	MaxForce    float64
	AltMaxForce float64
	ChargeSpeed float64 // force per second

	LaunchForce float64
	Charging    bool
	Gun         cfg.GunID
}

func (s *ShootingData) maxFor(gun cfg.GunID) float64 {
	if gun == cfg.GunAlt {
		return s.AltMaxForce
	}
	return s.MaxForce
}

// ChargeFraction returns how far the current charge is between min and max force.
func (s *ShootingData) ChargeFraction() float64 {
	if !s.Charging {
		return 0
	}
	span := s.maxFor(s.Gun) - s.MinForce
	if span <= 0 {
		return 1
	}
	return (s.LaunchForce - s.MinForce) / span
}

// Update advances the charge by dt seconds and reports a shot when one is released.
func (s *ShootingData) Update(t Triggers, dt float64) (Shot, bool) {
	if !s.Charging {
		switch {
		case t.MainDown:
			s.Charging, s.Gun = true, cfg.GunMain
		case t.AltDown:
			s.Charging, s.Gun = true, cfg.GunAlt
		default:
			return Shot{}, false
		}
		s.LaunchForce = s.MinForce
		return Shot{}, false
	}

	held, up := t.MainHeld, t.MainUp
	if s.Gun == cfg.GunAlt {
		held, up = t.AltHeld, t.AltUp
	}

	limit := s.maxFor(s.Gun)
	if held && !up {
		s.LaunchForce += s.ChargeSpeed * dt
		if s.LaunchForce < limit {
			return Shot{}, false
		}
		s.LaunchForce = limit
	}
	return s.release(), true
}

func (s *ShootingData) release() Shot {
	shot := Shot{Gun: s.Gun, Force: s.LaunchForce}
	s.Charging = false
	s.LaunchForce = s.MinForce
	return shot
}

// Cancel drops any charge in progress.
func (s *ShootingData) Cancel() {
	s.Charging = false
	s.LaunchForce = s.MinForce
}

var Shooting = donburi.NewComponentType[ShootingData]()
