package components

import (
	"testing"

	cfg "github.com/automoto/tanks-mp/config"
)

func newShooter() *ShootingData {
	return &ShootingData{
		MinForce:    10,
		MaxForce:    20,
		AltMaxForce: 30,
		ChargeSpeed: 10,
		LaunchForce: 10,
	}
}

func TestShooting_ReleaseFiresChargedForce(t *testing.T) {
	s := newShooter()
	if _, ok := s.Update(Triggers{MainDown: true, MainHeld: true}, 0.1); ok {
		t.Fatal("press only starts the charge")
	}
	if _, ok := s.Update(Triggers{MainHeld: true}, 0.5); ok {
		t.Fatal("still charging")
	}
	if f := s.ChargeFraction(); f != 0.5 {
		t.Fatalf("charge fraction %.2f, want 0.5", f)
	}

	shot, ok := s.Update(Triggers{MainUp: true}, 0.1)
	if !ok || shot.Gun != cfg.GunMain || shot.Force != 15 {
		t.Fatalf("expected main shot at 15, got %+v %v", shot, ok)
	}
	if s.Charging || s.LaunchForce != s.MinForce {
		t.Fatal("release should reset the charge")
	}
}

func TestShooting_AutoFiresAtMax(t *testing.T) {
	s := newShooter()
	s.Update(Triggers{MainDown: true, MainHeld: true}, 0)

	shot, ok := s.Update(Triggers{MainHeld: true}, 5)
	if !ok || shot.Force != 20 {
		t.Fatalf("expected auto fire at max force 20, got %+v %v", shot, ok)
	}
}

func TestShooting_AltChargesHigher(t *testing.T) {
	s := newShooter()
	s.Update(Triggers{AltDown: true, AltHeld: true}, 0)
	if _, ok := s.Update(Triggers{AltHeld: true, MainDown: true, MainHeld: true}, 1.5); ok {
		t.Fatal("alt gun is below its max, main trigger is ignored")
	}

	shot, ok := s.Update(Triggers{AltHeld: true}, 1)
	if !ok || shot.Gun != cfg.GunAlt || shot.Force != 30 {
		t.Fatalf("expected alt shot at 30, got %+v %v", shot, ok)
	}
}

func TestShooting_Cancel(t *testing.T) {
	s := newShooter()
	s.Update(Triggers{MainDown: true, MainHeld: true}, 0)
	s.Update(Triggers{MainHeld: true}, 0.5)
	s.Cancel()

	if s.Charging || s.ChargeFraction() != 0 {
		t.Fatal("cancel should drop the charge")
	}
	if _, ok := s.Update(Triggers{MainHeld: true}, 0.1); ok {
		t.Fatal("holding after cancel must not fire")
	}
}
