package game

import (
	"econflow/internal/sim"
	"econflow/internal/synth"
)

// wireEffects hooks sound cues and camera shake to simulation events.
func wireEffects(bus *sim.EventBus, cam *Camera) {
	bus.Subscribe(sim.EventStageAdvanced, func(sim.Event) {
		PlaySound(synth.CueAdvance)
	})
	bus.Subscribe(sim.EventPhaseComplete, func(e sim.Event) {
		if e.Stage == sim.EndState {
			PlaySound(synth.CueEnd)
			return
		}
		PlaySound(synth.CueAdvance)
	})
	// Cue every third protester and every other strike.
	bus.Subscribe(sim.EventRichAttack, func(e sim.Event) {
		if e.Data%3 == 0 {
			PlaySound(synth.CueProtest)
		}
	})
	bus.Subscribe(sim.EventMachineAttack, func(e sim.Event) {
		if e.Data%2 == 0 {
			PlaySound(synth.CueStrike)
		}
	})
	collapse := func(sim.Event) {
		cam.AddShake(ShakeIntensity, ShakeDuration)
		PlaySound(synth.CueCollapse)
	}
	bus.Subscribe(sim.EventRichFallen, collapse)
	bus.Subscribe(sim.EventGovtFallen, collapse)
	bus.Subscribe(sim.EventReplication, func(sim.Event) {
		PlaySound(synth.CueReplicate)
	})
	bus.Subscribe(sim.EventReset, func(sim.Event) {
		cam.ShakeTimer = 0
		PlaySound(synth.CueReset)
	})
}
