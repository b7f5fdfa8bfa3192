package box2dworld

import (
	"github.com/ByteArena/box2d"
	"github.com/slothgame/sloth/physics"
)

// contactListener forwards sensor begin/end events into the world's tracker.
type contactListener struct {
	w *World
}

func (l *contactListener) BeginContact(contact box2d.B2ContactInterface) {
	l.w.sensorEvent(contact, l.w.contacts.Begin)
}

func (l *contactListener) EndContact(contact box2d.B2ContactInterface) {
	l.w.sensorEvent(contact, l.w.contacts.End)
}

func (l *contactListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (l *contactListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

func (w *World) sensorEvent(contact box2d.B2ContactInterface, record func(tag string, body physics.BodyID)) {
	fa, fb := contact.GetFixtureA(), contact.GetFixtureB()
	if tag, ok := w.sensors[fa]; ok {
		if id, ok := w.ids[fb.GetBody()]; ok {
			record(tag, id)
		}
	}
	if tag, ok := w.sensors[fb]; ok {
		if id, ok := w.ids[fa.GetBody()]; ok {
			record(tag, id)
		}
	}
}
