package physics

import (
	"github.com/elliotchance/orderedmap/v2"
)

// ContactTracker records which bodies currently touch each tagged sensor.
//
// Bodies are kept in the order their first live contact began, so Target
// resolves ties deterministically to the earliest contact. A body touching a
// sensor through several fixtures stays listed until the last one separates.
type ContactTracker struct {
	sensors map[string]*orderedmap.OrderedMap[BodyID, int]
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		sensors: make(map[string]*orderedmap.OrderedMap[BodyID, int]),
	}
}

// Begin records that body started touching the sensor tagged tag.
func (c *ContactTracker) Begin(tag string, body BodyID) {
	touching, ok := c.sensors[tag]
	if !ok {
		touching = orderedmap.NewOrderedMap[BodyID, int]()
		c.sensors[tag] = touching
	}
	n, _ := touching.Get(body)
	// Set keeps the original position for keys that already exist.
	touching.Set(body, n+1)
}

// End records that one contact between body and the sensor separated.
func (c *ContactTracker) End(tag string, body BodyID) {
	touching, ok := c.sensors[tag]
	if !ok {
		return
	}
	n, ok := touching.Get(body)
	if !ok {
		return
	}
	if n <= 1 {
		touching.Delete(body)
		return
	}
	touching.Set(body, n-1)
}

// Target returns the earliest-touching body not in exclude.
func (c *ContactTracker) Target(tag string, exclude BodySet) (BodyID, bool) {
	touching, ok := c.sensors[tag]
	if !ok {
		return NoBody, false
	}
	for el := touching.Front(); el != nil; el = el.Next() {
		if exclude.Has(el.Key) {
			continue
		}
		return el.Key, true
	}
	return NoBody, false
}

// Touching returns every body touching the sensor, earliest first.
func (c *ContactTracker) Touching(tag string) []BodyID {
	touching, ok := c.sensors[tag]
	if !ok {
		return nil
	}
	return touching.Keys()
}

// Reset forgets every contact.
func (c *ContactTracker) Reset() {
	clear(c.sensors)
}
