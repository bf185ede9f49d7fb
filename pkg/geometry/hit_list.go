package geometry

import (
	"github.com/WillDeJs/ray-tracing/pkg/core"
	"github.com/WillDeJs/ray-tracing/pkg/material"
)

// HitList is an ordered collection of shapes tested as a single shape.
// Every shape is tested on every query; there is no spatial index.
type HitList struct {
	shapes []Shape
}

// NewHitList creates a list holding the given shapes
func NewHitList(shapes ...Shape) *HitList {
	return &HitList{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape to the list
func (l *HitList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes
func (l *HitList) Len() int {
	return len(l.shapes)
}

// Shape returns the i-th shape in insertion order
func (l *HitList) Shape(i int) Shape {
	return l.shapes[i]
}

// Hit returns the nearest hit over all shapes. The upper bound shrinks to
// each accepted hit, so later shapes only win when strictly closer.
func (l *HitList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}
