package math3d

import (
	"testing"
)

func BenchmarkVec3Add(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Add(v2)
	}
}

func BenchmarkVec3AddAssign(b *testing.B) {
	v := V3(1, 2, 3)
	d := V3(1e-9, 1e-9, 1e-9)

	for b.Loop() {
		v.AddAssign(d)
	}
}

func BenchmarkVec3Distance(b *testing.B) {
	p := V3(-7.5, 0.25, 12)
	q := V3(3, -4, 1e3)

	for b.Loop() {
		_ = p.Distance(q)
	}
}

func BenchmarkHypot3Huge(b *testing.B) {
	for b.Loop() {
		_ = Hypot3(3e300, -4e300, 1.2e301)
	}
}

func BenchmarkVec3Len(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Len()
	}
}

func BenchmarkVec3LenSq(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.LenSq()
	}
}

func BenchmarkVec3String(b *testing.B) {
	v := V3(1.5, -2, 1e-7)

	for b.Loop() {
		_ = v.String()
	}
}
