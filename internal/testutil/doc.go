// Package testutil provides seeded random extents for tests and benchmarks.
//
//	rng := testutil.NewRNG(4711)
//	a := testutil.Integers[int32](rng, 1000)
//	b := testutil.Clone(a)
//	testutil.Corrupt(b, 999) // b now differs from a at index 999 only
package testutil
