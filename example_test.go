package seqeq_test

import (
	"fmt"

	"github.com/hupe1980/seqeq"
)

func ExampleEqual() {
	fmt.Println(seqeq.Equal([]int32{1, 2, 3, 4}, []int32{1, 2, 3, 4}))
	fmt.Println(seqeq.Equal([]int32{1, 2, 3, 4}, []int32{1, 2, 9, 4}))
	// Output:
	// true
	// false
}

func ExampleFor() {
	s := seqeq.For[uint16](seqeq.WithISA(seqeq.ISAAVX2))
	fmt.Println(s.Strategy(), s.Lanes())
	// Output: vectorized 16
}

func ExampleSequence_Mismatches() {
	set, err := seqeq.Mismatches([]byte("sequence"), []byte("sequoias"))
	if err != nil {
		panic(err)
	}
	fmt.Println(set.ToArray())
	// Output: [4 5 6 7]
}

func ExampleEqualUintptrs() {
	ok, err := seqeq.EqualUintptrs([]uintptr{0xA000, 0xB000}, []uintptr{0xA000, 0xC000})
	fmt.Println(ok, err)
	// Output: false <nil>
}
