// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gbkf_test

import (
	"fmt"

	"github.com/bpowers/gbkf"
)

func Example() {
	w := gbkf.NewWriter()
	w.SetSpecificationID(7)
	if err := w.SetKeyWidth(3); err != nil {
		panic(err)
	}

	if err := w.AddInts("POS", 0, gbkf.Int16, []int64{-10, 20, 30}); err != nil {
		panic(err)
	}
	if err := w.AddInts("POS", 1, gbkf.Int16, []int64{4, 5, 6}); err != nil {
		panic(err)
	}
	if err := w.AddFloats("MAS", 0, gbkf.Float64, []float64{1.5}); err != nil {
		panic(err)
	}

	data, err := w.Bytes(true)
	if err != nil {
		panic(err)
	}

	r, err := gbkf.NewReader(data)
	if err != nil {
		panic(err)
	}
	fmt.Println("specification id:", r.SpecificationID(), "entries:", r.EntryCount(), "intact:", r.VerifyIntegrity())

	keyed, err := r.KeyedValues()
	if err != nil {
		panic(err)
	}
	for _, e := range keyed["POS"] {
		fmt.Println(e.Key, e.InstanceID, e.Type, e.Ints)
	}
	fmt.Println(keyed["MAS"][0].Floats)

	// Output:
	// specification id: 7 entries: 3 intact: true
	// POS 0 int16 [-10 20 30]
	// POS 1 int16 [4 5 6]
	// [1.5]
}
