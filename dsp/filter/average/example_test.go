package average_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/filter/average"
)

func ExampleMoving() {
	m, err := average.NewMoving(make([]float64, 4))
	if err != nil {
		panic(err)
	}
	for _, v := range []float64{3, 6, 9, 12} {
		m.In(v)
	}
	fmt.Println(m.Out())
	// Output: 9
}

func ExampleExponential() {
	e, err := average.NewExponential[float64](3, 0)
	if err != nil {
		panic(err)
	}
	for _, v := range []float64{10, 20, 20} {
		e.In(v)
	}
	fmt.Println(e.Out())
	// Output: 17.5
}
