// Package response characterises streaming filters by driving them with
// test signals and recording their output.
//
//   - ImpulseResponse: output for a unit impulse
//   - StepResponse: output for a unit step
//   - MagnitudeResponse: |H(f)| from the FFT of the impulse response
//
// Filters that seed their state from the first samples need a warm-up of
// zeros before the excitation, see WithWarmup.
//
// # Usage
//
//	f, _ := average.NewMoving(make([]float64, 8))
//	mag, err := response.MagnitudeResponse(f, 256, response.WithWarmup(8))
//	fmt.Printf("DC gain = %.3f\n", mag[0])
package response
