package textshape

// Fixed16 is a 16.16 fixed-point value, the unit shaping backends report
// glyph offsets and advances in. One pixel is 65536 units.
//
// The core exposes float pixels everywhere; Fixed16 exists so adapters can
// carry backend units losslessly up to the final conversion.
type Fixed16 int32

// fixed16One is the Fixed16 representation of 1.0.
const fixed16One = 1 << 16

// Fixed16FromFloat converts float pixels to 16.16 fixed point.
// The fractional part beyond 1/65536 is truncated toward zero.
func Fixed16FromFloat(v float64) Fixed16 {
	return Fixed16(v * fixed16One)
}

// Float converts v to float pixels by dividing by 65536.
func (v Fixed16) Float() float64 {
	return float64(v) / fixed16One
}
