package slotset

// Frequency returns the centre frequency, in THz, of the 12.5 GHz-wide slot
// identified by id. The core never consults this itself — numerology belongs
// to report formatting, which lives outside this module — but it is kept
// here, tested, as the single place the constant is defined.
func Frequency(id int) float64 {
	const baseTHz = 193.1
	const slotWidthTHz = 0.0125
	return baseTHz + slotWidthTHz*float64(id)
}
