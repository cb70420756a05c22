package ports

// RandomSource returns pseudo-random numbers in [0, 1).
type RandomSource interface {
	Float64() float64
}
