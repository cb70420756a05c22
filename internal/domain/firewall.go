package domain

type Flag string

const (
	FlagNegativePower Flag = "NEG_POWER"
	FlagSpike         Flag = "SPIKE"
)

// SpikeThreshold is the band power above which a reading is flagged as a spike.
const SpikeThreshold = 1e6

// CheckFirewall flags physically impossible band powers in a single snapshot.
// It keeps no memory of earlier snapshots.
func CheckFirewall(b BandPowers) []Flag {
	flags := []Flag{}

	values := b.Values()
	for _, v := range values {
		if v < 0 {
			flags = append(flags, FlagNegativePower)
			break
		}
	}
	for _, v := range values {
		if v > SpikeThreshold {
			flags = append(flags, FlagSpike)
			break
		}
	}

	return flags
}
