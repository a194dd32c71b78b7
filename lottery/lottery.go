package lottery

// Draw shape for the Baloto-style sorteo: five primary balotas plus one
// independently ranged bonus balota.
const (
	DrawSize     = 6
	PrimaryCount = 5

	PrimaryMin = 1
	PrimaryMax = 43
	BonusMin   = 1
	BonusMax   = 16
)

// ValidateDraw checks that numbers is a well-formed draw: exactly 6 values,
// the first 5 in [1,43] and the 6th in [1,16]. The same rule applies to
// user-saved sorteos and ingested historical rows.
func ValidateDraw(numbers []int) error {
	if len(numbers) != DrawSize {
		return &ValidationError{
			Position: -1,
			Value:    len(numbers),
			Reason:   "draw must contain exactly 6 numbers",
		}
	}
	for i := 0; i < PrimaryCount; i++ {
		if numbers[i] < PrimaryMin || numbers[i] > PrimaryMax {
			return &ValidationError{
				Position: i,
				Value:    numbers[i],
				Reason:   "primary number must be between 1 and 43",
			}
		}
	}
	if numbers[PrimaryCount] < BonusMin || numbers[PrimaryCount] > BonusMax {
		return &ValidationError{
			Position: PrimaryCount,
			Value:    numbers[PrimaryCount],
			Reason:   "bonus number must be between 1 and 16",
		}
	}
	return nil
}
