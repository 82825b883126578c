package tally

// Sign is the three-way classification of an accumulated total.
type Sign int

const (
	Zero Sign = iota
	Positive
	Negative
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Zero"
	}
}

// Classify maps n to Positive, Negative or Zero, checked in that order.
func Classify(n int) Sign {
	switch {
	case n > 0:
		return Positive
	case n < 0:
		return Negative
	default:
		return Zero
	}
}
