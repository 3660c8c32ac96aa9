package entity

// Verdict is the outcome of a lyrics plausibility check,
// naming the rule which rejected the text, if any
type Verdict struct {
	Plausible bool
	Rule      string
}

func Accept() Verdict {
	return Verdict{Plausible: true}
}

func Reject(rule string) Verdict {
	return Verdict{Rule: rule}
}
