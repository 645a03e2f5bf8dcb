package domain

// MathChallenge is a pure value pair. The question text is the only
// state carried by the client; the answer is re-derived from the text
// at verify time, so nothing is persisted server-side.
type MathChallenge struct {
	Question string // always of the shape "What is {a} + {b}?"
	Answer   int    // a + b
}
