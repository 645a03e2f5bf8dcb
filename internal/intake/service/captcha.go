package service

import (
	"fmt"
	"strings"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/pkg/cryptox"
)

const (
	// Default inclusive operand range for generated questions.
	DefaultChallengeMin = 1
	DefaultChallengeMax = 20

	challengePrefix    = "What is "
	challengeSuffix    = "?"
	challengeSeparator = " + "
)

// MathChallengeService generates and verifies simple arithmetic
// challenges. It is stateless: the answer is recomputed from the
// question text the client echoes back, so the service survives
// process restarts and multi-instance deployments. The challenge only
// gates the request for an emailed code; the code itself is the real
// second factor.
type MathChallengeService struct {
	Min int
	Max int
}

func NewMathChallengeService(min, max int) *MathChallengeService {
	if min <= 0 || max < min {
		min, max = DefaultChallengeMin, DefaultChallengeMax
	}
	return &MathChallengeService{Min: min, Max: max}
}

// Generate draws two independent uniform operands from the configured
// range and returns the formatted question with its sum.
func (s *MathChallengeService) Generate() (domain.MathChallenge, error) {
	a, err := cryptox.RandomInt(s.Min, s.Max)
	if err != nil {
		return domain.MathChallenge{}, fmt.Errorf("failed to draw challenge operand: %w", err)
	}
	b, err := cryptox.RandomInt(s.Min, s.Max)
	if err != nil {
		return domain.MathChallenge{}, fmt.Errorf("failed to draw challenge operand: %w", err)
	}

	return domain.MathChallenge{
		Question: fmt.Sprintf("%s%d%s%d%s", challengePrefix, a, challengeSeparator, b, challengeSuffix),
		Answer:   a + b,
	}, nil
}

// Verify recomputes the sum from the embedded operands and compares it
// to the claimed answer. It fails closed: any malformed prefix, suffix,
// separator, or operand yields false, never an error.
func (s *MathChallengeService) Verify(question string, claimedAnswer int) bool {
	body, ok := strings.CutPrefix(question, challengePrefix)
	if !ok {
		return false
	}
	body, ok = strings.CutSuffix(body, challengeSuffix)
	if !ok {
		return false
	}

	left, right, ok := strings.Cut(body, challengeSeparator)
	if !ok {
		return false
	}

	a, ok := parseOperand(left)
	if !ok {
		return false
	}
	b, ok := parseOperand(right)
	if !ok {
		return false
	}

	return a+b == claimedAnswer
}

// parseOperand accepts unsigned decimal integers only. strconv.Atoi is
// too permissive here: it would admit signs and let "1 + 2 + 3" slip
// through as a signed right operand.
func parseOperand(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
