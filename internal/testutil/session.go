package testutil

// DefaultSession is the token used when a test does not name one.
const DefaultSession = "test-session-default"

// FixedSessionGenerator always returns the same session token, so two runs
// of a scenario produce byte-identical journals.
//
// Implements intent.SessionGenerator.
type FixedSessionGenerator struct {
	token string
}

// NewFixedSessionGenerator creates a generator for token.
// An empty token falls back to DefaultSession.
func NewFixedSessionGenerator(token string) *FixedSessionGenerator {
	if token == "" {
		token = DefaultSession
	}
	return &FixedSessionGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedSessionGenerator) Generate() string {
	return g.token
}
