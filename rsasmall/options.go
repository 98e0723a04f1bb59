package rsasmall

import (
	"github.com/benjivesterby/go-fwint/internal/logging"
)

// DefaultConfidence is the number of Rabin-Miller rounds applied to each
// prime candidate unless WithConfidence says otherwise.
const DefaultConfidence = 20

type config struct {
	confidence int
	logger     logging.Logger
}

// Option configures GenerateKeys.
type Option func(*config)

// WithConfidence sets the number of Rabin-Miller rounds used to accept
// each prime factor.
func WithConfidence(rounds int) Option {
	return func(c *config) {
		c.confidence = rounds
	}
}

// WithLogger sets the logger used to report progress. Secret values are
// never logged.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		confidence: DefaultConfidence,
		logger:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
