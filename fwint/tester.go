package fwint

// PrimalityTest is a primality test bound to its parameters, so that
// callers can select a test by value (e.g. from a command-line flag).
type PrimalityTest interface {
	// Name returns a short identifier for the test.
	Name() string

	// Test reports whether |n| passes the test.
	Test(n *Int) (bool, error)
}

type roundsTest struct {
	name       string
	confidence int
	rng        Rand
	run        func(n *Int, confidence int, rng Rand) (bool, error)
}

func (t *roundsTest) Name() string {
	return t.name
}

func (t *roundsTest) Test(n *Int) (bool, error) {
	return t.run(n, t.confidence, t.rng)
}

// NewFermatTest returns a test running FermatLittleTest(confidence, rng).
func NewFermatTest(confidence int, rng Rand) PrimalityTest {
	return &roundsTest{"fermat", confidence, rng, (*Int).FermatLittleTest}
}

// NewRabinMillerTest returns a test running RabinMillerTest(confidence, rng).
func NewRabinMillerTest(confidence int, rng Rand) PrimalityTest {
	return &roundsTest{"rabin-miller", confidence, rng, (*Int).RabinMillerTest}
}

// NewSolovayStrassenTest returns a test running
// SolovayStrassenTest(confidence, rng).
func NewSolovayStrassenTest(confidence int, rng Rand) PrimalityTest {
	return &roundsTest{"solovay-strassen", confidence, rng, (*Int).SolovayStrassenTest}
}

type plainTest struct {
	name string
	run  func(n *Int) (bool, error)
}

func (t *plainTest) Name() string {
	return t.name
}

func (t *plainTest) Test(n *Int) (bool, error) {
	return t.run(n)
}

// NewLucasTest returns a test running LucasStrongTest.
func NewLucasTest() PrimalityTest {
	return &plainTest{"lucas", (*Int).LucasStrongTest}
}

// NewBPSWTest returns a test running IsProbablePrime.
func NewBPSWTest() PrimalityTest {
	return &plainTest{"bpsw", (*Int).IsProbablePrime}
}

// TestNames lists the names accepted by NewTestByName.
var TestNames = []string{"bpsw", "fermat", "lucas", "rabin-miller", "solovay-strassen"}

// NewTestByName returns the test with the given name; the randomized
// tests use confidence rounds drawn from rng. It returns
// ErrInvalidArgument for an unknown name.
func NewTestByName(name string, confidence int, rng Rand) (PrimalityTest, error) {
	switch name {
	case "bpsw":
		return NewBPSWTest(), nil
	case "fermat":
		return NewFermatTest(confidence, rng), nil
	case "lucas":
		return NewLucasTest(), nil
	case "rabin-miller":
		return NewRabinMillerTest(confidence, rng), nil
	case "solovay-strassen":
		return NewSolovayStrassenTest(confidence, rng), nil
	}
	return nil, failf("NewTestByName", ErrInvalidArgument, "unknown test %q", name)
}
