package device

// A ResetPin is a simulated CPU reset pin. It only records levels; the
// simulated socket has no CPU model behind it.
type ResetPin struct {
	asserted    bool
	assertCount int
}

// NewResetPin creates a released reset pin.
func NewResetPin() *ResetPin {
	return &ResetPin{}
}

// Assert drives the pin to its active level.
func (p *ResetPin) Assert() {
	if !p.asserted {
		p.assertCount++
	}
	p.asserted = true
}

// Release returns the pin to its inactive level.
func (p *ResetPin) Release() {
	p.asserted = false
}

// Asserted reports the current level.
func (p *ResetPin) Asserted() bool {
	return p.asserted
}

// AssertCount returns how many falling edges the pin has seen.
func (p *ResetPin) AssertCount() int {
	return p.assertCount
}
