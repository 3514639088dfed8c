package artyecs

// Config holds global tuning knobs for newly created pools and tables.
var Config config = config{
	initialTableCapacity: 16,
	initialPoolCapacity:  64,
}

type config struct {
	initialTableCapacity int
	initialPoolCapacity  int
}

// SetInitialTableCapacity sets the dense-array capacity component tables
// are created with. Tables still grow geometrically past it.
func (c *config) SetInitialTableCapacity(n int) {
	if n > 0 {
		c.initialTableCapacity = n
	}
}

// SetInitialPoolCapacity sets the slot capacity entity pools are created
// with.
func (c *config) SetInitialPoolCapacity(n int) {
	if n > 0 {
		c.initialPoolCapacity = n
	}
}
