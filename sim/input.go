package sim

// Input is the held-key snapshot read once per tick. The shell rewrites it
// from the keyboard before every Step; the simulation never polls devices
// itself.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}
