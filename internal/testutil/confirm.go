package testutil

// FakeConfirmer answers confirmation prompts with a fixed value.
type FakeConfirmer struct {
	Answer bool
	Err    error

	// Messages records every prompt shown, in order.
	Messages []string
}

// Confirm records message and returns Answer, Err.
func (c *FakeConfirmer) Confirm(message string) (bool, error) {
	c.Messages = append(c.Messages, message)
	return c.Answer, c.Err
}
