package commands

type ListCommand struct {
	BaseCommand
	Commands func() []Command
}

func (c *ListCommand) GetSignature() string {
	return "list"
}

func (c *ListCommand) GetDescription() string {
	return "List all available commands"
}

func (c *ListCommand) Execute(args []string) error {
	c.Printf("Available commands:\n")
	if c.Commands == nil {
		return nil
	}
	for _, cmd := range c.Commands() {
		c.Printf("  %-16s %s\n", cmd.GetSignature(), cmd.GetDescription())
	}
	return nil
}
