package console

import "github.com/galaplate/creational/console/commands"

// RegisterCommands registers all available console commands.
func (k *Kernel) RegisterCommands() {
	k.Register(&commands.ListCommand{Commands: k.Commands})

	// Abstract factory
	k.Register(&commands.MerchBrandsCommand{})
	k.Register(&commands.MerchCatalogCommand{})
	k.Register(&commands.MerchPurchaseCommand{})

	// Factory method
	k.Register(&commands.TicketsIssueCommand{})
}
