package commands

import "github.com/galaplate/creational/merch"

type MerchBrandsCommand struct {
	BaseCommand
}

func (c *MerchBrandsCommand) GetSignature() string {
	return "merch:brands"
}

func (c *MerchBrandsCommand) GetDescription() string {
	return "List brands with a merchandise factory"
}

func (c *MerchBrandsCommand) Execute(args []string) error {
	registry := merch.Global()
	for _, brand := range registry.Brands() {
		marker := " "
		if brand == registry.DefaultBrand() {
			marker = "*"
		}
		c.Printf("%s %s (%s)\n", marker, brand, brand.DisplayName())
	}
	return nil
}
