package commands

import (
	"github.com/galaplate/creational/merch"
	"github.com/galaplate/creational/supports"
)

type MerchCatalogCommand struct {
	BaseCommand
}

// Catalog describes what one brand's factory produces.
type Catalog struct {
	Brand         merch.Brand        `json:"brand"`
	DisplayName   string             `json:"display_name"`
	NotebookPages int                `json:"notebook_pages"`
	HoodieSizes   []merch.HoodieSize `json:"hoodie_sizes"`
}

func (c *MerchCatalogCommand) GetSignature() string {
	return "merch:catalog"
}

func (c *MerchCatalogCommand) GetDescription() string {
	return "Show a brand's product catalog as JSON: merch:catalog [brand]"
}

func (c *MerchCatalogCommand) Execute(args []string) error {
	registry := merch.Global()

	brand := registry.DefaultBrand()
	if key := arg(args, 0); key != "" {
		parsed, err := merch.ParseBrand(key)
		if err != nil {
			return err
		}
		brand = parsed
	}

	factory, err := registry.Factory(brand)
	if err != nil {
		return err
	}

	return supports.Dump(c.out(), Catalog{
		Brand:         factory.Brand(),
		DisplayName:   factory.CreatePen().BrandName(),
		NotebookPages: factory.CreateNotebook().Pages(),
		HoodieSizes:   merch.HoodieSizes(),
	})
}
