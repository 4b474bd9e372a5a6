package commands

import (
	"errors"
	"fmt"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/merch"
	"github.com/galaplate/creational/supports"
)

type MerchPurchaseCommand struct {
	BaseCommand
}

type PurchaseRequest struct {
	Brand string `json:"brand" validate:"required,brand"`
	Size  string `json:"size" validate:"required,hoodie_size"`
}

func (c *MerchPurchaseCommand) GetSignature() string {
	return "merch:purchase"
}

func (c *MerchPurchaseCommand) GetDescription() string {
	return "Buy a hoodie, a notebook and a pen from one brand: merch:purchase [brand] [size]"
}

func (c *MerchPurchaseCommand) Execute(args []string) error {
	req := PurchaseRequest{
		Brand: arg(args, 0),
		Size:  arg(args, 1),
	}

	if req.Brand == "" {
		req.Brand = c.AskChoice("Select brand", brandChoices())
	}
	if req.Size == "" {
		req.Size = config.ConfigStringOr("merch.hoodie_size", merch.M.String())
	}

	if err := c.Validate(req); err != nil {
		var validationErr *supports.ValidationError
		if errors.As(err, &validationErr) {
			if _, bad := validationErr.Errors["brand"]; bad {
				return fmt.Errorf("%w: %q", merch.ErrUnknownBrand, req.Brand)
			}
		}
		return err
	}

	factory, err := merch.Global().Factory(merch.Brand(req.Brand))
	if err != nil {
		return err
	}

	size, err := merch.ParseHoodieSize(req.Size)
	if err != nil {
		return err
	}

	hoodie, err := factory.CreateHoodie(size)
	if err != nil {
		return err
	}

	for _, product := range []merch.Product{hoodie, factory.CreateNotebook(), factory.CreatePen()} {
		if err := product.Purchase(c.out()); err != nil {
			return err
		}
	}
	return nil
}

func brandChoices() []string {
	brands := merch.Global().Brands()
	choices := make([]string, 0, len(brands))
	for _, b := range brands {
		choices = append(choices, string(b))
	}
	return choices
}
