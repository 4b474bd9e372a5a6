package merch

import (
	"fmt"
	"io"

	"github.com/galaplate/creational/logger"
)

// Product is anything a brand sells.
type Product interface {
	// Purchase writes a confirmation naming the brand to w.
	Purchase(w io.Writer) error
	BrandName() string
}

type Notebook interface {
	Product
	Pages() int
}

type Pen interface {
	Product
}

type Hoodie interface {
	Product
	Size() HoodieSize
}

const (
	kindNotebook = "notebook"
	kindPen      = "pen"
	kindHoodie   = "hoodie"
)

func purchase(w io.Writer, brand Brand, kind string) error {
	if _, err := fmt.Fprintf(w, "You purchased a new %s %s.\n", brand.DisplayName(), kind); err != nil {
		return err
	}

	logger.Info("Product purchased", map[string]any{
		"brand": brand.DisplayName(),
		"kind":  kind,
	})
	return nil
}
