package merch

// Factory creates one brand's product family. Every product a Factory returns reports the
// factory's Brand.
type Factory interface {
	Brand() Brand
	CreateNotebook() Notebook
	CreatePen() Pen
	// CreateHoodie passes size through unchanged. It returns ErrMissingSize for the zero
	// size and ErrInvalidSize for anything outside XS..XXL.
	CreateHoodie(size HoodieSize) (Hoodie, error)
}

// NewFactory resolves brand through the global registry.
func NewFactory(brand Brand) (Factory, error) {
	return Global().Factory(brand)
}
