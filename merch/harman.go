package merch

import "io"

const harmanNotebookPages = 100

// HarmanFactory produces Harman branded products only.
type HarmanFactory struct{}

func NewHarmanFactory() Factory {
	return HarmanFactory{}
}

func (HarmanFactory) Brand() Brand {
	return Harman
}

func (HarmanFactory) CreateNotebook() Notebook {
	return NewHarmanNotebook()
}

func (HarmanFactory) CreatePen() Pen {
	return NewHarmanPen()
}

func (HarmanFactory) CreateHoodie(size HoodieSize) (Hoodie, error) {
	hoodie, err := NewHarmanHoodie(size)
	if err != nil {
		return nil, err
	}
	return hoodie, nil
}

type HarmanNotebook struct {
	pages int
}

func NewHarmanNotebook() *HarmanNotebook {
	return &HarmanNotebook{pages: harmanNotebookPages}
}

func (n *HarmanNotebook) Purchase(w io.Writer) error {
	return purchase(w, Harman, kindNotebook)
}

func (n *HarmanNotebook) BrandName() string {
	return Harman.DisplayName()
}

func (n *HarmanNotebook) Pages() int {
	return n.pages
}

type HarmanPen struct{}

func NewHarmanPen() *HarmanPen {
	return &HarmanPen{}
}

func (p *HarmanPen) Purchase(w io.Writer) error {
	return purchase(w, Harman, kindPen)
}

func (p *HarmanPen) BrandName() string {
	return Harman.DisplayName()
}

type HarmanHoodie struct {
	size HoodieSize
}

// NewHarmanHoodie fails with ErrMissingSize when size is the zero value.
func NewHarmanHoodie(size HoodieSize) (*HarmanHoodie, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &HarmanHoodie{size: size}, nil
}

func (h *HarmanHoodie) Purchase(w io.Writer) error {
	return purchase(w, Harman, kindHoodie)
}

func (h *HarmanHoodie) BrandName() string {
	return Harman.DisplayName()
}

func (h *HarmanHoodie) Size() HoodieSize {
	return h.size
}
