package merch

import "io"

const endavaNotebookPages = 50

// EndavaFactory produces Endava branded products only.
type EndavaFactory struct{}

func NewEndavaFactory() Factory {
	return EndavaFactory{}
}

func (EndavaFactory) Brand() Brand {
	return Endava
}

func (EndavaFactory) CreateNotebook() Notebook {
	return NewEndavaNotebook()
}

func (EndavaFactory) CreatePen() Pen {
	return NewEndavaPen()
}

func (EndavaFactory) CreateHoodie(size HoodieSize) (Hoodie, error) {
	hoodie, err := NewEndavaHoodie(size)
	if err != nil {
		return nil, err
	}
	return hoodie, nil
}

type EndavaNotebook struct {
	pages int
}

func NewEndavaNotebook() *EndavaNotebook {
	return &EndavaNotebook{pages: endavaNotebookPages}
}

func (n *EndavaNotebook) Purchase(w io.Writer) error {
	return purchase(w, Endava, kindNotebook)
}

func (n *EndavaNotebook) BrandName() string {
	return Endava.DisplayName()
}

func (n *EndavaNotebook) Pages() int {
	return n.pages
}

type EndavaPen struct{}

func NewEndavaPen() *EndavaPen {
	return &EndavaPen{}
}

func (p *EndavaPen) Purchase(w io.Writer) error {
	return purchase(w, Endava, kindPen)
}

func (p *EndavaPen) BrandName() string {
	return Endava.DisplayName()
}

type EndavaHoodie struct {
	size HoodieSize
}

// NewEndavaHoodie fails with ErrMissingSize when size is the zero value.
func NewEndavaHoodie(size HoodieSize) (*EndavaHoodie, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &EndavaHoodie{size: size}, nil
}

func (h *EndavaHoodie) Purchase(w io.Writer) error {
	return purchase(w, Endava, kindHoodie)
}

func (h *EndavaHoodie) BrandName() string {
	return Endava.DisplayName()
}

func (h *EndavaHoodie) Size() HoodieSize {
	return h.size
}
