package tickets

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

var ErrUnknownKind = errors.New("unknown show kind")

// Kind identifies a ticket/show variant.
type Kind string

const (
	KindCinema  Kind = "cinema"
	KindTheatre Kind = "theatre"
)

// Label is the printed ticket heading.
func (k Kind) Label() string {
	switch k {
	case KindCinema:
		return "Cinema"
	case KindTheatre:
		return "Theatre"
	}
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCinema, KindTheatre:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func Kinds() []Kind {
	return []Kind{KindCinema, KindTheatre}
}

// Ticket is an immutable admission issued by a Show.
type Ticket interface {
	ID() uuid.UUID
	Kind() Kind
	CustomerName() string
	Price() float64
	// Print writes "<Label> ticket for <name> | Price: <price>" to w.
	Print(w io.Writer) error
}

// admission holds the fields every ticket variant carries.
type admission struct {
	id           uuid.UUID
	customerName string
	price        float64
}

func newAdmission(customerName string, price float64) admission {
	return admission{
		id:           uuid.New(),
		customerName: customerName,
		price:        price,
	}
}

func (a admission) ID() uuid.UUID {
	return a.id
}

func (a admission) CustomerName() string {
	return a.customerName
}

func (a admission) Price() float64 {
	return a.price
}

func (a admission) print(w io.Writer, kind Kind) error {
	_, err := fmt.Fprintf(w, "%s ticket for %s | Price: %s\n", kind.Label(), a.customerName, FormatPrice(a.price))
	return err
}

// FormatPrice renders p in its shortest decimal form: 12.3, 20, -1.5.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

type CinemaTicket struct {
	admission
}

func NewCinemaTicket(customerName string, price float64) *CinemaTicket {
	return &CinemaTicket{admission: newAdmission(customerName, price)}
}

func (t *CinemaTicket) Kind() Kind {
	return KindCinema
}

func (t *CinemaTicket) Print(w io.Writer) error {
	return t.print(w, KindCinema)
}

type TheatreTicket struct {
	admission
}

func NewTheatreTicket(customerName string, price float64) *TheatreTicket {
	return &TheatreTicket{admission: newAdmission(customerName, price)}
}

func (t *TheatreTicket) Kind() Kind {
	return KindTheatre
}

func (t *TheatreTicket) Print(w io.Writer) error {
	return t.print(w, KindTheatre)
}
