package tickets

import (
	"fmt"

	"github.com/galaplate/creational/logger"
)

// Show sells tickets. Each variant decides which Ticket type CreateTicket returns.
type Show interface {
	TicketPrice() float64
	// SetTicketPrice replaces the price used for tickets created from now on.
	// The value is not validated.
	SetTicketPrice(price float64)
	CreateTicket(customerName string) Ticket
}

// pricing is the state shared by every show variant. The zero value has price 0.
type pricing struct {
	ticketPrice float64
}

func (p *pricing) TicketPrice() float64 {
	return p.ticketPrice
}

func (p *pricing) SetTicketPrice(price float64) {
	p.ticketPrice = price
}

type CinemaShow struct {
	pricing
}

func NewCinemaShow() *CinemaShow {
	return &CinemaShow{}
}

func (s *CinemaShow) CreateTicket(customerName string) Ticket {
	t := NewCinemaTicket(customerName, s.ticketPrice)
	logIssued(t)
	return t
}

type TheatreShow struct {
	pricing
}

func NewTheatreShow() *TheatreShow {
	return &TheatreShow{}
}

func (s *TheatreShow) CreateTicket(customerName string) Ticket {
	t := NewTheatreTicket(customerName, s.ticketPrice)
	logIssued(t)
	return t
}

// NewShow builds an empty show of the given kind.
func NewShow(kind Kind) (Show, error) {
	switch kind {
	case KindCinema:
		return NewCinemaShow(), nil
	case KindTheatre:
		return NewTheatreShow(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func logIssued(t Ticket) {
	logger.Debug("Ticket issued", map[string]any{
		"id":       t.ID().String(),
		"kind":     string(t.Kind()),
		"customer": t.CustomerName(),
		"price":    t.Price(),
	})
}
