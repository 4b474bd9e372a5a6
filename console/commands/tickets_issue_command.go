package commands

import (
	"fmt"
	"strconv"

	"github.com/galaplate/creational/config"
	"github.com/galaplate/creational/factory"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/tickets"
)

const defaultBatchSize = 10

type TicketsIssueCommand struct {
	BaseCommand
}

type IssueRequest struct {
	Kind  string  `json:"kind" validate:"required,oneof=cinema theatre"`
	Price float64 `json:"price"`
	Count int     `json:"count" validate:"gte=1,lte=1000"`
}

func (c *TicketsIssueCommand) GetSignature() string {
	return "tickets:issue"
}

func (c *TicketsIssueCommand) GetDescription() string {
	return "Issue a batch of tickets for a show: tickets:issue <cinema|theatre> [price] [count]"
}

func (c *TicketsIssueCommand) Execute(args []string) error {
	req, err := c.parse(args)
	if err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	kind, err := tickets.ParseKind(req.Kind)
	if err != nil {
		return err
	}

	show, err := tickets.NewShow(kind)
	if err != nil {
		return err
	}
	show.SetTicketPrice(req.Price)

	batch := factory.NewBaseFactory(func(seq int64) tickets.Ticket {
		return show.CreateTicket(fmt.Sprintf("NAME%d", seq-1))
	})

	for _, ticket := range batch.BuildMany(req.Count) {
		if err := ticket.Print(c.out()); err != nil {
			return err
		}
	}

	logger.Info("Tickets issued", map[string]any{
		"kind":  string(kind),
		"price": req.Price,
		"count": req.Count,
	})
	return nil
}

func (c *TicketsIssueCommand) parse(args []string) (IssueRequest, error) {
	req := IssueRequest{
		Kind:  arg(args, 0),
		Count: defaultBatchSize,
	}
	if req.Kind == "" {
		req.Kind = c.AskChoice("Select show", []string{string(tickets.KindCinema), string(tickets.KindTheatre)})
	}

	req.Price = config.ConfigFloat(fmt.Sprintf("shows.%s.ticket_price", req.Kind))
	if raw := arg(args, 1); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid price %q: %w", raw, err)
		}
		req.Price = price
	}

	if n := config.ConfigInt("shows.default_batch"); n > 0 {
		req.Count = n
	}
	if raw := arg(args, 2); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid count %q: %w", raw, err)
		}
		req.Count = count
	}

	return req, nil
}
