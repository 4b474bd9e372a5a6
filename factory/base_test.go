package factory

import (
	"fmt"
	"testing"

	"github.com/galaplate/creational/tickets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Factory[string] = (*BaseFactory[string])(nil)

func TestBuildSequence(t *testing.T) {
	f := NewBaseFactory(func(seq int64) string { return fmt.Sprintf("NAME%d", seq) })

	assert.Equal(t, "NAME1", f.Build())
	assert.Equal(t, []string{"NAME2", "NAME3"}, f.BuildMany(2))
	assert.Empty(t, f.BuildMany(0))

	f.Reset()
	assert.Equal(t, "NAME1", f.Build())
}

func TestBuildManyTickets(t *testing.T) {
	show := tickets.NewTheatreShow()
	show.SetTicketPrice(22.3)

	f := NewBaseFactory(func(seq int64) tickets.Ticket {
		return show.CreateTicket(fmt.Sprintf("NAME%d", seq))
	})

	batch := f.BuildMany(10)
	require.Len(t, batch, 10)
	show.SetTicketPrice(20)

	for i, ticket := range batch {
		assert.Equal(t, fmt.Sprintf("NAME%d", i+1), ticket.CustomerName())
		assert.Equal(t, 22.3, ticket.Price())
		assert.Equal(t, tickets.KindTheatre, ticket.Kind())
	}
	assert.Equal(t, 20.0, f.Build().Price())
}
