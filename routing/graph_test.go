package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/u0927156/MBTAProject/network"
)

func TestNeighbors(t *testing.T) {
	lines, stops := cycleNetwork()

	assert.Equal(t, []string{"B", "C"}, Neighbors("A", lines, stops))
	assert.Equal(t, []string{"B", "A", "D"}, Neighbors("C", lines, stops))
	assert.Empty(t, Neighbors("E", lines, stops))
	assert.Empty(t, Neighbors("Missing", lines, stops))
}

func TestSharedStops(t *testing.T) {
	lines, stops := network.BuildIndices([]network.Line{
		line("Orange", "Oak Grove", "State", "Downtown Crossing", "Forest Hills"),
		line("Red", "Alewife", "Park Street", "Downtown Crossing"),
		line("Blue", "Wonderland", "State"),
	})

	assert.Equal(t, []string{"Downtown Crossing"}, SharedStops("Orange", "Red", lines, stops))
	assert.Equal(t, []string{"State"}, SharedStops("Orange", "Blue", lines, stops))
	assert.Empty(t, SharedStops("Red", "Blue", lines, stops))
}

func TestTransferPoints(t *testing.T) {
	lines, stops := network.BuildIndices([]network.Line{
		line("Blue", "Wonderland", "State", "Government Center"),
		line("Orange", "Oak Grove", "State", "Downtown Crossing"),
		line("Red", "Downtown Crossing", "Park Street", "Ashmont"),
		line("Green-B", "Government Center", "Park Street", "Boston College"),
	})

	res, err := FindRoute("Wonderland", "Ashmont", lines, stops)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Blue", "Orange", "Red"}, res.Lines)

	transfers := TransferPoints(res, lines, stops)
	assert.Equal(t, []Transfer{
		{From: "Blue", To: "Orange", Stops: []string{"State"}},
		{From: "Orange", To: "Red", Stops: []string{"Downtown Crossing"}},
	}, transfers)

	single := Result{State: Found, Lines: []string{"Red"}}
	assert.Nil(t, TransferPoints(single, lines, stops))
	assert.Nil(t, TransferPoints(Result{State: Exhausted}, lines, stops))
}
