package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedDescription = `Included Hotels:
Grand Palace Hotel (5★)
• Deluxe Room - $120.50/night (Max: 2 guests)
• Family Suite - $210/night (Max: 4 guests)
Seaside Resort (4★)
• Standard Room - $85/night (Max: 2 guests)

Included Tours:
• Old Town Walking Tour - $35
• Desert Safari - $120.99
`

func TestParseLegacyDescription(t *testing.T) {
	data, ok := ParseLegacyDescription(generatedDescription)
	require.True(t, ok)

	require.Len(t, data.Hotels, 2)
	assert.Equal(t, "Grand Palace Hotel", data.Hotels[0].Name)
	assert.Equal(t, 5, data.Hotels[0].Stars)
	require.Len(t, data.Hotels[0].Rooms, 2)
	assert.Equal(t, "Deluxe Room", data.Hotels[0].Rooms[0].Type)
	assert.Equal(t, int64(12050), data.Hotels[0].Rooms[0].PricePerNight)
	assert.Equal(t, 2, data.Hotels[0].Rooms[0].MaxOccupancy)
	assert.Equal(t, int64(21000), data.Hotels[0].Rooms[1].PricePerNight)
	assert.Equal(t, 4, data.Hotels[0].Rooms[1].MaxOccupancy)

	assert.Equal(t, "Seaside Resort", data.Hotels[1].Name)
	assert.Equal(t, 4, data.Hotels[1].Stars)
	require.Len(t, data.Hotels[1].Rooms, 1)

	require.Len(t, data.Tours, 2)
	assert.Equal(t, "Old Town Walking Tour", data.Tours[0].Name)
	assert.Equal(t, int64(3500), data.Tours[0].Price)
	assert.Equal(t, "Desert Safari", data.Tours[1].Name)
	assert.Equal(t, int64(12099), data.Tours[1].Price)
}

func TestParseLegacyDescriptionDriftedText(t *testing.T) {
	// hand-edited description no longer matching the generated format
	_, ok := ParseLegacyDescription("A wonderful week in Rome with breakfast included.")
	assert.False(t, ok)

	_, ok = ParseLegacyDescription("")
	assert.False(t, ok)
}

func TestParseLegacyDescriptionRoomWithoutHotel(t *testing.T) {
	data, ok := ParseLegacyDescription(`• Orphan Room - $50/night (Max: 2 guests)
Lonely Hotel (3★)`)
	require.True(t, ok)
	require.Len(t, data.Hotels, 1)
	assert.Empty(t, data.Hotels[0].Rooms)
}

func TestParseLegacyDescriptionSingleGuest(t *testing.T) {
	data, ok := ParseLegacyDescription(`City Inn (3★)
• Single Room - $60/night (Max: 1 guest)`)
	require.True(t, ok)
	require.Len(t, data.Hotels[0].Rooms, 1)
	assert.Equal(t, 1, data.Hotels[0].Rooms[0].MaxOccupancy)
}
