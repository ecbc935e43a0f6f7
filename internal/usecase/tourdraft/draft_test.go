package tourdraft

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WebMTour-Service/internal/domain"
	"github.com/m04kA/WebMTour-Service/pkg/ptr"
)

func validDraft() *Draft {
	return &Draft{
		Title:           "กระบี่ 4 เกาะ",
		Description:     "ดำน้ำตื้น",
		Location:        "กระบี่",
		Price:           ptr.Ptr(2500.0),
		DurationDays:    ptr.Ptr(1),
		MaxParticipants: ptr.Ptr(30),
	}
}

func TestDraft_Validate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(d *Draft)
		wantErr bool
	}{
		{name: "Valid", mutate: func(d *Draft) {}},
		{name: "Zero price is allowed", mutate: func(d *Draft) { d.Price = ptr.Ptr(0.0) }},
		{name: "Missing title", mutate: func(d *Draft) { d.Title = "" }, wantErr: true},
		{name: "Missing description", mutate: func(d *Draft) { d.Description = "  " }, wantErr: true},
		{name: "Missing location", mutate: func(d *Draft) { d.Location = "" }, wantErr: true},
		{name: "Missing price", mutate: func(d *Draft) { d.Price = nil }, wantErr: true},
		{name: "Missing duration", mutate: func(d *Draft) { d.DurationDays = nil }, wantErr: true},
		{name: "Zero duration", mutate: func(d *Draft) { d.DurationDays = ptr.Ptr(0) }, wantErr: true},
		{name: "Missing max participants", mutate: func(d *Draft) { d.MaxParticipants = nil }, wantErr: true},
		{name: "Negative price", mutate: func(d *Draft) { d.Price = ptr.Ptr(-1.0) }, wantErr: true},
		{
			name: "Round ends before start",
			mutate: func(d *Draft) {
				d.Dates = []Round{{StartDate: start, EndDate: start.AddDate(0, 0, -1)}}
			},
			wantErr: true,
		},
		{
			name: "Single day round",
			mutate: func(d *Draft) {
				d.Dates = []Round{{StartDate: start, EndDate: start}}
			},
		},
		{
			name: "Unknown round status",
			mutate: func(d *Draft) {
				status := domain.RoundStatus("sold_out")
				d.Dates = []Round{{StartDate: start, EndDate: start, Status: &status}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := d.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDraft)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDraft_Tour(t *testing.T) {
	d := validDraft()
	d.ImageURL = ptr.Ptr("")
	d.OwnerTour = ptr.Ptr("Krabi Sea Tour")

	tour := d.Tour(uuid.Nil, true)

	assert.True(t, tour.IsActive)
	assert.Nil(t, tour.ImageURL)
	assert.Equal(t, "Krabi Sea Tour", ptr.Value(tour.OwnerTour))
	assert.Equal(t, []string{}, tour.Highlights)

	d.IsActive = ptr.Ptr(false)
	assert.False(t, d.Tour(uuid.Nil, true).IsActive)
}

func TestDraft_Rounds(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	full := domain.RoundFull

	d := validDraft()
	d.Dates = []Round{
		{StartDate: start, EndDate: start.AddDate(0, 0, 2)},
		{StartDate: start.AddDate(0, 1, 0), EndDate: start.AddDate(0, 1, 2), Price: ptr.Ptr(3000.0), Status: &full},
	}

	rounds := d.Rounds(2500)

	require.Len(t, rounds, 2)
	assert.Equal(t, 2500.0, rounds[0].Price)
	assert.Equal(t, domain.RoundAvailable, rounds[0].Status)
	assert.Equal(t, 3000.0, rounds[1].Price)
	assert.Equal(t, domain.RoundFull, rounds[1].Status)
}

func TestDraft_HasDates(t *testing.T) {
	d := validDraft()
	assert.False(t, d.HasDates())

	d.Dates = []Round{}
	assert.True(t, d.HasDates())
}
