//go:build unit

package rental_test

import (
	"strings"
	"testing"
	"time"

	"car-rental/internal/domain/rental"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, from, to string) rental.Period {
	t.Helper()
	p, err := rental.ParsePeriod(from, to)
	require.NoError(t, err)
	return p
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantDays int
		wantErr  error
	}{
		{name: "four days", from: "2024-01-01", to: "2024-01-05", wantDays: 4},
		{name: "one day", from: "2024-02-28", to: "2024-02-29", wantDays: 1},
		{name: "across month boundary", from: "2024-01-30", to: "2024-02-02", wantDays: 3},
		{name: "longer than time.Duration can hold", from: "2024-01-01", to: "9999-12-31", wantDays: 2913173},
		{name: "whole calendar range", from: "0001-01-01", to: "9999-12-31", wantDays: 3652058},
		{name: "same day", from: "2024-01-01", to: "2024-01-01", wantErr: rental.ErrInvalidPeriod},
		{name: "reversed", from: "2024-01-05", to: "2024-01-01", wantErr: rental.ErrInvalidPeriod},
		{name: "bad format", from: "01/01/2024", to: "2024-01-05", wantErr: rental.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := rental.ParsePeriod(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, p.Days())
		})
	}
}

func TestPeriod_Price(t *testing.T) {

	tests := []struct {
		name    string
		from    string
		to      string
		daily   int
		want    int
		wantErr error
	}{
		{name: "four days", from: "2024-01-01", to: "2024-01-05", daily: 100, want: 400},
		{name: "free car", from: "2024-01-01", to: "2024-01-05", daily: 0, want: 0},
		{name: "largest storable total", from: "2024-01-01", to: "2024-01-02", daily: rental.MaxPrice, want: rental.MaxPrice},
		{name: "total above int32", from: "2024-01-01", to: "2024-01-03", daily: rental.MaxPrice, wantErr: rental.ErrPriceTooLarge},
		{name: "long period at reference price", from: "2024-01-01", to: "9999-12-31", daily: 3500, wantErr: rental.ErrPriceTooLarge},
		{name: "long period at small price", from: "2024-01-01", to: "9999-12-31", daily: 700, want: 2913173 * 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustPeriod(t, tt.from, tt.to).Price(tt.daily)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPeriod_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, 3, 3, 0, 1, 0, 0, time.UTC)

	p, err := rental.NewPeriod(from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Days())
}

func TestNewRental(t *testing.T) {
	period := mustPeriod(t, "2024-01-01", "2024-01-05")
	paymentUID, carUID := uuid.New(), uuid.New()

	r, err := rental.NewRental(uuid.Nil, "alice", paymentUID, carUID, period)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.UID())
	assert.Equal(t, rental.StatusInProgress, r.Status())
	assert.Equal(t, "alice", r.Username())

	_, err = rental.NewRental(uuid.Nil, " ", paymentUID, carUID, period)
	assert.ErrorIs(t, err, rental.ErrEmptyUsername)

	_, err = rental.NewRental(uuid.Nil, strings.Repeat("u", 81), paymentUID, carUID, period)
	assert.ErrorIs(t, err, rental.ErrUsernameTooLong)

	_, err = rental.NewRental(uuid.Nil, "alice", uuid.Nil, carUID, period)
	assert.ErrorIs(t, err, rental.ErrMissingReference)

	_, err = rental.NewRental(uuid.Nil, "alice", paymentUID, carUID, rental.Period{})
	assert.ErrorIs(t, err, rental.ErrInvalidPeriod)
}

func TestRental_Transitions(t *testing.T) {
	period := mustPeriod(t, "2024-01-01", "2024-01-05")

	tests := []struct {
		name    string
		from    rental.Status
		apply   func(r *rental.Rental) error
		want    rental.Status
		wantErr error
	}{
		{name: "finish in progress", from: rental.StatusInProgress, apply: (*rental.Rental).Finish, want: rental.StatusFinished},
		{name: "cancel in progress", from: rental.StatusInProgress, apply: (*rental.Rental).Cancel, want: rental.StatusCanceled},
		{name: "finish finished", from: rental.StatusFinished, apply: (*rental.Rental).Finish, want: rental.StatusFinished, wantErr: rental.ErrNotInProgress},
		{name: "cancel canceled", from: rental.StatusCanceled, apply: (*rental.Rental).Cancel, want: rental.StatusCanceled, wantErr: rental.ErrNotInProgress},
		{name: "cancel finished", from: rental.StatusFinished, apply: (*rental.Rental).Cancel, want: rental.StatusFinished, wantErr: rental.ErrNotInProgress},
		{name: "finish canceled", from: rental.StatusCanceled, apply: (*rental.Rental).Finish, want: rental.StatusCanceled, wantErr: rental.ErrNotInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rental.ReconstructRental(uuid.New(), "alice", uuid.New(), uuid.New(), period, tt.from)
			err := tt.apply(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, r.Status())
		})
	}
}

func TestRental_CheckOwner(t *testing.T) {
	r := rental.ReconstructRental(uuid.New(), "alice", uuid.New(), uuid.New(), mustPeriod(t, "2024-01-01", "2024-01-02"), rental.StatusInProgress)

	assert.NoError(t, r.CheckOwner("alice"))
	assert.ErrorIs(t, r.CheckOwner("bob"), rental.ErrNotOwner)
}
