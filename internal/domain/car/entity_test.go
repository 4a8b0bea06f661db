//go:build unit

package car_test

import (
	"strings"
	"testing"

	"car-rental/internal/domain/car"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	power := 249

	tests := []struct {
		name    string
		brand   string
		model   string
		regNum  string
		power   *int
		price   int
		carType car.Type
		wantErr error
	}{
		{name: "valid car", brand: "Mercedes Benz", model: "GLA 250", regNum: "ЛО777Х799", power: &power, price: 3500, carType: car.TypeSedan},
		{name: "valid car without power and type", brand: "Lada", model: "Vesta", regNum: "A001AA", price: 0},
		{name: "empty brand", brand: "  ", model: "GLA", regNum: "X", price: 1, wantErr: car.ErrEmptyBrand},
		{name: "empty model", brand: "BMW", model: "", regNum: "X", price: 1, wantErr: car.ErrEmptyModel},
		{name: "empty registration number", brand: "BMW", model: "X5", regNum: "", price: 1, wantErr: car.ErrEmptyRegNumber},
		{name: "registration number too long", brand: "BMW", model: "X5", regNum: strings.Repeat("1", 21), price: 1, wantErr: car.ErrFieldTooLong},
		{name: "negative price", brand: "BMW", model: "X5", regNum: "X", price: -1, wantErr: car.ErrNegativePrice},
		{name: "price above int32", brand: "BMW", model: "X5", regNum: "X", price: car.MaxPrice + 1, wantErr: car.ErrPriceTooLarge},
		{name: "unknown type", brand: "BMW", model: "X5", regNum: "X", price: 1, carType: car.Type("TRUCK"), wantErr: car.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := car.NewCar(uuid.Nil, tt.brand, tt.model, tt.regNum, tt.power, tt.price, tt.carType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, c.UID())
			assert.True(t, c.Available(), "new cars start available")
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := car.ParseType("suv")
	require.NoError(t, err)
	assert.Equal(t, car.TypeSUV, got)

	_, err = car.ParseType("bus")
	assert.ErrorIs(t, err, car.ErrInvalidType)
}

func TestAvailabilityChange(t *testing.T) {
	plain := car.Reserve(false)
	assert.False(t, plain.To)
	assert.False(t, plain.Guarded())

	guarded := car.Reserve(true)
	require.True(t, guarded.Guarded())
	assert.True(t, *guarded.Expect)

	release := car.Release(true)
	assert.True(t, release.To)
	assert.False(t, *release.Expect)
}

func TestAvailabilityChange_Allows(t *testing.T) {
	holder := uuid.New()
	other := uuid.New()

	tests := []struct {
		name       string
		change     car.AvailabilityChange
		available  bool
		reservedBy uuid.UUID
		want       bool
	}{
		{name: "plain reserve of reserved car", change: car.Reserve(false), available: false, want: true},
		{name: "guarded reserve of free car", change: car.Reserve(true), available: true, want: true},
		{name: "guarded reserve of reserved car", change: car.Reserve(true), available: false, reservedBy: holder, want: false},
		{name: "holder reserves free car", change: car.ReserveFor(holder), available: true, want: true},
		{name: "holder repeats own reserve", change: car.ReserveFor(holder), available: false, reservedBy: holder, want: true},
		{name: "holder blocked by other reservation", change: car.ReserveFor(holder), available: false, reservedBy: other, want: false},
		{name: "holder blocked by anonymous reservation", change: car.ReserveFor(holder), available: false, want: false},
		{name: "holder releases own reservation", change: car.ReleaseFor(holder), available: false, reservedBy: holder, want: true},
		{name: "holder release of free car is a no-op", change: car.ReleaseFor(holder), available: true, want: true},
		{name: "holder cannot release other reservation", change: car.ReleaseFor(holder), available: false, reservedBy: other, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.change.Allows(tt.available, tt.reservedBy))
		})
	}
}
