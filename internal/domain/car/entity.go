package car

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidType     = errors.New("invalid car type")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrPriceTooLarge   = errors.New("price exceeds the maximum")
	ErrNegativePower   = errors.New("power cannot be negative")
	ErrEmptyBrand      = errors.New("brand is required")
	ErrEmptyModel      = errors.New("model is required")
	ErrEmptyRegNumber  = errors.New("registration number is required")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrCarNotAvailable = errors.New("car is not available")
)

// MaxPrice is the largest daily price the registry stores.
const MaxPrice = math.MaxInt32

const (
	maxNameLen   = 80
	maxRegNumLen = 20
)

type Car struct {
	uid                uuid.UUID
	brand              string
	model              string
	registrationNumber string
	power              *int
	price              int
	carType            Type
	available          bool
}

func NewCar(uid uuid.UUID, brand, model, registrationNumber string, power *int, price int, carType Type) (*Car, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	registrationNumber = strings.TrimSpace(registrationNumber)

	switch {
	case brand == "":
		return nil, ErrEmptyBrand
	case model == "":
		return nil, ErrEmptyModel
	case registrationNumber == "":
		return nil, ErrEmptyRegNumber
	case len([]rune(brand)) > maxNameLen, len([]rune(model)) > maxNameLen, len([]rune(registrationNumber)) > maxRegNumLen:
		return nil, ErrFieldTooLong
	case price < 0:
		return nil, ErrNegativePrice
	case price > MaxPrice:
		return nil, ErrPriceTooLarge
	case power != nil && *power < 0:
		return nil, ErrNegativePower
	}
	if carType != "" && !carType.IsValid() {
		return nil, ErrInvalidType
	}
	if uid == uuid.Nil {
		uid = uuid.New()
	}

	return &Car{
		uid:                uid,
		brand:              brand,
		model:              model,
		registrationNumber: registrationNumber,
		power:              power,
		price:              price,
		carType:            carType,
		available:          true,
	}, nil
}

func ReconstructCar(uid uuid.UUID, brand, model, registrationNumber string, power *int, price int, carType Type, available bool) *Car {
	return &Car{
		uid:                uid,
		brand:              brand,
		model:              model,
		registrationNumber: registrationNumber,
		power:              power,
		price:              price,
		carType:            carType,
		available:          available,
	}
}

func (c *Car) UID() uuid.UUID             { return c.uid }
func (c *Car) Brand() string              { return c.brand }
func (c *Car) Model() string              { return c.model }
func (c *Car) RegistrationNumber() string { return c.registrationNumber }
func (c *Car) Power() *int                { return c.power }
func (c *Car) Price() int                 { return c.price }
func (c *Car) Type() Type                 { return c.carType }
func (c *Car) Available() bool            { return c.available }
