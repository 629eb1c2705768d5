package partner

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// Vehicle is what the delivery partner rides. It determines the average
// speed used for arrival estimates.
type Vehicle int

const (
	VehicleUnknown Vehicle = iota
	VehicleBicycle
	VehicleScooter
	VehicleMotorbike
	VehicleCar
)

func getVehicleStrings() map[Vehicle]string {
	return map[Vehicle]string{
		VehicleUnknown:   "UNKNOWN",
		VehicleBicycle:   "BICYCLE",
		VehicleScooter:   "SCOOTER",
		VehicleMotorbike: "MOTORBIKE",
		VehicleCar:       "CAR",
	}
}

// averageSpeedKmh is the city speed assumed for arrival estimates.
func (v Vehicle) averageSpeedKmh() float64 {
	switch v {
	case VehicleBicycle:
		return 12
	case VehicleScooter:
		return 20
	case VehicleMotorbike:
		return 25
	case VehicleCar:
		return 18
	default:
		return 0
	}
}

func (v Vehicle) String() string {
	if s, ok := getVehicleStrings()[v]; ok {
		return s
	}
	return "UNKNOWN"
}

func (v Vehicle) Validate() error {
	if v.averageSpeedKmh() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("%d is not a valid vehicle", v))
	}
	return nil
}

func ParseVehicle(s string) (Vehicle, error) {
	for v, name := range getVehicleStrings() {
		if v != VehicleUnknown && strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("%q is not a known vehicle", s))
}
