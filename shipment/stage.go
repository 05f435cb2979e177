package shipment

import (
	"fmt"

	"staging-generator/staging"
)

// Hard limits for a single manifest.
const (
	maxPieces   = 1000
	maxWeightKg = 30000
)

// Stage validates each field independently and returns the populated staging
// value. Call TryConvert on the result to obtain the Manifest or every
// validation failure at once.
func Stage(carrier string, pieces int, weightKg float64) ManifestStaging {
	return ManifestStaging{
		Carrier:  checkCarrier(carrier),
		Pieces:   checkPieces(pieces),
		WeightKg: checkWeight(weightKg),
	}
}

func checkCarrier(carrier string) staging.Outcome[string, FieldError] {
	if carrier == "" {
		return staging.Err[string, FieldError](FieldError{Field: "Carrier", Msg: "must not be empty"})
	}

	return staging.Ok[string, FieldError](carrier)
}

func checkPieces(pieces int) staging.Outcome[int, FieldError] {
	if pieces < 1 || pieces > maxPieces {
		return staging.Err[int, FieldError](FieldError{
			Field: "Pieces",
			Msg:   fmt.Sprintf("must be between 1 and %d", maxPieces),
		})
	}

	return staging.Ok[int, FieldError](pieces)
}

func checkWeight(weightKg float64) staging.Outcome[float64, FieldError] {
	if weightKg <= 0 || weightKg > maxWeightKg {
		return staging.Err[float64, FieldError](FieldError{
			Field: "WeightKg",
			Msg:   fmt.Sprintf("must be positive and at most %d", maxWeightKg),
		})
	}

	return staging.Ok[float64, FieldError](weightKg)
}
