package underwriting

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strings"

	"github.com/Dan9191/underwriting-service/internal/models"
)

const (
	baseRentPerSqft = 1.0
	defaultSqft     = 1000
)

// EstimateRent derives a monthly market rent from square footage, location and
// property type. The ±20% variation is a hash of seed and address, so the same
// inputs always produce the same estimate.
func EstimateRent(p models.Property, seed int64) float64 {
	sqft := float64(p.SquareFootage)
	if sqft <= 0 {
		sqft = defaultSqft
	}

	address := strings.ToLower(p.Address)
	location := 1.0
	switch {
	case strings.Contains(address, "california"), strings.Contains(address, ", ca "):
		location = 1.5
	case strings.Contains(address, "new york"), strings.Contains(address, ", ny "):
		location = 1.8
	case strings.Contains(address, "texas"), strings.Contains(address, ", tx "):
		location = 0.8
	}

	kind := 1.0
	propertyType := strings.ToLower(p.PropertyType)
	switch {
	case strings.Contains(propertyType, "condo"):
		kind = 0.9
	case strings.Contains(propertyType, "townhouse"):
		kind = 0.95
	}

	rent := sqft * baseRentPerSqft * location * kind * variation(seed, address)
	return math.Round(rent*100) / 100
}

// variation maps (seed, key) onto [0.8, 1.2]
func variation(seed int64, key string) float64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	h.Write([]byte(key))
	unit := float64(h.Sum64()) / float64(math.MaxUint64)
	return 0.8 + 0.4*unit
}
