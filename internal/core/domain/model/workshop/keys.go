package workshop

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// Natural keys. Entities compare equal when their keys do; the relation sets
// use them to keep at most one entry per key. Timestamps are kept as Unix
// milliseconds so keys stay comparable with ==.

type VehicleKey struct {
	Make        string
	Model       string
	PlateNumber string
}

type WorkOrderKey struct {
	Vehicle VehicleKey
	At      int64
}

type InterventionKey struct {
	WorkOrder WorkOrderKey
	Mechanic  string
	At        int64
}

type SubstitutionKey struct {
	Intervention InterventionKey
	SparePart    string
}

type PayrollKey struct {
	Contract kernel.UUID
	Year     int
	Month    time.Month
}
