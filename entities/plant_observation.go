package entities

import (
	"time"
)

// PlantObservation records one classified leaf image. The image itself
// lives in the object store; the row only keeps the URL.
type PlantObservation struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlantImage string    `gorm:"size:500;not null" json:"plant_image"`
	Location   string    `gorm:"size:200;not null" json:"location"`
	DiseaseID  uint      `gorm:"not null" json:"disease_id"`
	ObservedAt time.Time `gorm:"type:timestamp" json:"datetime"`

	Disease *Disease `gorm:"foreignKey:DiseaseID"`
}
