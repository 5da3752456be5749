package entities

type Disease struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:100;not null" json:"category"`
	Solution string `gorm:"size:500;not null" json:"solution"`

	Observations []*PlantObservation `gorm:"foreignKey:DiseaseID;constraint:OnDelete:CASCADE"`
	Timestamp
}
