package model

// PlanetModel is the GORM-specific struct for the 'planets' table.
type PlanetModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex:uk_planets_name;check:chk_planets_name_not_empty,name <> ''"`
	Climate string `gorm:"type:varchar(255);not null;index:idx_planets_climate_terrain,priority:1;check:chk_planets_climate_not_empty,climate <> ''"`
	Terrain string `gorm:"type:varchar(255);not null;index:idx_planets_climate_terrain,priority:2;check:chk_planets_terrain_not_empty,terrain <> ''"`
}

// TableName explicitly sets the table name for GORM.
func (PlanetModel) TableName() string {
	return "planets"
}
