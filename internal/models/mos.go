package models

// ArmyMOS is one entry of the Military Occupational Specialty catalog.
// The catalog is seeded at startup and read-only afterwards.
type ArmyMOS struct {
	BaseModel
	Code       string `gorm:"uniqueIndex;not null"`
	Title      string `gorm:"not null"`
	Category   string `gorm:"index"`
	MinGTScore int    `gorm:"default:0"`
}

// MOSCatalog returns the seed data for the MOS table.
func MOSCatalog() []ArmyMOS {
	return []ArmyMOS{
		{Code: "09L", Title: "Interpreter/Translator", Category: "Intelligence", MinGTScore: 100},
		{Code: "11B", Title: "Infantryman", Category: "Combat Arms", MinGTScore: 87},
		{Code: "11C", Title: "Indirect Fire Infantryman", Category: "Combat Arms", MinGTScore: 87},
		{Code: "12B", Title: "Combat Engineer", Category: "Engineering", MinGTScore: 87},
		{Code: "12N", Title: "Horizontal Construction Engineer", Category: "Engineering", MinGTScore: 87},
		{Code: "12W", Title: "Carpentry and Masonry Specialist", Category: "Engineering", MinGTScore: 87},
		{Code: "13B", Title: "Cannon Crewmember", Category: "Combat Arms", MinGTScore: 93},
		{Code: "15T", Title: "UH-60 Helicopter Repairer", Category: "Aviation", MinGTScore: 104},
		{Code: "15U", Title: "CH-47 Helicopter Repairer", Category: "Aviation", MinGTScore: 104},
		{Code: "15Y", Title: "AH-64 Armament/Electrical Repairer", Category: "Aviation", MinGTScore: 105},
		{Code: "17C", Title: "Cyber Operations Specialist", Category: "Cyber", MinGTScore: 110},
		{Code: "19D", Title: "Cavalry Scout", Category: "Combat Arms", MinGTScore: 87},
		{Code: "25B", Title: "Information Technology Specialist", Category: "Signal", MinGTScore: 95},
		{Code: "25D", Title: "Cyber Network Defender", Category: "Cyber", MinGTScore: 105},
		{Code: "35F", Title: "Intelligence Analyst", Category: "Intelligence", MinGTScore: 101},
		{Code: "35M", Title: "Human Intelligence Collector", Category: "Intelligence", MinGTScore: 101},
		{Code: "35N", Title: "Signals Intelligence Analyst", Category: "Intelligence", MinGTScore: 101},
		{Code: "35P", Title: "Cryptologic Linguist", Category: "Intelligence", MinGTScore: 91},
		{Code: "35T", Title: "Military Intelligence Systems Maintainer", Category: "Intelligence", MinGTScore: 112},
		{Code: "42A", Title: "Human Resources Specialist", Category: "Administration", MinGTScore: 90},
		{Code: "68W", Title: "Combat Medic Specialist", Category: "Medical", MinGTScore: 101},
		{Code: "68X", Title: "Behavioral Health Specialist", Category: "Medical", MinGTScore: 101},
		{Code: "88M", Title: "Motor Transport Operator", Category: "Logistics", MinGTScore: 85},
		{Code: "91B", Title: "Wheeled Vehicle Mechanic", Category: "Maintenance", MinGTScore: 87},
		{Code: "91D", Title: "Power Generation Equipment Repairer", Category: "Maintenance", MinGTScore: 88},
		{Code: "91S", Title: "Stryker Systems Maintainer", Category: "Maintenance", MinGTScore: 87},
		{Code: "92A", Title: "Automated Logistical Specialist", Category: "Logistics", MinGTScore: 90},
		{Code: "92Y", Title: "Unit Supply Specialist", Category: "Logistics", MinGTScore: 90},
	}
}
