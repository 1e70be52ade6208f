package mission

type Dimension struct {
	Meters float64 `json:"meters"`
	Feet   float64 `json:"feet"`
}

type Mass struct {
	Kg int64 `json:"kg"`
	Lb int64 `json:"lb"`
}

// Rocket is a launch vehicle spec sheet.
type Rocket struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Active        bool      `json:"active"`
	Stages        int       `json:"stages"`
	Height        Dimension `json:"height"`
	Diameter      Dimension `json:"diameter"`
	Mass          Mass      `json:"mass"`
	FirstFlight   string    `json:"firstFlight"`
	SuccessRate   float64   `json:"successRate"`
	CostPerLaunch int64     `json:"costPerLaunch"`
	Images        []string  `json:"images"`
}

var knownRockets = []Rocket{
	{
		ID: "5e9d0d95eda69955f709d1eb", Name: "Falcon 1",
		Description: "The Falcon 1 was an expendable launch system privately developed and manufactured by SpaceX during 2006-2009.",
		Stages:      2, Height: Dimension{Meters: 22.25, Feet: 73}, Diameter: Dimension{Meters: 1.68, Feet: 5.5},
		Mass: Mass{Kg: 30146, Lb: 66460}, FirstFlight: "2006-03-24", SuccessRate: 40, CostPerLaunch: 6700000, Images: []string{},
	},
	{
		ID: "5e9d0d95eda69973a809d1ec", Name: "Falcon 9", Active: true,
		Description: "Falcon 9 is a two-stage rocket designed and manufactured by SpaceX for the reliable and safe transport of satellites and the Dragon spacecraft into orbit.",
		Stages:      2, Height: Dimension{Meters: 70, Feet: 229.6}, Diameter: Dimension{Meters: 3.7, Feet: 12},
		Mass: Mass{Kg: 549054, Lb: 1207920}, FirstFlight: "2010-06-04", SuccessRate: 98, CostPerLaunch: 50000000, Images: []string{},
	},
	{
		ID: "5e9d0d95eda69974db09d1ed", Name: "Falcon Heavy", Active: true,
		Description: "With the ability to lift into orbit over 54 metric tons, Falcon Heavy is the most powerful operational rocket in the world by a factor of two.",
		Stages:      2, Height: Dimension{Meters: 70, Feet: 229.6}, Diameter: Dimension{Meters: 12.2, Feet: 39.9},
		Mass: Mass{Kg: 1420788, Lb: 3125735}, FirstFlight: "2018-02-06", SuccessRate: 100, CostPerLaunch: 90000000, Images: []string{},
	},
	{
		ID: "5e9d0d96eda699382d09d1ee", Name: "Starship",
		Description: "Starship and Super Heavy Rocket represent a fully reusable transportation system designed to service all Earth orbit needs as well as the Moon and Mars.",
		Stages:      2, Height: Dimension{Meters: 118, Feet: 387}, Diameter: Dimension{Meters: 9, Feet: 30},
		Mass: Mass{Kg: 1335000, Lb: 2943000}, FirstFlight: "2023-04-20", SuccessRate: 0, CostPerLaunch: 7000000, Images: []string{},
	},
}

// KnownRockets is the built-in rocket list served when the live feed is down.
func KnownRockets() []Rocket {
	return append([]Rocket(nil), knownRockets...)
}
