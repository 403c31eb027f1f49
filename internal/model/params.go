package model

// MissionProfile selects the environment whose baseline dose rate applies.
type MissionProfile string

const (
	MissionISS          MissionProfile = "iss"
	MissionLunarOrbit   MissionProfile = "lunar_orbit"
	MissionLunarSurface MissionProfile = "lunar_surface"
	MissionMarsTransit  MissionProfile = "mars_transit"
	MissionDeepSpace    MissionProfile = "deep_space"
)

// ShieldMaterial is one of the supported shielding materials.
type ShieldMaterial string

const (
	MaterialNone         ShieldMaterial = "none"
	MaterialAluminum     ShieldMaterial = "aluminum"
	MaterialPolyethylene ShieldMaterial = "polyethylene"
	MaterialWater        ShieldMaterial = "water"
	MaterialRegolith     ShieldMaterial = "regolith"
)

// SolarPhase is the solar-cycle activity phase. Solar max suppresses
// galactic cosmic rays, so it carries the lowest modifier.
type SolarPhase string

const (
	SolarMax     SolarPhase = "solar_max"
	SolarAverage SolarPhase = "average"
	SolarMin     SolarPhase = "solar_min"
)

// Organ names the organs with a fixed sensitivity factor.
type Organ string

const (
	OrganSkin       Organ = "Skin"
	OrganEyes       Organ = "Eyes"
	OrganBoneMarrow Organ = "Bone Marrow"
	OrganBrain      Organ = "Brain"
	OrganHeart      Organ = "Heart"
)

// RiskLevel classifies a total mission dose against career exposure limits.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "SAFE"
	RiskWarning RiskLevel = "WARNING"
	RiskDanger  RiskLevel = "DANGER"
)

// RadiationBaseline holds the unshielded daily dose rates (mSv/day) per
// environment. Enumerated fields rather than a string-keyed map so a
// missing environment is a compile error, not a runtime lookup miss.
type RadiationBaseline struct {
	ISS         float64 `json:"iss"`
	Lunar       float64 `json:"lunar"`
	MarsTransit float64 `json:"mars_transit"`
	DeepSpace   float64 `json:"deep_space"`
}

// OrganDoseMap maps each organ to its equivalent dose in mSv.
type OrganDoseMap map[Organ]float64
