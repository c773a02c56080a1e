package domain

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type AssetType string

const (
	AssetOneLiner            AssetType = "one-liner"
	AssetOriginStoryShort    AssetType = "origin-story-short"
	AssetOriginStoryExtended AssetType = "origin-story-extended"
	AssetElevatorPitch       AssetType = "elevator-pitch"
	AssetSoundBites          AssetType = "sound-bites"
	AssetLandingPage         AssetType = "landing-page"
	AssetSocialMedia         AssetType = "social-media"
	AssetColdEmail           AssetType = "cold-email"
	AssetPitchDeck           AssetType = "pitch-deck"
	AssetExecutiveBrief      AssetType = "executive-brief"
)

// AssetLabels maps each asset type to its display title.
var AssetLabels = map[AssetType]string{
	AssetOneLiner:            "One-Liner",
	AssetOriginStoryShort:    "Origin Story (Short)",
	AssetOriginStoryExtended: "Origin Story (Extended)",
	AssetElevatorPitch:       "Elevator Pitch",
	AssetSoundBites:          "Sound Bites",
	AssetLandingPage:         "Landing Page Copy",
	AssetSocialMedia:         "Social Media Series",
	AssetColdEmail:           "Cold Email + Follow-ups",
	AssetPitchDeck:           "Pitch Deck Outline",
	AssetExecutiveBrief:      "Executive Brief",
}

// IsValidAssetType returns true if t is a known asset type.
func IsValidAssetType(t AssetType) bool {
	_, ok := AssetLabels[t]
	return ok
}
