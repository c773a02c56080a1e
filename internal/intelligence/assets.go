package intelligence

import (
	"fmt"

	"github.com/mseverin/brandforge/internal/domain"
)

// assetFrameworks maps each asset type to the messaging framework that is
// appended to the system prompt when generating or refining that asset.
// The elevator pitch reuses the one-liner formula at longer length.
var assetFrameworks = map[domain.AssetType]string{
	domain.AssetOneLiner:            oneLinerFramework,
	domain.AssetOriginStoryShort:    originStoryShortFramework,
	domain.AssetOriginStoryExtended: originStoryExtendedFramework,
	domain.AssetElevatorPitch:       oneLinerFramework,
	domain.AssetSoundBites:          soundBitesFramework,
	domain.AssetLandingPage:         landingPageFramework,
	domain.AssetSocialMedia:         socialMediaFramework,
	domain.AssetColdEmail:           emailFramework,
	domain.AssetPitchDeck:           pitchDeckFramework,
	domain.AssetExecutiveBrief:      executiveBriefFramework,
}

// assetGenerationPrompts holds the user-facing instruction sent for each
// asset type when generating a fresh version.
var assetGenerationPrompts = map[domain.AssetType]string{
	domain.AssetOneLiner:            "Generate 3 one-liner variations using the Problem → Product → Result formula. For each audience segment in the BrandScript, create at least one. Format: clearly label each variation.",
	domain.AssetOriginStoryShort:    "Write a compelling 4-part origin story (The Hole, The Tool, The Mission, The Transformation) suitable for an About Us page or elevator conversation.",
	domain.AssetOriginStoryExtended: "Write a full 8-part origin story (The Hole, The Calling, The Refinement, The Dark Knight, The Miracle, The Breakthrough, The Better World, The Moral) suitable for a brand video or keynote.",
	domain.AssetElevatorPitch:       "Write a 30-60 second elevator pitch. It should open a story loop with the problem, bridge to the product, and close with the result. Include delivery notes.",
	domain.AssetSoundBites:          "Generate 10 sound bite candidates. Use these structures: contrast, unexpected specificity, problem-as-hook, challenge to assumption, compressed story, aspirational identity. Mark the top 5.",
	domain.AssetLandingPage:         "Write complete landing page copy following all 10 sections: Hero, Problem, Guide Story, Features, Differentiator, Pattern Interrupt, Pricing/Value, Who It's For, FAQ, Final CTA. Include headlines, body copy, and CTA text for each section.",
	domain.AssetSocialMedia:         "Create a 6-post content series: (1) The Invisible Problem, (2) The Objection Killer, (3) The Pain Point Mirror, (4) The Origin Story, (5) The Flexibility Angle, (6) The Price Anchor. Format each with hook, body, and CTA.",
	domain.AssetColdEmail:           "Write a 5-email outreach sequence: (1) Problem-first outreach, (2) Social proof/results, (3) Origin story, (4) Objection handling, (5) Direct CTA with urgency. Include subject lines.",
	domain.AssetPitchDeck:           "Create a pitch deck outline with slide-by-slide content: Problem slides (go deeper, deeper, deeper), Solution, Plan, Results/Case Studies, CTA. Include speaker notes.",
	domain.AssetExecutiveBrief:      "Write a complete executive brief: Executive Summary, Business Problem (with data), Proposed Solution, Expected Outcomes, Investment Required, Risk of Inaction, Recommendation.",
}

// GenerationPrompt returns the instruction used to generate a fresh asset
// of the given type.
func GenerationPrompt(assetType domain.AssetType) string {
	if p, ok := assetGenerationPrompts[assetType]; ok {
		return p
	}
	return fmt.Sprintf("Generate a %s asset.", assetType)
}
