package schema

// Areas is the scoring-side grouping. It is declared independently of Steps
// on purpose: membership and required subsets track product requirements,
// not the wizard layout. timeline, guarantee and platforms appear in step 9
// but are required in no area.
var Areas = []Area{
	{
		ID:       "business",
		Label:    "The Business",
		Keys:     []string{"business_name", "business_description", "business_price"},
		Required: []string{"business_name", "business_description"},
	},
	{
		ID:       "customer",
		Label:    "The Customer",
		Keys:     []string{"audience_primary", "audience_secondary", "customer_desire"},
		Required: []string{"audience_primary", "customer_desire"},
	},
	{
		ID:       "problem",
		Label:    "The Problem",
		Keys:     []string{"external_problem", "internal_problem", "philosophical_problem", "villain"},
		Required: []string{"external_problem", "internal_problem"},
	},
	{
		ID:       "guide",
		Label:    "The Guide",
		Keys:     []string{"empathy_statement", "authority_credentials", "authority_testimonial"},
		Required: []string{"empathy_statement", "authority_credentials"},
	},
	{
		ID:       "plan",
		Label:    "The Plan",
		Keys:     []string{"plan_step_1", "plan_step_2", "plan_step_3", "plan_step_4"},
		Required: []string{"plan_step_1", "plan_step_2", "plan_step_3"},
	},
	{
		ID:       "stakes",
		Label:    "The Stakes",
		Keys:     []string{"failure_state", "success_state"},
		Required: []string{"failure_state", "success_state"},
	},
	{
		ID:       "origin",
		Label:    "Your Story",
		Keys:     []string{"origin_struggle", "origin_tool", "origin_mission", "origin_dark_moment"},
		Required: []string{"origin_struggle", "origin_mission"},
	},
	{
		ID:       "differentiator",
		Label:    "Differentiator",
		Keys:     []string{"differentiator", "main_objection", "objection_answer"},
		Required: []string{"differentiator", "main_objection"},
	},
	{
		ID:       "details",
		Label:    "Details",
		Keys:     []string{"timeline", "guarantee", "platforms", "cta_direct", "cta_transitional"},
		Required: []string{"cta_direct"},
	},
}
