package schema

// Steps is the guided discovery wizard: 9 pages, 31 fields. Immutable
// configuration; the placeholder copy doubles as interviewer guidance.
var Steps = []Step{
	{
		Number:      1,
		Title:       "The Business",
		Subtitle:    "What do you do?",
		Description: "Tell us about your product or service. Be specific — what do you sell and how does it work?",
		Fields: []Field{
			{Key: "business_name", Label: "Business / Brand Name", Placeholder: "e.g., Acme Health Solutions", Kind: InputText},
			{Key: "business_description", Label: "What do you sell? How does it work?", Placeholder: "Describe your product or service in plain language. What does a customer actually get? How is it delivered?", Kind: InputTextarea},
			{Key: "business_price", Label: "Price point(s)", Placeholder: "e.g., $297/month, $2,500 one-time, free trial + $49/mo", Kind: InputText},
		},
	},
	{
		Number:      2,
		Title:       "The Customer",
		Subtitle:    "Who is your hero?",
		Description: "Who are the distinct audiences you serve? The customer is the hero of the story — we need to understand who they are and what they want.",
		Fields: []Field{
			{Key: "audience_primary", Label: "Primary audience", Placeholder: "Who is your main customer? Be specific — job title, life stage, situation.", Kind: InputTextarea},
			{Key: "audience_secondary", Label: "Secondary audience (optional)", Placeholder: "Do you serve a second distinct group? Describe them here.", Kind: InputTextarea},
			{Key: "customer_desire", Label: "What do they want? (in survival-relevant terms)", Placeholder: "What is the ONE thing your customer wants most? Frame it in terms of survival: money, time, safety, status, relationships.", Kind: InputTextarea},
		},
	},
	{
		Number:      3,
		Title:       "The Problem",
		Subtitle:    "What's the villain?",
		Description: "Every hero has a problem. Define the external, internal, and philosophical layers of your customer's pain. Name the villain — the root cause.",
		Fields: []Field{
			{Key: "external_problem", Label: "External Problem (the tangible, surface-level issue)", Placeholder: `e.g., "They can't find qualified candidates fast enough" or "Their website doesn't generate leads"`, Kind: InputTextarea},
			{Key: "internal_problem", Label: "Internal Problem (how it makes them FEEL)", Placeholder: `e.g., "They feel overwhelmed and behind," "They're embarrassed by their outdated messaging"`, Kind: InputTextarea},
			{Key: "philosophical_problem", Label: "Philosophical Problem (why it's simply WRONG)", Placeholder: `Start with "People shouldn't have to..." or "Everyone deserves..."`, Kind: InputTextarea},
			{Key: "villain", Label: "The Villain (the root cause — a force, not a person)", Placeholder: `e.g., "Outdated hiring processes," "Information overload," "The complexity of modern marketing"`, Kind: InputText},
		},
	},
	{
		Number:      4,
		Title:       "The Guide",
		Subtitle:    "Empathy + Authority",
		Description: "You are the guide — Yoda, not Luke. Show the customer you understand their pain (empathy) and prove you can help (authority). Remember: everything you say about yourself serves the customer's story.",
		Fields: []Field{
			{Key: "empathy_statement", Label: "Empathy Statement", Placeholder: `"We understand what it's like to..." — Show you've been where they are or deeply understand their struggle.`, Kind: InputTextarea},
			{Key: "authority_credentials", Label: "Authority & Credentials", Placeholder: "Years of experience, number of customers served, certifications, results achieved, notable clients, media mentions.", Kind: InputTextarea},
			{Key: "authority_testimonial", Label: "Best customer testimonial or result (optional)", Placeholder: `A specific quote or result that proves you deliver. e.g., "After working with us, XYZ Corp increased revenue by 40% in 6 months."`, Kind: InputTextarea},
		},
	},
	{
		Number:      5,
		Title:       "The Plan",
		Subtitle:    "Make it simple",
		Description: "Give the hero a clear, simple plan. 3-4 steps max. This removes confusion and makes taking action feel safe and easy.",
		Fields: []Field{
			{Key: "plan_step_1", Label: "Step 1", Placeholder: `e.g., "Schedule a free consultation" or "Sign up and complete your profile"`, Kind: InputText},
			{Key: "plan_step_2", Label: "Step 2", Placeholder: `e.g., "We build your custom strategy" or "Choose your plan"`, Kind: InputText},
			{Key: "plan_step_3", Label: "Step 3", Placeholder: `e.g., "Launch and watch your results grow" or "Start seeing results in weeks"`, Kind: InputText},
			{Key: "plan_step_4", Label: "Step 4 (optional)", Placeholder: "Only if needed. 3 steps is usually ideal.", Kind: InputText},
		},
	},
	{
		Number:      6,
		Title:       "The Stakes",
		Subtitle:    "Failure & Success",
		Description: "Stories need stakes. What happens if the hero doesn't act? And what does their life look like when they succeed?",
		Fields: []Field{
			{Key: "failure_state", Label: "What failure are they avoiding?", Placeholder: `"Without this, you'll continue to..." — Paint the honest negative outcome. Not fear-mongering, just real stakes.`, Kind: InputTextarea},
			{Key: "success_state", Label: "What does success look like?", Placeholder: "Be specific: What does their life / business / day look like AFTER they use your product? The aspirational identity.", Kind: InputTextarea},
		},
	},
	{
		Number:      7,
		Title:       "Your Story",
		Subtitle:    "The Origin of Empathy",
		Description: "Every guide has a backstory. What happened that made you care about this problem? This isn't about opening with your story — it's about deepening trust after the relationship is established.",
		Fields: []Field{
			{Key: "origin_struggle", Label: "The Hole — What struggle led you to this work?", Placeholder: "What pain did you (or your first customer) face? This should be the SAME hole your customer is in.", Kind: InputTextarea},
			{Key: "origin_tool", Label: "The Tool — What did you create to get out?", Placeholder: "What product, service, or framework did you build? How did it solve the problem?", Kind: InputTextarea},
			{Key: "origin_mission", Label: "The Mission — Why did this become your life's work?", Placeholder: `"I couldn't stop thinking about the people still stuck in that hole..." — Frame it as calling, not career move.`, Kind: InputTextarea},
			{Key: "origin_dark_moment", Label: "The Dark Moment (optional but powerful)", Placeholder: "Was there a time everything nearly fell apart? A setback, a failure, a crisis? This creates the emotional peak of your story.", Kind: InputTextarea},
		},
	},
	{
		Number:      8,
		Title:       "Differentiator",
		Subtitle:    "What makes you unlike anything else?",
		Description: "Identify the ONE thing that sets you apart and the biggest objection people have. These are critical for your messaging.",
		Fields: []Field{
			{Key: "differentiator", Label: "Key Differentiator", Placeholder: "What is the ONE thing you have that nobody else does? A unique method, exclusive access, proprietary technology, a specific guarantee?", Kind: InputTextarea},
			{Key: "main_objection", Label: "Biggest Objection", Placeholder: `What's the #1 reason people don't buy? e.g., "It's too expensive," "I can do this myself," "I've tried something like this before"`, Kind: InputTextarea},
			{Key: "objection_answer", Label: "How do you answer that objection?", Placeholder: "In 1-2 sentences, what's your best rebuttal to the objection above?", Kind: InputTextarea},
		},
	},
	{
		Number:      9,
		Title:       "Details",
		Subtitle:    "Specifics & Channels",
		Description: "Specifics always beat generalities. Let's capture the concrete details and where you need to show up.",
		Fields: []Field{
			{Key: "timeline", Label: "Timeline to results", Placeholder: `How long does it take for a customer to see results? e.g., "4-8 weeks," "Same day," "Within your first session"`, Kind: InputText},
			{Key: "guarantee", Label: "Guarantee or risk-reducer (optional)", Placeholder: `e.g., "30-day money-back guarantee," "Free trial," "Pay only when you see results"`, Kind: InputText},
			{Key: "platforms", Label: "Marketing platforms you use", Placeholder: "e.g., LinkedIn, Instagram, YouTube, Email, Website, Facebook, X/Twitter", Kind: InputText},
			{Key: "cta_direct", Label: "Direct CTA (primary action)", Placeholder: `What do you want the customer to DO? e.g., "Schedule a Call," "Buy Now," "Enroll Today"`, Kind: InputText},
			{Key: "cta_transitional", Label: "Transitional CTA (softer ask)", Placeholder: `For those not ready to buy yet. e.g., "Download the Free Guide," "Watch the Demo," "Take the Quiz"`, Kind: InputText},
		},
	},
}
