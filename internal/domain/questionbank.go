package domain

// QuestionBank is the fixed, ordered assessment. Content is build-time
// configuration; it changes with a release, never at runtime.
//
// Option order within a question is worst-to-best but the engine only reads
// the Score field, so reordering copy is safe.
var QuestionBank = []QuizQuestion{
	// Data
	{
		ID:        "data-availability",
		Dimension: DimensionData,
		Text:      "How accessible is the data your key processes run on?",
		Variants: map[Role]string{
			RoleTechnical: "Can the data behind your key processes be reached through documented interfaces?",
		},
		Options: []QuizOption{
			{Text: "Locked in individual spreadsheets and inboxes", Score: 1},
			{Text: "In systems, but exports require manual work", Score: 2},
			{Text: "Mostly in central systems with some reporting access", Score: 3},
			{Text: "Centrally available through APIs or a warehouse", Score: 4, Variants: map[Role]string{RoleTechnical: "Exposed via APIs or a governed warehouse/lakehouse"}},
		},
	},
	{
		ID:        "data-quality",
		Dimension: DimensionData,
		Text:      "How would you rate the quality and consistency of that data?",
		Options: []QuizOption{
			{Text: "Unreliable; people keep private shadow copies", Score: 1},
			{Text: "Usable with significant manual clean-up", Score: 2},
			{Text: "Good in core systems, patchy at the edges", Score: 3},
			{Text: "Trusted and consistent across systems", Score: 4},
		},
	},
	{
		ID:        "data-ownership",
		Dimension: DimensionData,
		Text:      "Is it clear who owns and maintains each important dataset?",
		Options: []QuizOption{
			{Text: "Nobody owns data explicitly", Score: 1},
			{Text: "IT owns everything by default", Score: 2},
			{Text: "Key datasets have named owners", Score: 3},
			{Text: "Clear ownership with agreed quality responsibilities", Score: 4},
		},
	},
	{
		ID:        "data-volume",
		Dimension: DimensionData,
		Text:      "Do you have enough historical data about the process you would automate?",
		Options: []QuizOption{
			{Text: "Little or nothing is recorded", Score: 1},
			{Text: "Some history, in inconsistent formats", Score: 2},
			{Text: "A year or more of structured history", Score: 3},
			{Text: "Years of structured history, including outcomes", Score: 4},
		},
	},

	// Technology
	{
		ID:        "tech-integration",
		Dimension: DimensionTechnology,
		Text:      "How easily can your current systems talk to new tools?",
		Variants: map[Role]string{
			RoleTechnical: "What does integrating a new service into your stack typically involve?",
		},
		Options: []QuizOption{
			{Text: "Closed legacy systems, vendor involvement for any change", Score: 1},
			{Text: "Some export/import paths, no real interfaces", Score: 2},
			{Text: "Partial API coverage on the main systems", Score: 3},
			{Text: "Modern stack with standard APIs throughout", Score: 4},
		},
	},
	{
		ID:        "tech-cloud",
		Dimension: DimensionTechnology,
		Text:      "Where does your infrastructure run today?",
		Options: []QuizOption{
			{Text: "On-premise only, cloud is off the table", Score: 1},
			{Text: "On-premise, cloud under discussion", Score: 2},
			{Text: "Hybrid: some workloads already in the cloud", Score: 3},
			{Text: "Cloud-first, provisioning is routine", Score: 4},
		},
	},
	{
		ID:        "tech-capability",
		Dimension: DimensionTechnology,
		Text:      "Who runs and evolves your systems day to day?",
		Variants: map[Role]string{
			RoleBusiness: "If a system needs a change, who can actually make it?",
		},
		Options: []QuizOption{
			{Text: "External vendors for everything", Score: 1},
			{Text: "A small internal IT team focused on keeping lights on", Score: 2},
			{Text: "Internal team that delivers changes regularly", Score: 3},
			{Text: "Internal engineering with its own delivery pipeline", Score: 4},
		},
	},

	// People
	{
		ID:        "people-skills",
		Dimension: DimensionPeople,
		Text:      "How much hands-on AI or data experience exists in the organization?",
		Options: []QuizOption{
			{Text: "None that we know of", Score: 1},
			{Text: "A few individuals experiment on their own", Score: 2},
			{Text: "Pockets of real experience in some teams", Score: 3},
			{Text: "Dedicated people with production experience", Score: 4},
		},
	},
	{
		ID:        "people-adoption",
		Dimension: DimensionPeople,
		Text:      "How do your teams usually react to new tools?",
		Options: []QuizOption{
			{Text: "Strong resistance; previous rollouts failed", Score: 1},
			{Text: "Skeptical, adopt only when forced", Score: 2},
			{Text: "Open, given proper training and time", Score: 3},
			{Text: "Actively ask for better tooling", Score: 4},
		},
	},
	{
		ID:        "people-capacity",
		Dimension: DimensionPeople,
		Text:      "Could key people free up time to support an AI project?",
		Options: []QuizOption{
			{Text: "Everyone is fully consumed by daily business", Score: 1},
			{Text: "Only in quiet periods", Score: 2},
			{Text: "Some capacity can be ring-fenced", Score: 3},
			{Text: "Dedicated time is already budgeted for improvement work", Score: 4},
		},
	},

	// Process
	{
		ID:        "process-documentation",
		Dimension: DimensionProcess,
		Text:      "How well documented are the processes you would want to automate?",
		Options: []QuizOption{
			{Text: "They live in people's heads", Score: 1},
			{Text: "Outdated documentation exists somewhere", Score: 2},
			{Text: "Core processes are documented and mostly current", Score: 3},
			{Text: "Documented, versioned and actually followed", Score: 4},
		},
	},
	{
		ID:        "process-standardization",
		Dimension: DimensionProcess,
		Text:      "Is the same work done the same way across teams?",
		Options: []QuizOption{
			{Text: "Every team and person does it differently", Score: 1},
			{Text: "Some common patterns, many exceptions", Score: 2},
			{Text: "Standardized with known, managed exceptions", Score: 3},
			{Text: "Standardized and measured", Score: 4},
		},
	},
	{
		ID:        "process-measurement",
		Dimension: DimensionProcess,
		Text:      "Do you measure how long process steps take or where errors occur?",
		Options: []QuizOption{
			{Text: "No measurements at all", Score: 1},
			{Text: "Anecdotal estimates only", Score: 2},
			{Text: "Basic throughput or error tracking", Score: 3},
			{Text: "Systematic metrics with regular review", Score: 4},
		},
	},

	// Governance
	{
		ID:        "governance-privacy",
		Dimension: DimensionGovernance,
		Text:      "How mature is your handling of data protection and privacy requirements?",
		Options: []QuizOption{
			{Text: "Unclear; nobody is formally responsible", Score: 1},
			{Text: "Handled reactively when questions arise", Score: 2},
			{Text: "Clear policies and a responsible owner", Score: 3},
			{Text: "Embedded in processes, audited regularly", Score: 4},
		},
	},
	{
		ID:        "governance-approval",
		Dimension: DimensionGovernance,
		Text:      "What happens when a team wants to adopt a new tool?",
		Options: []QuizOption{
			{Text: "No defined path; it stalls or happens in the shadows", Score: 1},
			{Text: "Long, unpredictable approval rounds", Score: 2},
			{Text: "A defined process that takes weeks", Score: 3},
			{Text: "A fast, risk-based approval path", Score: 4},
		},
	},

	// Politics
	{
		ID:        "politics-sponsorship",
		Dimension: DimensionPolitics,
		Text:      "Who is pushing for AI in your organization?",
		Options: []QuizOption{
			{Text: "Nobody, or only outside pressure", Score: 1},
			{Text: "Individual enthusiasts without mandate", Score: 2},
			{Text: "A sponsor in middle management", Score: 3},
			{Text: "Active executive sponsorship with mandate", Score: 4},
		},
	},
	{
		ID:        "politics-budget",
		Dimension: DimensionPolitics,
		Text:      "Is there a realistic budget for an AI initiative?",
		Options: []QuizOption{
			{Text: "No budget and no prospect of one", Score: 1},
			{Text: "Might be found if a case is compelling", Score: 2},
			{Text: "Earmarked, pending a concrete proposal", Score: 3},
			{Text: "Approved and waiting for the right project", Score: 4},
		},
	},
	{
		ID:        "politics-alignment",
		Dimension: DimensionPolitics,
		Text:      "Do the stakeholders who would be affected agree this is worth doing?",
		Options: []QuizOption{
			{Text: "Open conflict about direction", Score: 1},
			{Text: "Indifference or quiet skepticism", Score: 2},
			{Text: "General agreement, priorities still debated", Score: 3},
			{Text: "Aligned on goals and priorities", Score: 4},
		},
	},
}

// QuestionsByDimension groups the bank by dimension in canonical order.
func QuestionsByDimension(bank []QuizQuestion) map[Dimension][]QuizQuestion {
	grouped := make(map[Dimension][]QuizQuestion, len(DimensionOrder))
	for _, q := range bank {
		grouped[q.Dimension] = append(grouped[q.Dimension], q)
	}
	return grouped
}
