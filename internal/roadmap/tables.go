package roadmap

// Advice tables. Every lookup switches over a closed enum; the default
// branch is unreachable for values produced by the Parse functions.

func headlineFor(s Stage) string {
	switch s {
	case StageProduction:
		return "Priority: make your AI product reliable and scalable."
	case StagePrototype:
		return "Priority: ship a testable AI MVP within the next 4 weeks."
	case StageIdea:
		return "Priority: clarify your promise and build your data foundation."
	}
	panic(unknown("stage", string(s)))
}

func timelineFor(s Stage) Timeline {
	switch s {
	case StageIdea:
		return Timeline{SprintCount: 2, Focus: "Validate usage and collect real data."}
	case StagePrototype:
		return Timeline{SprintCount: 4, Focus: "Deliver a coherent experience for 10 to 20 pilot users."}
	case StageProduction:
		return Timeline{SprintCount: 6, Focus: "Industrialize reliability, security and business value measurement."}
	}
	panic(unknown("stage", string(s)))
}

func decisionAdvice(s Stage) []string {
	switch s {
	case StageIdea:
		return []string{
			"Validate the value proposition with user interviews and low-fidelity prototypes.",
			"Pin down the benefit AI brings and make sure the data you need is accessible.",
		}
	case StagePrototype:
		return []string{
			"Assemble a working prototype on a pre-trained model (OpenAI, Claude, Gemini) with a solid prompt layer.",
			"Set up a fast feedback loop with pilot users.",
		}
	case StageProduction:
		return []string{
			"Industrialize data flows with an automated pipeline (Airbyte, Dagster, dbt).",
			"Define performance indicators (reliability, accuracy, response time) and align your monitoring.",
		}
	}
	panic(unknown("stage", string(s)))
}

func dataAdvice(d DataSource) []string {
	switch d {
	case DataNone:
		return []string{
			"Plan a collection step: forms, scraping or partnerships, in compliance with GDPR.",
			"Design a target data schema to ease annotation and governance.",
		}
	case DataInternalFile:
		return []string{
			"Clean and document your key columns, then centralize them in a data warehouse (BigQuery, Snowflake).",
			"Set up notebooks or pipelines to automate updates.",
		}
	case DataExternalAPI:
		return []string{
			"Secure access (OAuth, API keys) and add a cache to keep costs down.",
			"Normalize formats so they blend with your internal data.",
		}
	}
	panic(unknown("data source", string(d)))
}

func skillsAdvice(e Experience) []string {
	switch e {
	case ExperienceBeginner:
		return []string{
			"Favor low-code platforms (Bubble, Retool, WeWeb) paired with AI APIs.",
			"Document every experiment to build on what you learn.",
		}
	case ExperienceAdvanced:
		return []string{
			"Prototype quickly through an orchestrator (LangChain, LlamaIndex) and fitting open-source models.",
			"Automate CI/CD for the machine learning side (GitHub Actions, DVC, Model Registry).",
		}
	}
	panic(unknown("experience", string(e)))
}

func budgetAdvice(b Budget) []string {
	switch b {
	case BudgetLean:
		return []string{
			"Use pay-per-use SaaS models to avoid running infrastructure.",
			"Secure a payment or lead-generation path before investing further.",
		}
	case BudgetStandard:
		return []string{
			"Mix proprietary and open-source models to balance cost and quality.",
			"Invest in observability (Evidently, Arize) from the first production release.",
		}
	case BudgetPremium:
		return []string{
			"Build a cross-functional team (Product, Data, MLOps) and set a quarterly roadmap.",
			"Explore fine-tuning or custom-built models.",
		}
	}
	panic(unknown("budget", string(b)))
}
