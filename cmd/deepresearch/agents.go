package main

import (
	"github.com/loomlight/weft"
	"github.com/loomlight/weft/agent"
	"github.com/loomlight/weft/prompt"
)

// QueryInput asks the query agent to turn an instruction into search queries.
type QueryInput struct {
	Instruction string `json:"instruction" desc:"A detailed instruction or request to generate search engine queries for." required:"true"`
	NumQueries  int    `json:"num_queries" desc:"The number of search queries to generate." required:"true"`
}

// QueryOutput is the query agent's generated search queries.
type QueryOutput struct {
	Queries []string `json:"queries" desc:"A list of search engine queries." required:"true"`
}

// ChoiceInput asks the choice agent for a binary decision.
type ChoiceInput struct {
	UserMessage  string `json:"user_message" desc:"The user's latest message or question" required:"true"`
	DecisionType string `json:"decision_type" desc:"Explanation of the type of decision to make" required:"true"`
}

// ChoiceOutput is the choice agent's reasoned decision.
type ChoiceOutput struct {
	Reasoning string `json:"reasoning" desc:"Detailed explanation of the decision-making process" required:"true"`
	Decision  bool   `json:"decision" desc:"The final decision based on the analysis" required:"true"`
}

// QuestionInput asks the question-answering agent a research question.
type QuestionInput struct {
	Question string `json:"question" desc:"A question that needs to be answered based on the provided context." required:"true"`
}

// QuestionOutput is the question-answering agent's answer with suggested
// follow-up questions.
type QuestionOutput struct {
	Answer            string   `json:"answer" desc:"A detailed answer to the question, drawing on the provided context." required:"true"`
	FollowUpQuestions []string `json:"follow_up_questions" desc:"Specific follow-up questions the user could ask to deepen their understanding." required:"true"`
}

func newQueryAgent(client weft.CompletionProvider, model string) (*agent.Agent[QueryInput, QueryOutput], error) {
	return agent.New[QueryInput, QueryOutput](agent.Config{
		Client: client,
		Model:  model,
		Prompt: prompt.New(
			prompt.WithBackground(
				"You are an expert search engine query generator with a deep understanding of which queries will maximize the number of relevant results.",
			),
			prompt.WithSteps(
				"Analyze the given instruction to identify key concepts and aspects that need to be researched.",
				"For each aspect, craft a search query using appropriate search operators and syntax.",
				"Ensure queries cover different angles of the topic (technical, practical, comparative, etc.).",
			),
			prompt.WithOutputInstructions(
				"Return exactly the requested number of queries.",
				"Format each query like a search engine query, not a natural language question.",
				"Each query should be a concise string of keywords and operators.",
			),
		),
	})
}

func newChoiceAgent(client weft.CompletionProvider, model string) (*agent.Agent[ChoiceInput, ChoiceOutput], error) {
	return agent.New[ChoiceInput, ChoiceOutput](agent.Config{
		Client: client,
		Model:  model,
		Prompt: prompt.New(
			prompt.WithBackground(
				"You are a decision-making agent that determines whether a new web search is needed to answer the user's question.",
				"Your primary role is to analyze whether the existing context contains sufficient, up-to-date information to answer the question.",
				"You must output a clear TRUE/FALSE decision - TRUE if a new search is needed, FALSE if existing context is sufficient.",
			),
			prompt.WithSteps(
				"1. Analyze the user's question for topic and information requirements",
				"2. Review the available context in scraped_content",
				"3. Check if the context is recent enough using current_date",
				"4. Determine if existing information is sufficient and relevant",
				"5. Make a binary decision: TRUE for new search, FALSE for using existing context",
			),
			prompt.WithOutputInstructions(
				"Your reasoning must clearly state WHY you need or don't need new information",
				"If the context is empty or irrelevant, always decide TRUE for new search",
				"If the question is time-sensitive, check current_date to ensure context is recent",
				"For ambiguous cases, prefer TRUE to gather fresh information",
				"IMPORTANT: Your decision must match your reasoning - don't contradict yourself",
			),
		),
	})
}

func newQuestionAnsweringAgent(client weft.CompletionProvider, model string) (*agent.Agent[QuestionInput, QuestionOutput], error) {
	return agent.New[QuestionInput, QuestionOutput](agent.Config{
		Client: client,
		Model:  model,
		Prompt: prompt.New(
			prompt.WithBackground(
				"You are an expert question-answering agent that provides detailed, accurate answers based on scraped web content.",
				"You always ground your answers in the provided context and acknowledge when information is missing.",
			),
			prompt.WithSteps(
				"Analyze the question to understand what information is being requested.",
				"Search the provided context for relevant information.",
				"Synthesize a comprehensive answer from the available sources.",
				"Formulate specific follow-up questions that would deepen the user's understanding of the topic.",
			),
			prompt.WithOutputInstructions(
				"Provide a detailed answer drawing on the provided context.",
				"Suggest follow-up questions that are specific, not generic.",
				"If the context does not contain the answer, say so rather than inventing one.",
			),
		),
	})
}
