// Command deepresearch is an interactive research assistant built on weft.
//
// A choice agent decides whether the current question needs a fresh web
// search. When it does, a query agent generates search queries, a SearxNG
// instance runs them, and the top hits are scraped and injected into every
// agent's system prompt through a shared context provider. A
// question-answering agent then answers from that context and suggests
// follow-up questions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/loomlight/weft"
	"github.com/loomlight/weft/agent"
)

const searchDecisionType = "Should we perform a new web search? TRUE if we need new or updated information, FALSE if existing " +
	"context is sufficient. Consider: 1) Is the context empty? 2) Is the existing information relevant? " +
	"3) Is the information recent enough?"

const (
	numQueries     = 3
	pagesToScrape  = 3
	maxSearchHits  = 10
	scrapedContent = "scraped_content"
	currentDate    = "current_date"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	client := cfg.NewClient()
	model := cfg.ModelName()

	queryAgent, err := newQueryAgent(client, model)
	if err != nil {
		fatal(err)
	}
	choiceAgent, err := newChoiceAgent(client, model)
	if err != nil {
		fatal(err)
	}
	qaAgent, err := newQuestionAnsweringAgent(client, model)
	if err != nil {
		fatal(err)
	}

	scraped := NewScrapedContentProvider("Scraped Content")
	date := NewCurrentDateProvider("Current Date")

	choiceAgent.RegisterContextProvider(currentDate, date)
	choiceAgent.RegisterContextProvider(scrapedContent, scraped)
	queryAgent.RegisterContextProvider(currentDate, date)
	qaAgent.RegisterContextProvider(currentDate, date)
	qaAgent.RegisterContextProvider(scrapedContent, scraped)

	if err := seedConversation(qaAgent); err != nil {
		fatal(err)
	}

	search := NewSearxNGClient(cfg.SearxNGURL)
	scraper := NewScraper()

	fmt.Println("=== Welcome to the Deep Research Chat! ===")
	fmt.Println("Type 'exit' to end the conversation.")
	fmt.Println()
	fmt.Println("I can help you research and learn about any topic. I'll provide detailed answers")
	fmt.Println("and suggest specific follow-up questions to deepen your understanding.")
	fmt.Println()
	fmt.Println("Here are some example questions to get started:")
	for i, q := range []string{
		"What are the latest breakthroughs in quantum computing?",
		"How does artificial intelligence impact climate change research?",
		"What are the most promising renewable energy technologies?",
		"What discoveries led to the latest Nobel Prize in Physics?",
		"How do black holes affect the structure of galaxies?",
	} {
		fmt.Printf("  %d. %s\n", i+1, q)
	}
	fmt.Println("\n-------------------------------------------")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYour question: ")
		if !scanner.Scan() {
			break
		}
		userMessage := strings.TrimSpace(scanner.Text())
		if userMessage == "" {
			continue
		}
		if strings.EqualFold(userMessage, "exit") {
			fmt.Println("Goodbye!")
			break
		}

		choice, err := choiceAgent.Run(ctx, &ChoiceInput{
			UserMessage:  userMessage,
			DecisionType: searchDecisionType,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "choice agent error: %v\n", err)
			continue
		}

		if choice.Decision {
			fmt.Println("\nPerforming new search")
			fmt.Printf("Reason: %s\n", choice.Reasoning)
			if err := searchAndUpdateContext(ctx, userMessage, queryAgent, search, scraper, scraped); err != nil {
				fmt.Fprintf(os.Stderr, "search error: %v\n", err)
				continue
			}
		} else {
			fmt.Println("\nUsing existing context")
			fmt.Printf("Reason: %s\n", choice.Reasoning)
		}

		answer, err := qaAgent.Run(ctx, &QuestionInput{Question: userMessage})
		if err != nil {
			fmt.Fprintf(os.Stderr, "answer error: %v\n", err)
			continue
		}

		fmt.Printf("\nAnswer: %s\n", answer.Answer)
		if len(answer.FollowUpQuestions) > 0 {
			fmt.Println("\nSome questions you could ask to learn more about this topic:")
			for i, q := range answer.FollowUpQuestions {
				fmt.Printf("%d. %s\n", i+1, q)
			}
		}
	}
}

// searchAndUpdateContext generates queries for the user's question, runs
// them, scrapes the top hits, and replaces the shared scraped content.
func searchAndUpdateContext(
	ctx context.Context,
	userMessage string,
	queryAgent *agent.Agent[QueryInput, QueryOutput],
	search *SearxNGClient,
	scraper *Scraper,
	scraped *ScrapedContentProvider,
) error {
	queryOut, err := queryAgent.Run(ctx, &QueryInput{
		Instruction: userMessage,
		NumQueries:  numQueries,
	})
	if err != nil {
		return fmt.Errorf("generate queries: %w", err)
	}
	fmt.Printf("Generated queries: %v\n", queryOut.Queries)

	results, err := search.Search(ctx, queryOut.Queries, maxSearchHits)
	if err != nil {
		return err
	}
	fmt.Printf("Search done: %d results\n", len(results))

	var items []ContentItem
	for _, result := range results {
		if len(items) == pagesToScrape {
			break
		}
		content, err := scraper.Scrape(ctx, result.URL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scrape %s: %v\n", result.URL, err)
			continue
		}
		items = append(items, ContentItem{Content: content, URL: result.URL})
		fmt.Printf("Scraped: %s\n", result.URL)
	}

	scraped.SetItems(items)
	return nil
}

// seedConversation gives the question-answering agent a one-turn example
// showing the expected answer depth and follow-up question quality.
func seedConversation(qaAgent *agent.Agent[QuestionInput, QuestionOutput]) error {
	mem := qaAgent.Memory()
	mem.NewTurn()
	if _, err := mem.Add(weft.RoleUser, QuestionInput{Question: "Tell me about quantum computing."}); err != nil {
		return err
	}
	_, err := mem.Add(weft.RoleAssistant, QuestionOutput{
		Answer: "Quantum computing is a revolutionary technology that uses quantum mechanics to perform computations. " +
			"Unlike classical computers that use bits (0 or 1), quantum computers use quantum bits or 'qubits' " +
			"that can exist in multiple states simultaneously due to superposition.",
		FollowUpQuestions: []string{
			"What are the main challenges in building a practical quantum computer?",
			"How does quantum entanglement contribute to quantum computing power?",
			"Which companies are currently leading quantum computing research?",
			"What types of problems are quantum computers especially good at solving?",
		},
	})
	return err
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
