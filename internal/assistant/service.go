package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Message is one turn of the chat widget's conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// historyWindow limits how many trailing turns are included in the prompt.
const historyWindow = 3

// minAnswerLen guards against degenerate generations.
const minAnswerLen = 10

// Service answers visitor questions from the static profile. Upstream
// failures are downgraded to a soft apology so the chat UI never sees an
// error status.
type Service struct {
	profile *Profile
	client  *Client
}

func NewService(profile *Profile, client *Client) *Service {
	return &Service{profile: profile, client: client}
}

func (s *Service) fallback() string {
	return fmt.Sprintf("I'm experiencing some technical difficulties right now. "+
		"Please try again in a moment, or feel free to contact %s directly through the contact form.",
		firstName(s.profile.Name))
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

// Ask builds the prompt, calls the generation API and returns an answer.
// It never returns an error: failures are logged and replaced with the
// fallback text.
func (s *Service) Ask(ctx context.Context, question string, history []Message) string {
	prompt := s.buildPrompt(question, history)

	answer, err := s.client.Generate(ctx, prompt)
	if err != nil {
		log.Printf("assistant generate failed: %v", err)
		return s.fallback()
	}

	answer = strings.TrimSpace(answer)
	if len(answer) < minAnswerLen {
		return "I'm sorry, I couldn't generate a proper response. Could you please rephrase your question?"
	}
	return answer
}

func (s *Service) buildPrompt(question string, history []Message) string {
	p := s.profile

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s's AI assistant. You should answer questions about %s in first person "+
		"as if you are representing him professionally. Be conversational, helpful, and accurate. "+
		"Only answer questions related to %s's professional background, skills, projects, and experience.\n\n",
		p.Name, firstName(p.Name), firstName(p.Name))

	fmt.Fprintf(&b, "PORTFOLIO INFORMATION:\nName: %s\n\n", p.Name)
	fmt.Fprintf(&b, "About: %s\n\n", strings.Join(p.About.Description, " "))
	fmt.Fprintf(&b, "Core Skills: %s\n\n", strings.Join(p.About.Skills, ", "))

	b.WriteString("Detailed Skills:\n")
	for _, sk := range p.Skills {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", sk.Title, sk.Description, strings.Join(sk.Technologies, ", "))
	}

	b.WriteString("\nProjects:\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "- %s: %s\n    Technologies: %s\n    URL: %s\n    GitHub: %s\n\n",
			pr.Title, pr.Description, strings.Join(pr.Technologies, ", "), pr.URL, pr.GitHubURL)
	}

	b.WriteString("Experience:\n")
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s)\n    Duration: %s\n    Location: %s\n    Description: %s\n    Skills: %s\n\n",
			exp.Role, exp.Company, exp.Period, exp.Duration, exp.Location, exp.Description,
			strings.Join(exp.Skills, ", "))
	}

	if ctxLines := historyContext(history); ctxLines != "" {
		fmt.Fprintf(&b, "\nPrevious conversation:\n%s\n", ctxLines)
	}

	fmt.Fprintf(&b, "\nCurrent question: %s\n\n", question)

	fmt.Fprintf(&b, "Instructions:\n"+
		"- Answer in first person as %s\n"+
		"- Be professional but conversational\n"+
		"- Keep responses concise (2-3 sentences max unless more detail is specifically requested)\n"+
		"- If asked about something not in the portfolio data, politely redirect to what you can help with\n"+
		"- Don't make up information not provided in the portfolio data\n"+
		"- For technical questions, reference specific technologies and projects when relevant\n\n"+
		"Answer:", p.Name)

	return b.String()
}

func historyContext(history []Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, msg.Role+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
