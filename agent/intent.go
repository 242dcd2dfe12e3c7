package agent

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/logx"
	"wayfarer/session"
)

// Intent is the classified purpose of one user message.
type Intent string

const (
	IntentSmallTalk    Intent = "small_talk"
	IntentConfirmation Intent = "confirmation"
	IntentPlanning     Intent = "planning"
)

const intentPromptTemplate = `Classify the intent of the user message into ONE category:

CATEGORIES:
- small_talk: greetings, thanks, general questions, social conversation
- confirmation: explicit go-ahead to launch an action ("do it", "go", "ok go", "sounds good")
- planning: travel planning request, destination/dates/budget information

MESSAGE: %q

ANSWER WITH EXACTLY ONE OF: small_talk, confirmation, planning`

var validIntents = []Intent{IntentSmallTalk, IntentConfirmation, IntentPlanning}

// classifyIntent asks the bound model to label the message against the
// closed intent set, matching first exactly and then by substring. Any
// model failure or unusable answer falls back to the keyword heuristic;
// classification itself never fails a turn.
func (a *Agent) classifyIntent(ctx context.Context, userInput string) Intent {
	prompt := fmt.Sprintf(intentPromptTemplate, userInput)
	resp, err := a.client.Chat(ctx, []session.Message{session.UserMessage(prompt)}, nil)
	if err != nil {
		logx.Warn().Err(err).Msg("semantic intent detection failed, using keyword fallback")
		return keywordIntent(userInput)
	}

	answer := Intent(strings.ToLower(strings.TrimSpace(resp.Content)))
	for _, valid := range validIntents {
		if answer == valid {
			return valid
		}
	}
	for _, valid := range validIntents {
		if strings.Contains(string(answer), string(valid)) {
			return valid
		}
	}
	return IntentPlanning
}

var (
	greetingTokens = []string{"hello", "hi", "hey", "thanks", "thank you", "bonjour", "salut", "merci", "goodbye", "bye"}
	goAheadTokens  = []string{"do it", "go", "go ahead", "ok", "sounds good", "fais le", "lance", "vas-y", "c'est bon"}
)

// keywordIntent is the never-failing fallback classifier. Short
// greeting-like messages read as small talk, short go-ahead messages as
// confirmation, everything else as planning.
func keywordIntent(userInput string) Intent {
	lower := strings.ToLower(strings.TrimSpace(userInput))

	if len(userInput) < 50 {
		for _, word := range greetingTokens {
			if strings.Contains(lower, word) {
				return IntentSmallTalk
			}
		}
	}
	if len(userInput) < 30 {
		for _, word := range goAheadTokens {
			if strings.Contains(lower, word) {
				return IntentConfirmation
			}
		}
	}
	return IntentPlanning
}
