package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/models"
)

// quickPrompts are canned conversation starters the user can pick by number.
var quickPrompts = []string{
	"Validate my business idea",
	"Draft a 30-second elevator pitch",
	"Suggest a go-to-market strategy",
	"How do I find my first 10 customers?",
}

// Chat shows the transcript, reads a message (a bare number picks a quick
// prompt), and appends the assistant's reply. While a reply is pending the
// busy flag blocks resubmission; the call has no cancellation, a failed
// generation resolves to the assistant's fixed fallback text.
func (a *App) Chat(ctx context.Context) error {

	for _, msg := range a.transcript {
		who := "you"
		if msg.Role == models.RoleAssistant {
			who = "nova"
		}
		printlnFn(fmt.Sprintf("%s> %s", who, msg.Content))
	}

	for n, p := range quickPrompts {
		printlnFn(fmt.Sprintf("  [%d] %s", n+1, p))
	}

	text, err := GetSimpleText(a.reader, "Message (a number picks a quick prompt, empty line cancels)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if text == "" {
		return nil
	}
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(quickPrompts) {
		text = quickPrompts[n-1]
	}

	if a.busy {
		printlnFn("Nova is still thinking, please wait")
		return nil
	}
	a.busy = true

	a.transcript = append(a.transcript, models.ChatMessage{
		Role: models.RoleUser, Content: text, Timestamp: time.Now().UnixMilli(),
	})

	reply := a.assistant.Generate(ctx, text)
	a.busy = false

	a.transcript = append(a.transcript, models.ChatMessage{
		Role: models.RoleAssistant, Content: reply, Timestamp: time.Now().UnixMilli(),
	})

	printlnFn("nova>", reply)
	return nil
}
