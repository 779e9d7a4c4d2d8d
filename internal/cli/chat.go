package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/havenlocal/haven/internal/chat"
	"github.com/havenlocal/haven/internal/models"
)

func printMessage(m models.Message) {
	who := "you"
	if m.FromCounselor {
		who = "counselor"
	}
	printlnFn(fmt.Sprintf("[%s] %s: %s", m.Timestamp.Format("3:04 PM"), who, m.Text))
}

// Chat opens the support chat: prints the history (seeding the counselor
// welcome on first open), then reads messages until an empty line. Each sent
// message schedules one scripted counselor reply; replies are printed as they
// arrive, even if the user has already left the chat view.
func (a *App) Chat(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Please log in first.")
		return nil
	}
	owner := a.session.ID

	history, err := a.chatLog.History(ctx, owner)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		welcome := chat.WelcomeMessage(owner)
		if err := a.chatLog.Append(ctx, owner, welcome); err != nil {
			return err
		}
		history = append(history, welcome)
	}

	for _, m := range history {
		printMessage(m)
	}
	printlnFn("(type a message; empty line leaves the chat)")

	for {
		fmt.Print("you> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		m := models.Message{
			ID:        models.NewMessageID(),
			OwnerID:   owner,
			Text:      line,
			Timestamp: time.Now(),
		}
		if err := a.chatLog.Append(ctx, owner, m); err != nil {
			return err
		}
		a.responder.Reply(owner)
	}
}
