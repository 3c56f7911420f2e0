// Command orderdesk-cli is a terminal chat harness for the assistant: it
// plays the renderer and input-source roles that a web front end would,
// against a fully in-process core.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/PabloGalante/orderdesk-agent/internal/adapters/storage/memory"
	"github.com/PabloGalante/orderdesk-agent/internal/app/assistant"
	"github.com/PabloGalante/orderdesk-agent/internal/catalog"
	"github.com/PabloGalante/orderdesk-agent/internal/config"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
	"github.com/PabloGalante/orderdesk-agent/internal/observability"
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

func main() {
	fast := flag.Bool("fast", false, "skip the typing delays")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	observability.Init("error") // keep the chat window quiet

	orders, faqs, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}

	svc := assistant.NewService(
		orders,
		faqs,
		memory.NewSessionStore(),
		memory.NewMessageStore(),
		memory.NewTicketStore(),
	)

	ctx := context.Background()
	out, err := svc.StartSession(ctx, assistant.StartSessionInput{UserID: "cli"})
	if err != nil {
		log.Fatalf("error starting session: %v", err)
	}

	if out.Welcome != nil {
		render(out.Welcome.Author, out.Welcome.Text)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userStyle.Render("you> "))
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			break
		}

		reply, err := svc.SendMessage(ctx, assistant.SendMessageInput{
			SessionID: out.Session.ID,
			UserID:    out.Session.UserID,
			Text:      text,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		for _, r := range reply.Replies {
			if !*fast && r.Delay > 0 {
				time.Sleep(r.Delay)
			}
			render(r.Message.Author, r.Message.Text)
		}
	}
}

func render(role domain.Role, text string) {
	switch role {
	case domain.RoleSupportAgent:
		fmt.Println(agentStyle.Render("agent> ") + text)
	default:
		fmt.Println(botStyle.Render("bot> ") + text)
	}
	fmt.Println()
}
