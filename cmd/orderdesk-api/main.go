package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/PabloGalante/orderdesk-agent/internal/adapters/http"
	"github.com/PabloGalante/orderdesk-agent/internal/adapters/storage/memory"
	"github.com/PabloGalante/orderdesk-agent/internal/app/assistant"
	"github.com/PabloGalante/orderdesk-agent/internal/app/tickets"
	"github.com/PabloGalante/orderdesk-agent/internal/catalog"
	"github.com/PabloGalante/orderdesk-agent/internal/config"
	"github.com/PabloGalante/orderdesk-agent/internal/observability"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	observability.Init(cfg.LogLevel)
	logger := observability.Logger()

	orders, faqs, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}
	logger.Info("catalog loaded",
		"orders", len(orders.ListAll()),
		"faqs", len(faqs.ListAll()),
		"file", cfg.CatalogFile,
	)

	sessionStore := memory.NewSessionStore()
	messageStore := memory.NewMessageStore()
	ticketStore := memory.NewTicketStore()

	svc := assistant.NewService(orders, faqs, sessionStore, messageStore, ticketStore)
	ticketSvc := tickets.NewService(ticketStore)

	handler := httpadapter.NewServer(svc, ticketSvc, orders, faqs, cfg.HistoryLimit)

	addr := ":" + cfg.Port
	logger.Info("orderdesk API listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
