package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inkwell-market/inkwell/internal/config"
	authhandlers "github.com/inkwell-market/inkwell/internal/handlers/auth"
	ledgerhandlers "github.com/inkwell-market/inkwell/internal/handlers/ledger"
	ordershandlers "github.com/inkwell-market/inkwell/internal/handlers/orders"
	webhookhandlers "github.com/inkwell-market/inkwell/internal/handlers/webhooks"
	"github.com/inkwell-market/inkwell/internal/service"
	"github.com/inkwell-market/inkwell/pkg/auth"
	"github.com/inkwell-market/inkwell/pkg/money"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	GetDeliverables(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	AddLineItem(w http.ResponseWriter, r *http.Request)
	RemoveLineItem(w http.ResponseWriter, r *http.Request)
	SetTotal(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	MarkFinal(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	ClaimDispute(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ConnectBank(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	PaymentEvent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	LedgerHandler  LedgerHandler
	WebhookHandler WebhookHandler
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		OrderHandler:   ordershandlers.New(s.OrderService, s.InvoiceService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService, money.D(cfg.BankFee)),
		WebhookHandler: webhookhandlers.New(s.WebhookService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})

	r.Post("/api/webhooks/payments", h.WebhookHandler.PaymentEvent)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.PlaceOrder)
			r.Get("/", h.OrderHandler.GetDeliverables)
			r.Route("/deliverables/{id}", func(r chi.Router) {
				r.Get("/invoice", h.OrderHandler.GetInvoice)
				r.Post("/lines", h.OrderHandler.AddLineItem)
				r.Delete("/lines/{lineID}", h.OrderHandler.RemoveLineItem)
				r.Post("/total", h.OrderHandler.SetTotal)
				r.Post("/accept", h.OrderHandler.Accept)
				r.Post("/pay", h.OrderHandler.Pay)
				r.Post("/start", h.OrderHandler.Start)
				r.Post("/final", h.OrderHandler.MarkFinal)
				r.Post("/dispute", h.OrderHandler.Dispute)
				r.Post("/claim", h.OrderHandler.ClaimDispute)
				r.Post("/approve", h.OrderHandler.Approve)
				r.Post("/refund", h.OrderHandler.Refund)
				r.Post("/cancel", h.OrderHandler.Cancel)
				r.Post("/reopen", h.OrderHandler.Reopen)
			})
		})
		r.Route("/api/ledger", func(r chi.Router) {
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Post("/withdraw", h.LedgerHandler.Withdraw)
			r.Post("/bank", h.LedgerHandler.ConnectBank)
			r.Get("/transactions", h.LedgerHandler.GetTransactions)
		})
	})

	return r
}
