package service

import (
	"github.com/inkwell-market/inkwell/internal/config"
	"github.com/inkwell-market/inkwell/internal/handlers/auth"
	"github.com/inkwell-market/inkwell/internal/handlers/ledger"
	"github.com/inkwell-market/inkwell/internal/handlers/orders"
	"github.com/inkwell-market/inkwell/internal/handlers/webhooks"
	"github.com/inkwell-market/inkwell/internal/pg"
	"github.com/inkwell-market/inkwell/internal/repo"
	"github.com/inkwell-market/inkwell/internal/service/authservice"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
	"github.com/inkwell-market/inkwell/internal/service/escrowservice"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/internal/service/ledgerservice"
	"github.com/inkwell-market/inkwell/internal/sweeper"
	pkgauth "github.com/inkwell-market/inkwell/pkg/auth"
	"github.com/inkwell-market/inkwell/pkg/money"
)

type Services struct {
	AuthService    auth.Service
	OrderService   orders.Service
	InvoiceService orders.Invoices
	LedgerService  ledger.Service
	WebhookService webhooks.Service
	Deliverables   sweeper.Deliverables
}

// Gateway is everything the services need from the payment processor
// client: card charges and refunds plus bank payouts.
type Gateway interface {
	escrowservice.PaymentGateway
	ledgerservice.PayoutGateway
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, paymentGateway Gateway, sink escrowservice.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, paymentGateway)
	invoiceService := invoiceservice.New(repo.InvoiceRepo, money.D(cfg.MinimumPrice))
	escrowService := escrowservice.New(ledgerService, paymentGateway, sink)
	deliverableService := deliverableservice.New(
		repo.DeliverableRepo,
		invoiceService,
		escrowService,
		repo.PlanRepo,
		sink,
		txManager,
		cfg.AutoFinalizeDays,
	)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		OrderService:   deliverableService,
		InvoiceService: invoiceService,
		LedgerService:  ledgerService,
		WebhookService: deliverableService,
		Deliverables:   deliverableService,
	}
}
