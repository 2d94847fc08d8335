package repo

import (
	"github.com/inkwell-market/inkwell/internal/pg"
	deliverablerepo "github.com/inkwell-market/inkwell/internal/repo/deliverable-repo"
	invoicerepo "github.com/inkwell-market/inkwell/internal/repo/invoice-repo"
	ledgerrepo "github.com/inkwell-market/inkwell/internal/repo/ledger-repo"
	userrepo "github.com/inkwell-market/inkwell/internal/repo/user-repo"
	"github.com/inkwell-market/inkwell/internal/service/authservice"
	"github.com/inkwell-market/inkwell/internal/service/deliverableservice"
	"github.com/inkwell-market/inkwell/internal/service/invoiceservice"
	"github.com/inkwell-market/inkwell/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	PlanRepo        deliverableservice.Plans
	LedgerRepo      ledgerservice.Repo
	InvoiceRepo     invoiceservice.Repo
	DeliverableRepo deliverableservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	users := userrepo.New(conn)
	ledger := ledgerrepo.New(conn, txManager)
	invoices := invoicerepo.New(conn, txManager)
	deliverables := deliverablerepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        users,
		PlanRepo:        users,
		LedgerRepo:      ledger,
		InvoiceRepo:     invoices,
		DeliverableRepo: deliverables,
	}
}
