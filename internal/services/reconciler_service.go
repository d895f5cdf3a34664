package services

import (
	"context"
	"log"

	"github.com/charplate01/tesla-checkout/internal/processor"
	"github.com/google/uuid"
)

// ReconcilerService decides whether an email maps to an existing remote
// customer or requires minting a new one.
type ReconcilerService struct {
	ledger *LedgerService
	proc   processor.Processor
}

func NewReconcilerService(ledger *LedgerService, proc processor.Processor) *ReconcilerService {
	return &ReconcilerService{ledger: ledger, proc: proc}
}

// Reconcile returns the (remote customer id, internal id) pair for an email.
// A known email returns the stored pair unchanged. An unknown or empty email
// creates a remote customer tagged with a fresh internal id; the local mapping
// is written only after remote creation succeeds, so a processor failure
// leaves no partial record.
//
// Concurrent calls for the same new email can both miss the lookup and create
// two remote customers; the insert-if-absent keeps the first writer's mapping
// and the loser's remote customer is orphaned.
func (s *ReconcilerService) Reconcile(ctx context.Context, email string) (stripeCustomerID, internalID string, err error) {
	if email != "" {
		rec, err := s.ledger.FindCustomerByEmail(email)
		if err != nil {
			return "", "", err
		}
		if rec != nil {
			return rec.StripeCustomerID, rec.InternalID, nil
		}
	}

	internalID = uuid.NewString()
	cust, err := s.proc.CreateCustomer(ctx, email, map[string]string{"internal_id": internalID})
	if err != nil {
		return "", "", err
	}

	if err := s.ledger.SaveCustomerRecord(internalID, email, cust.ID); err != nil {
		log.Printf("[RECONCILER] Failed to persist mapping for customer %s: %v", cust.ID, err)
		return "", "", err
	}

	return cust.ID, internalID, nil
}
