package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/repository"
	ledgerservice "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/service"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvcPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// ValidateCard runs the required-field and format checks on the mocked
// payment form. Spaces in the card number are tolerated.
func ValidateCard(card domain.CardDetails) error {
	if strings.TrimSpace(card.NameOnCard) == "" {
		return fmt.Errorf("%w: name on card is required", domain.ErrInvalidCard)
	}

	number := strings.ReplaceAll(strings.TrimSpace(card.Number), " ", "")
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: card number must be 13-19 digits", domain.ErrInvalidCard)
	}
	if !expiryPattern.MatchString(strings.TrimSpace(card.Expiry)) {
		return fmt.Errorf("%w: expiration must be MM/YY", domain.ErrInvalidCard)
	}
	if !cvcPattern.MatchString(strings.TrimSpace(card.CVC)) {
		return fmt.Errorf("%w: CVC must be 3-4 digits", domain.ErrInvalidCard)
	}
	return nil
}

const (
	// checkoutInterval is the per-user cooldown between checkouts.
	checkoutInterval = 2 * time.Second
	// limiterSweepSize is the map size that triggers a sweep of idle limiters.
	limiterSweepSize = 1024
)

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// CheckoutService completes the mocked payment flow: validate the card,
// record a receipt, then clear every project's parts. There is no real
// payment processor behind this.
type CheckoutService struct {
	ledger *ledgerservice.LedgerService
	orders *repository.OrderRepository

	mu       sync.Mutex
	limiters map[string]*userLimiter
}

// NewCheckoutService creates a CheckoutService. The orders repository may be
// nil when no database is configured; receipts are then skipped.
func NewCheckoutService(ledger *ledgerservice.LedgerService, orders *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{
		ledger:   ledger,
		orders:   orders,
		limiters: make(map[string]*userLimiter),
	}
}

// limiter returns the per-user double-submit guard: one checkout every two
// seconds, no burst. A limiter idle for a full cooldown has refilled and is
// indistinguishable from a fresh one, so once the map grows past the sweep
// size those entries are dropped to keep it bounded.
func (s *CheckoutService) limiter(userID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if len(s.limiters) >= limiterSweepSize {
		for uid, ul := range s.limiters {
			if now.Sub(ul.lastSeen) >= checkoutInterval {
				delete(s.limiters, uid)
			}
		}
	}

	ul, ok := s.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rate.Every(checkoutInterval), 1)}
		s.limiters[userID] = ul
	}
	ul.lastSeen = now
	return ul.limiter
}

// Checkout validates the card, snapshots the cart totals into a receipt and
// clears all parts. Clearing publishes the change event, so every open view
// of the cart empties at once.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, card domain.CardDetails) (*domain.Order, error) {
	if !s.limiter(userID).Allow() {
		return nil, domain.ErrTooManyAttempts
	}

	if err := ValidateCard(card); err != nil {
		return nil, err
	}

	cart, err := s.ledger.Cart(ctx, userID)
	if err != nil {
		return nil, err
	}

	itemCount := 0
	for _, p := range cart.Projects {
		itemCount += len(p.Parts)
	}

	var order *domain.Order
	if s.orders != nil {
		order, err = s.orders.Create(ctx, userID, cart.GrandTotal, itemCount)
		if err != nil {
			return nil, fmt.Errorf("failed to record order: %w", err)
		}
	} else {
		log.Printf("No orders database configured, skipping receipt for user %s", userID)
	}

	if err := s.ledger.ClearAllParts(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

// Orders returns the user's receipt history.
func (s *CheckoutService) Orders(ctx context.Context, userID string) ([]domain.Order, error) {
	if s.orders == nil {
		return []domain.Order{}, nil
	}
	return s.orders.List(ctx, userID)
}
