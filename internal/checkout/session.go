// Package checkout drives the two-step purchase flow: collect the buyer's
// Minecraft and Discord usernames, then show a UPI payment QR code and wait
// for the buyer to confirm the out-of-band payment. The system cannot verify
// the payment itself; completion is a client assertion reconciled by admins.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/caffeinepub/cupcakemc/internal/model"
)

// Step is the session state.
type Step string

const (
	StepAccount   Step = "account"
	StepPayment   Step = "payment"
	StepCompleted Step = "completed"
)

// QRState is the observable outcome of the code-generation step.
type QRState string

const (
	QRNone       QRState = "none"
	QRGenerating QRState = "generating"
	QRReady      QRState = "ready"
	QRFailed     QRState = "failed"
)

var (
	ErrEmptyCart         = errors.New("checkout: cart is empty")
	ErrMissingUsernames  = errors.New("checkout: both Minecraft and Discord usernames are required")
	ErrWrongStep         = errors.New("checkout: not allowed in the current step")
	ErrCompletionPending = errors.New("checkout: a completion attempt is already in flight")
	ErrQRNotReady        = errors.New("checkout: QR code is not ready")
	ErrSessionCompleted  = errors.New("checkout: session already completed")
)

// Completer invokes the purchase-completion mutation with the two buyer
// identifiers. It is called at most once concurrently per session.
type Completer func(ctx context.Context, minecraftUsername, discordUsername string) error

// QRGenerator renders a payment URI as a scannable image.
type QRGenerator interface {
	Generate(ctx context.Context, data string, size int) ([]byte, error)
}

// QRSize is the rendered image edge in pixels.
const QRSize = 280

// Session is the ephemeral state of one purchase attempt. It is discarded on
// close or successful completion and never persisted.
type Session struct {
	ID uuid.UUID

	mu                sync.Mutex
	step              Step
	cart              []model.CartItem
	totalMinor        int64
	upi               model.UPIConfig
	minecraftUsername string
	discordUsername   string
	qrState           QRState
	qrImage           []byte
	completing        bool

	complete Completer
	qrgen    QRGenerator
}

// NewSession snapshots the cart and payment target for one checkout attempt.
func NewSession(cart []model.CartItem, upi model.UPIConfig, complete Completer, qrgen QRGenerator) (*Session, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	return &Session{
		ID:         uuid.New(),
		step:       StepAccount,
		cart:       cart,
		totalMinor: model.CartTotalMinor(cart),
		upi:        upi,
		qrState:    QRNone,
		complete:   complete,
		qrgen:      qrgen,
	}, nil
}

// View is a snapshot of the session for rendering.
type View struct {
	ID         uuid.UUID        `json:"id"`
	Step       Step             `json:"step"`
	Items      []model.CartItem `json:"items"`
	TotalMinor int64            `json:"totalMinor"`
	Total      string           `json:"total"`
	Merchant   string           `json:"merchant"`
	QRState    QRState          `json:"qrState"`
	Completing bool             `json:"completing"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:         s.ID,
		Step:       s.step,
		Items:      s.cart,
		TotalMinor: s.totalMinor,
		Total:      model.FormatAmount(s.totalMinor),
		Merchant:   s.upi.MerchantName,
		QRState:    s.qrState,
		Completing: s.completing,
	}
}

// ProceedToPayment validates the trimmed identifiers and advances to the
// payment step. Nothing is sent to the backend here; validation failures
// never leave the client.
func (s *Session) ProceedToPayment(minecraftUsername, discordUsername string) error {
	mc := strings.TrimSpace(minecraftUsername)
	dc := strings.TrimSpace(discordUsername)
	if mc == "" || dc == "" {
		return ErrMissingUsernames
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepAccount {
		return ErrWrongStep
	}
	s.minecraftUsername = mc
	s.discordUsername = dc
	s.step = StepPayment
	s.qrState = QRGenerating
	return nil
}

// GenerateQR renders the payment URI. Failure leaves the session in the
// payment step with the entered identifiers intact; retrying calls this
// again.
func (s *Session) GenerateQR(ctx context.Context) error {
	s.mu.Lock()
	if s.step != StepPayment {
		s.mu.Unlock()
		return ErrWrongStep
	}
	s.qrState = QRGenerating
	uri := PaymentURI(s.upi, s.totalMinor)
	s.mu.Unlock()

	img, err := s.qrgen.Generate(ctx, uri, QRSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepPayment {
		// session moved on while we were generating; drop the result
		return nil
	}
	if err != nil {
		s.qrState = QRFailed
		s.qrImage = nil
		return err
	}
	s.qrState = QRReady
	s.qrImage = img
	return nil
}

// QRImage returns the rendered code once ready.
func (s *Session) QRImage() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.qrState != QRReady {
		return nil, ErrQRNotReady
	}
	return s.qrImage, nil
}

// Back returns to the account step. Disallowed while a completion attempt is
// in flight; clears any QR error state.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.completing {
		return ErrCompletionPending
	}
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.step = StepAccount
	s.qrState = QRNone
	s.qrImage = nil
	return nil
}

// Confirm records the buyer's assertion that the UPI payment went through and
// invokes the completion mutation. Exactly one attempt may be in flight; a
// second confirmation while one is pending is rejected without a remote
// call. Failure keeps the session in the payment step for a retry.
func (s *Session) Confirm(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.step == StepCompleted:
		s.mu.Unlock()
		return ErrSessionCompleted
	case s.step != StepPayment:
		s.mu.Unlock()
		return ErrWrongStep
	case s.completing:
		s.mu.Unlock()
		return ErrCompletionPending
	}
	s.completing = true
	mc, dc := s.minecraftUsername, s.discordUsername
	s.mu.Unlock()

	err := s.complete(ctx, mc, dc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.completing = false
	if err != nil {
		return err
	}
	s.step = StepCompleted
	return nil
}

// Completed reports whether the purchase went through.
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step == StepCompleted
}
