// Package lnclient defines the narrow Lightning-node surface the squeak
// sale protocol is built on: registering a HODL invoice whose preimage is
// chosen by the caller, looking that invoice back up, decoding a payment
// request, paying one synchronously, and subscribing to settlements.
//
// The shape of this interface mirrors, method for method, what
// rpcserver.go implements server-side against an lnd/lightninglib node
// (AddInvoice, LookupInvoice, DecodePayReq, SendPaymentSync,
// SubscribeInvoices, GetInfo) — this package is the corresponding
// caller-side contract a squeak node uses against its own Lightning
// backend.
package lnclient

import (
	"context"
	"time"

	"github.com/go-errors/errors"
)

// ErrInvoiceSubscriptionError wraps any non-cancellation error surfaced by
// a settled-invoice subscription stream.
var ErrInvoiceSubscriptionError = errors.New("invoice subscription error")

// AddedInvoice is the result of registering a new invoice.
type AddedInvoice struct {
	RHash          [32]byte
	PaymentRequest string
}

// InvoiceInfo is the subset of invoice state LookupInvoice exposes.
type InvoiceInfo struct {
	CreationDate time.Time
	Expiry       time.Duration
	Settled      bool
	SettleIndex  uint64
}

// PayReqInfo is the decoded content of a BOLT-11 payment request.
type PayReqInfo struct {
	PaymentHash [32]byte
	NumMsat     int64
	Destination [33]byte
	Timestamp   time.Time
	Expiry      time.Duration
}

// PaymentResult is the outcome of a synchronous payment attempt.
type PaymentResult struct {
	PaymentPreimage [32]byte
	PaymentError    string
}

// HasPreimage reports whether the payment produced a usable preimage. A
// failed payment returns an all-zero preimage and a non-empty
// PaymentError.
func (p PaymentResult) HasPreimage() bool {
	var zero [32]byte
	return p.PaymentPreimage != zero
}

// Invoice is a single settlement event delivered by SubscribeInvoices.
type Invoice struct {
	RHash       [32]byte
	SettleIndex uint64
	Settled     bool
}

// NodeInfo is the subset of node identity GetInfo exposes.
type NodeInfo struct {
	URIs []string
}

// InvoiceSubscription is a cancelable stream of settlement events. Cancel
// is idempotent and safe to call from any goroutine; it causes Invoices to
// be closed once the in-flight delivery (if any) completes.
type InvoiceSubscription struct {
	Invoices <-chan Invoice
	Errors   <-chan error
	Cancel   context.CancelFunc
}

// Client is the Lightning-node surface the squeak core depends on.
type Client interface {
	// AddInvoice registers a HODL-style invoice whose preimage is
	// supplied by the caller rather than generated by the node.
	AddInvoice(ctx context.Context, preimage [32]byte, amtMsat int64) (*AddedInvoice, error)

	// LookupInvoice returns the current state of a previously added
	// invoice, identified by its payment hash.
	LookupInvoice(ctx context.Context, rHash [32]byte) (*InvoiceInfo, error)

	// DecodePayReq decodes a BOLT-11 payment request without paying it.
	DecodePayReq(ctx context.Context, payReq string) (*PayReqInfo, error)

	// PayInvoiceSync pays a payment request and blocks until the
	// attempt resolves, successfully or not.
	PayInvoiceSync(ctx context.Context, payReq string) (*PaymentResult, error)

	// SubscribeInvoices streams settlement events for invoices whose
	// settle index is strictly greater than settleIndex. Closing the returned subscription's
	// Cancel func ends the stream without error.
	SubscribeInvoices(ctx context.Context, settleIndex uint64) (*InvoiceSubscription, error)

	// GetInfo returns this node's own identity, including the URIs
	// other nodes can use to reach it.
	GetInfo(ctx context.Context) (*NodeInfo, error)
}
