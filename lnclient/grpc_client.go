package lnclient

import (
	"context"
	"io"
	"time"

	"github.com/go-errors/errors"
	"google.golang.org/grpc"

	"github.com/breez/squeaknode/lnclient/lnrpcpb"
)

// GRPCClient is a Client backed by a live gRPC connection to a Lightning
// node's RPC surface, grounded on the same google.golang.org/grpc
// transport rpcserver.go exposes its Lightning service over.
type GRPCClient struct {
	cc *grpc.ClientConn
}

// NewGRPCClient wraps an already-dialed connection. Callers are expected
// to have established cc with the node's own TLS/macaroon requirements;
// this package is transport-agnostic about authentication.
func NewGRPCClient(cc *grpc.ClientConn) *GRPCClient {
	return &GRPCClient{cc: cc}
}

func (c *GRPCClient) AddInvoice(ctx context.Context, preimage [32]byte, amtMsat int64) (*AddedInvoice, error) {
	req := &lnrpcpb.AddInvoiceRequest{
		RPreimage: preimage[:],
		ValueMsat: amtMsat,
	}
	resp := &lnrpcpb.AddInvoiceResponse{}
	if err := c.cc.Invoke(ctx, "/lnrpc.Lightning/AddInvoice", req, resp); err != nil {
		return nil, err
	}

	var rHash [32]byte
	copy(rHash[:], resp.RHash)

	return &AddedInvoice{
		RHash:          rHash,
		PaymentRequest: resp.PaymentRequest,
	}, nil
}

func (c *GRPCClient) LookupInvoice(ctx context.Context, rHash [32]byte) (*InvoiceInfo, error) {
	req := &lnrpcpb.PaymentHash{RHash: rHash[:]}
	resp := &lnrpcpb.Invoice{}
	if err := c.cc.Invoke(ctx, "/lnrpc.Lightning/LookupInvoice", req, resp); err != nil {
		return nil, err
	}

	return &InvoiceInfo{
		CreationDate: time.Unix(resp.CreationDate, 0),
		Expiry:       time.Duration(resp.Expiry) * time.Second,
		Settled:      resp.Settled,
		SettleIndex:  resp.SettleIndex,
	}, nil
}

func (c *GRPCClient) DecodePayReq(ctx context.Context, payReq string) (*PayReqInfo, error) {
	req := &lnrpcpb.PayReqString{PayReq: payReq}
	resp := &lnrpcpb.PayReq{}
	if err := c.cc.Invoke(ctx, "/lnrpc.Lightning/DecodePayReq", req, resp); err != nil {
		return nil, err
	}

	var hash [32]byte
	copy(hash[:], resp.PaymentHash)
	var dest [33]byte
	copy(dest[:], resp.Destination)

	return &PayReqInfo{
		PaymentHash: hash,
		NumMsat:     resp.NumMsat,
		Destination: dest,
		Timestamp:   time.Unix(resp.Timestamp, 0),
		Expiry:      time.Duration(resp.Expiry) * time.Second,
	}, nil
}

func (c *GRPCClient) PayInvoiceSync(ctx context.Context, payReq string) (*PaymentResult, error) {
	req := &lnrpcpb.SendRequest{PaymentRequest: payReq}
	resp := &lnrpcpb.SendResponse{}
	if err := c.cc.Invoke(ctx, "/lnrpc.Lightning/SendPaymentSync", req, resp); err != nil {
		return nil, err
	}

	var preimage [32]byte
	copy(preimage[:], resp.PaymentPreimage)

	return &PaymentResult{
		PaymentPreimage: preimage,
		PaymentError:    resp.PaymentError,
	}, nil
}

func (c *GRPCClient) SubscribeInvoices(ctx context.Context, settleIndex uint64) (*InvoiceSubscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{ServerStreams: true},
		"/lnrpc.Lightning/SubscribeInvoices")
	if err != nil {
		cancel()
		return nil, err
	}

	req := &lnrpcpb.InvoiceSubscription{SettleIndex: settleIndex}
	if err := stream.SendMsg(req); err != nil {
		cancel()
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		cancel()
		return nil, err
	}

	invoices := make(chan Invoice)
	errs := make(chan error, 1)

	go func() {
		defer close(invoices)

		for {
			msg := &lnrpcpb.Invoice{}
			err := stream.RecvMsg(msg)
			switch {
			case err == io.EOF:
				return
			case ctx.Err() != nil:
				// Cancellation is benign: the stream ending
				// because the caller asked it to is not an
				// error condition.
				return
			case err != nil:
				errs <- errors.Errorf("%v: %v", ErrInvoiceSubscriptionError, err)
				return
			}

			var rHash [32]byte
			copy(rHash[:], msg.RHash)

			select {
			case invoices <- Invoice{
				RHash:       rHash,
				SettleIndex: msg.SettleIndex,
				Settled:     msg.Settled,
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return &InvoiceSubscription{
		Invoices: invoices,
		Errors:   errs,
		Cancel:   cancel,
	}, nil
}

func (c *GRPCClient) GetInfo(ctx context.Context) (*NodeInfo, error) {
	req := &lnrpcpb.GetInfoRequest{}
	resp := &lnrpcpb.GetInfoResponse{}
	if err := c.cc.Invoke(ctx, "/lnrpc.Lightning/GetInfo", req, resp); err != nil {
		return nil, err
	}
	return &NodeInfo{URIs: resp.Uris}, nil
}
