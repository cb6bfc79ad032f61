package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

// RPCClient defines the JSON-RPC operations used against the node
//
//go:generate mockgen -source=rpc.go -destination=../mocks/rpc.go -package=mocks -mock_names=RPCClient=MockRPCClient,RPCDialer=MockRPCDialer
type RPCClient interface {
	// CallContext performs a single JSON-RPC call and decodes the result into result
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error

	// BatchCallContext sends all elements in one request; per-element errors are set on the element
	BatchCallContext(ctx context.Context, b []rpc.BatchElem) error

	// Close closes the connection
	Close()
}

// RPCDialer defines an interface for dialing JSON-RPC endpoints
type RPCDialer interface {
	Dial(ctx context.Context, rawurl string) (RPCClient, error)
}

// RealRPCDialer implements RPCDialer using go-ethereum's rpc package
type RealRPCDialer struct {
	timeout time.Duration
}

// NewRPCDialer creates a new real JSON-RPC dialer. timeout applies to HTTP endpoints.
func NewRPCDialer(timeout time.Duration) RPCDialer {
	return &RealRPCDialer{timeout: timeout}
}

func (d *RealRPCDialer) Dial(ctx context.Context, rawurl string) (RPCClient, error) {
	var opts []rpc.ClientOption
	if d.timeout > 0 {
		opts = append(opts, rpc.WithHTTPClient(&http.Client{Timeout: d.timeout}))
	}

	client, err := rpc.DialOptions(ctx, rawurl, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
