// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// DefaultServerAddr is the recursive resolver queried when none is
// configured.
const DefaultServerAddr = "8.8.8.8:53"

// maxDatagramSize is the receive buffer size, matching the classic
// RFC 1035 UDP message limit.
const maxDatagramSize = 512

// ErrQueryTimeout means the context deadline expired before a datagram
// carrying the query's transaction ID arrived.
var ErrQueryTimeout = errors.New("timeout waiting for matching DNS response")

// Resolver resolves A records by sending single-question queries to a
// recursive resolver over UDP and correlating replies by transaction ID.
//
// The zero value queries [DefaultServerAddr].
type Resolver struct {
	// ServerAddr optionally overrides [DefaultServerAddr]. It must be in
	// host:port form.
	ServerAddr string
}

func (r *Resolver) serverAddr() string {
	if r.ServerAddr != "" {
		return r.ServerAddr
	}
	return DefaultServerAddr
}

// Resolve sends an A/IN query for name and blocks until a response carrying
// the query's transaction ID arrives. Datagrams with a different leading ID
// are discarded and the wait continues.
//
// A context deadline bounds the whole wait and surfaces as
// [ErrQueryTimeout]; cancelling the context surfaces its error. Without a
// deadline the wait blocks indefinitely.
func (r *Resolver) Resolve(ctx context.Context, name string) (*AnswerRecord, error) {
	query, err := NewQuery(name)
	if err != nil {
		return nil, err
	}

	raddr, err := net.ResolveUDPAddr("udp", r.serverAddr())
	if err != nil {
		return nil, fmt.Errorf("resolving server address: %w", err)
	}

	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, fmt.Errorf("opening UDP socket: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("setting socket deadline: %w", err)
		}
	}

	// Unblock the receive loop when the context is cancelled.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if _, err := conn.WriteToUDP(query.Message, raddr); err != nil {
		return nil, fmt.Errorf("sending query: %w", err)
	}

	buf := make([]byte, maxDatagramSize)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				if errors.Is(ctxErr, context.DeadlineExceeded) {
					return nil, ErrQueryTimeout
				}
				return nil, ctxErr
			}
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return nil, ErrQueryTimeout
			}
			return nil, fmt.Errorf("receiving response: %w", err)
		}
		if n < HeaderSize || ReadUint16(buf[:n]) != query.ID {
			continue
		}
		return ParseResponse(buf[:n], query.Question, query.ID)
	}
}

// Resolve resolves name using a zero-value [Resolver].
func Resolve(ctx context.Context, name string) (*AnswerRecord, error) {
	r := &Resolver{}
	return r.Resolve(ctx, name)
}
