package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"webquote/logging"
)

// QuotePusher records a submitted quotation somewhere outside the app.
type QuotePusher interface {
	Push(ctx context.Context, q *Quotation) error
}

// QuoteSender delivers a quotation, with its PDF, to the client.
type QuoteSender interface {
	Send(q *Quotation, pdf []byte) error
}

// Dispatcher runs the outbound integrations of a submitted quotation in the
// background. Failures are logged and never reach the caller.
type Dispatcher struct {
	pusher  QuotePusher
	sender  QuoteSender
	docs    *QuoteDocuments
	timeout time.Duration
	log     *zap.Logger

	wg sync.WaitGroup
}

// NewDispatcher wires the integrations. Either of pusher and sender may be
// nil to disable it.
func NewDispatcher(pusher QuotePusher, sender QuoteSender, docs *QuoteDocuments, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		pusher:  pusher,
		sender:  sender,
		docs:    docs,
		timeout: timeout,
		log:     logging.Named("dispatch"),
	}
}

// Dispatch starts pushing and emailing q and returns immediately. The two
// share the dispatch timeout; a failure in one does not cancel the other.
func (d *Dispatcher) Dispatch(q *Quotation) {
	if d.pusher == nil && d.sender == nil {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		var g errgroup.Group
		if d.pusher != nil {
			g.Go(func() error {
				if err := d.pusher.Push(ctx, q); err != nil {
					d.log.Warn("sheet push failed", logging.Quote(q.QuoteNumber), zap.Error(err))
					return err
				}
				return nil
			})
		}
		if d.sender != nil {
			g.Go(func() error {
				pdf, err := d.docs.QuotationPDF(q)
				if err != nil {
					d.log.Warn("quotation PDF failed, emailing without attachment", logging.Quote(q.QuoteNumber), zap.Error(err))
				}
				if err := d.sender.Send(q, pdf); err != nil {
					d.log.Warn("quote email failed", logging.Quote(q.QuoteNumber), zap.Error(err))
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			d.log.Error("dispatch finished with errors", logging.Quote(q.QuoteNumber), zap.Error(err))
			return
		}
		d.log.Debug("dispatch finished", logging.Quote(q.QuoteNumber))
	}()
}

// Wait blocks until every started dispatch has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
