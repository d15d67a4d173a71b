package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"webquote/logging"
)

type recordingPusher struct {
	mu     sync.Mutex
	quotes []string
	err    error
	block  bool
	delay  time.Duration
}

func (p *recordingPusher) Push(ctx context.Context, q *Quotation) error {
	if p.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes = append(p.quotes, q.QuoteNumber)
	return p.err
}

type recordingSender struct {
	mu      sync.Mutex
	quotes  []string
	pdfSize int
	err     error
}

func (s *recordingSender) Send(q *Quotation, pdf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = append(s.quotes, q.QuoteNumber)
	s.pdfSize = len(pdf)
	return s.err
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logging.Logger
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return logs
}

func TestDispatcher_Dispatch(t *testing.T) {
	pusher := &recordingPusher{}
	sender := &recordingSender{}
	d := NewDispatcher(pusher, sender, testDocuments(), time.Second)

	q := testQuotation(t, scenarioA(t), ClientInfo{FullName: "A", Email: "a@example.com"})
	d.Dispatch(q)
	d.Wait()

	if len(pusher.quotes) != 1 || pusher.quotes[0] != q.QuoteNumber {
		t.Errorf("pushed = %v", pusher.quotes)
	}
	if len(sender.quotes) != 1 || sender.quotes[0] != q.QuoteNumber {
		t.Errorf("sent = %v", sender.quotes)
	}
	if sender.pdfSize == 0 {
		t.Error("email was sent without the quotation PDF")
	}
}

func TestDispatcher_ErrorsAreLogged(t *testing.T) {
	logs := observeLogs(t)
	pusher := &recordingPusher{err: errors.New("sheet offline")}
	sender := &recordingSender{}
	d := NewDispatcher(pusher, sender, testDocuments(), time.Second)

	d.Dispatch(testQuotation(t, scenarioC(t), ClientInfo{FullName: "A"}))
	d.Wait()

	if logs.FilterMessage("sheet push failed").Len() != 1 {
		t.Errorf("expected one push failure log, got %v", logs.All())
	}
	if logs.FilterMessage("dispatch finished with errors").Len() != 1 {
		t.Error("expected dispatch error summary")
	}
}

func TestDispatcher_EmailFailureDoesNotCancelPush(t *testing.T) {
	logs := observeLogs(t)
	pusher := &recordingPusher{delay: 200 * time.Millisecond}
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(pusher, sender, testDocuments(), 5*time.Second)

	q := testQuotation(t, scenarioA(t), ClientInfo{FullName: "A", Email: "a@example.com"})
	d.Dispatch(q)
	d.Wait()

	if len(pusher.quotes) != 1 || pusher.quotes[0] != q.QuoteNumber {
		t.Errorf("pushed = %v, want the quote despite the email failure", pusher.quotes)
	}
	if n := logs.FilterMessage("sheet push failed").Len(); n != 0 {
		t.Errorf("sheet push failed %d times: %v", n, logs.All())
	}
	if logs.FilterMessage("quote email failed").Len() != 1 {
		t.Errorf("expected one email failure log, got %v", logs.All())
	}
}

func TestDispatcher_Timeout(t *testing.T) {
	logs := observeLogs(t)
	d := NewDispatcher(&recordingPusher{block: true}, nil, testDocuments(), 20*time.Millisecond)

	q := testQuotation(t, scenarioA(t), ClientInfo{FullName: "A"})
	done := make(chan struct{})
	go func() {
		d.Dispatch(q)
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not honour its timeout")
	}
	if logs.FilterMessage("sheet push failed").Len() != 1 {
		t.Errorf("logs = %v", logs.All())
	}
}

func TestDispatcher_NothingConfigured(t *testing.T) {
	d := NewDispatcher(nil, nil, testDocuments(), time.Second)
	d.Dispatch(testQuotation(t, scenarioA(t), ClientInfo{FullName: "A"}))
	d.Wait()
}
