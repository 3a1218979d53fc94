package handler

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"github.com/trickstertwo/lambdalog"
	"github.com/trickstertwo/lambdalog/sink/writer"
)

// Option customizes the wrappers.
type Option func(*options)

type options struct {
	exec      *lambdalog.Execution
	sink      func(context.Context) lambdalog.Sink
	requestID bool
	onDiscard func(n int)
}

// WithExecution pins the Execution the sink is installed into. By default the
// Execution carried by the invocation context is used, which is
// lambdalog.DefaultExecution() unless the caller put one there.
func WithExecution(e *lambdalog.Execution) Option {
	return func(o *options) { o.exec = e }
}

// WithSink supplies the host sink for each invocation.
func WithSink(f func(ctx context.Context) lambdalog.Sink) Option {
	return func(o *options) { o.sink = f }
}

// WithRequestID prefixes every line with "RequestId: <id> ". The id comes from
// the Lambda context, or a random UUID outside Lambda.
func WithRequestID() Option {
	return func(o *options) { o.requestID = true }
}

// OnDiscard reports lines still queued when the invocation ends.
func OnDiscard(f func(n int)) Option {
	return func(o *options) { o.onDiscard = f }
}

var stdout = writer.ForLambda(os.Stdout)

func defaultSink(context.Context) lambdalog.Sink { return stdout }

func newOptions(opts []Option) *options {
	o := &options{sink: defaultSink}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RequestID returns the invocation's AwsRequestID, or a random UUID when ctx
// carries no Lambda context.
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}

func (o *options) sinkFor(ctx context.Context) lambdalog.Sink {
	s := o.sink(ctx)
	if s == nil || !o.requestID {
		return s
	}
	prefix := "RequestId: " + RequestID(ctx) + " "
	if ws, ok := s.(*writer.Sink); ok {
		return ws.WithPrefix(prefix)
	}
	return lambdalog.SinkFunc(func(line string) { s.WriteLine(prefix + line) })
}

// run brackets one invocation: install the sink, run work, always clear.
func (o *options) run(ctx context.Context, work func(context.Context) error) error {
	exec := o.exec
	if exec == nil {
		exec = lambdalog.ExecutionFrom(ctx)
	}
	ctx = lambdalog.NewContext(ctx, exec)

	var scopeOpts []lambdalog.ScopeOption
	if o.onDiscard != nil {
		scopeOpts = append(scopeOpts, lambdalog.OnDiscard(o.onDiscard))
	}
	return lambdalog.Scope(exec, o.sinkFor(ctx), func() error { return work(ctx) }, scopeOpts...)
}
