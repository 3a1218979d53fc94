// Package handler brackets AWS Lambda invocations with lambdalog sink
// installation and teardown.
//
//	func main() {
//		handler.Start(func(ctx context.Context, in Order) (Receipt, error) {
//			log.WithContext(ctx).Info("processing {}", in.ID)
//			...
//		})
//	}
package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-lambda-go/lambda"
)

// Wrap returns h bracketed so the invocation's sink is installed before h
// runs and cleared after it returns, fails or panics.
func Wrap[I, O any](h func(context.Context, I) (O, error), opts ...Option) func(context.Context, I) (O, error) {
	o := newOptions(opts)
	return func(ctx context.Context, in I) (O, error) {
		var out O
		err := o.run(ctx, func(ctx context.Context) error {
			var herr error
			out, herr = h(ctx, in)
			return herr
		})
		return out, err
	}
}

// HandlerFunc adapts a raw-payload function to lambda.Handler.
type HandlerFunc func(ctx context.Context, payload []byte) ([]byte, error)

func (f HandlerFunc) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	return f(ctx, payload)
}

// WrapHandler brackets a raw-payload lambda.Handler.
func WrapHandler(h lambda.Handler, opts ...Option) lambda.Handler {
	o := newOptions(opts)
	return HandlerFunc(func(ctx context.Context, payload []byte) ([]byte, error) {
		var out []byte
		err := o.run(ctx, func(ctx context.Context) error {
			var herr error
			out, herr = h.Invoke(ctx, payload)
			return herr
		})
		return out, err
	})
}

// StreamFunc reads the request from in and writes the response to out.
type StreamFunc func(ctx context.Context, in io.Reader, out io.Writer) error

func (f StreamFunc) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := f(ctx, bytes.NewReader(payload), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WrapStream brackets a stream-shaped handler.
func WrapStream(f StreamFunc, opts ...Option) lambda.Handler {
	return WrapHandler(f, opts...)
}

// Start wraps h and hands it to the Lambda runtime. It does not return.
func Start[I, O any](h func(context.Context, I) (O, error), opts ...Option) {
	lambda.Start(Wrap(h, opts...))
}

// StartHandler wraps h and hands it to the Lambda runtime. It does not return.
func StartHandler(h lambda.Handler, opts ...Option) {
	lambda.StartHandler(WrapHandler(h, opts...))
}
