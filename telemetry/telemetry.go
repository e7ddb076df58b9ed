// Package telemetry exports reflow/render phase spans to an OTLP
// collector over gRPC, using the same wire types and transport a real
// observability pipeline in this corpus would reach for.
package telemetry

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
)

// Exporter batches compositor phase spans and ships them to an OTLP/gRPC
// collector. It holds no compositor-specific state: callers record spans
// with Span and send them with Flush; Close does not flush.
type Exporter struct {
	conn   *grpc.ClientConn
	client coltracepb.TraceServiceClient
	scope  *commonpb.InstrumentationScope
	buf    []*tracepb.Span
}

// Dial connects to an OTLP collector at endpoint (host:port) over an
// insecure gRPC channel, suitable for a sidecar collector on localhost.
func Dial(ctx context.Context, endpoint string) (*Exporter, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Exporter{
		conn:   conn,
		client: coltracepb.NewTraceServiceClient(conn),
		scope:  &commonpb.InstrumentationScope{Name: "compose.compositor"},
	}, nil
}

// Close releases the gRPC connection.
func (e *Exporter) Close() error {
	return e.conn.Close()
}

// Span records one compositor phase's timing as an OTLP span, buffered
// until Flush is called. name is a phase like "reflow" or "render".
func (e *Exporter) Span(name string, start, end time.Time, traceID, spanID []byte) {
	e.buf = append(e.buf, &tracepb.Span{
		TraceId:           traceID,
		SpanId:            spanID,
		Name:              name,
		StartTimeUnixNano: uint64(start.UnixNano()),
		EndTimeUnixNano:   uint64(end.UnixNano()),
		Kind:              tracepb.Span_SPAN_KIND_INTERNAL,
	})
}

// Flush sends every buffered span to the collector in one request and,
// if the export succeeds, clears the buffer.
func (e *Exporter) Flush(ctx context.Context) error {
	if len(e.buf) == 0 {
		return nil
	}

	req := &coltracepb.ExportTraceServiceRequest{
		ResourceSpans: []*tracepb.ResourceSpans{
			{
				Resource: &resourcepb.Resource{
					Attributes: []*commonpb.KeyValue{
						{Key: "service.name", Value: &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: "compose"}}},
					},
				},
				ScopeSpans: []*tracepb.ScopeSpans{
					{Scope: e.scope, Spans: e.buf},
				},
			},
		},
	}

	_, err := e.client.Export(ctx, req)
	if err == nil {
		e.buf = e.buf[:0]
	}
	return err
}
