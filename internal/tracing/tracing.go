package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
	AgentHostPort() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the global tracer. With tracing off the opentracing no-op tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaegerLogger{}))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}

type jaegerLogger struct{}

func (jaegerLogger) Error(msg string) {
	logger.Error("jaeger", zap.String("msg", msg))
}

func (jaegerLogger) Infof(msg string, args ...interface{}) {
	logger.Named("jaeger").Sugar().Debugf(msg, args...)
}
