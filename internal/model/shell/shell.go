package shell

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/conversion"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/chart"
	"max.ks1230/currconv/internal/model/notifier"
	"max.ks1230/currconv/internal/model/reports"
)

//go:generate minimock -i max.ks1230/currconv/internal/model/shell.rateConverter -o ./mock/rate_converter_mock.go -n RateConverterMock
//go:generate minimock -i max.ks1230/currconv/internal/model/shell.historyStorage -o ./mock/history_storage_mock.go -n HistoryStorageMock
//go:generate minimock -i max.ks1230/currconv/internal/model/shell.alertNotifier -o ./mock/alert_notifier_mock.go -n AlertNotifierMock

type rateConverter interface {
	Convert(amount float64, from, to string) (result, rate float64, err error)
	ListCurrencies() []string
}

type historyStorage interface {
	Insert(ctx context.Context, rec conversion.Record) error
	FetchAll(ctx context.Context, fn func(conversion.Record) error) error
	Clear(ctx context.Context) error
}

type alertNotifier interface {
	Observe(
		ctx context.Context,
		state *notifier.State,
		pair currency.Pair,
		rate, threshold float64,
		enabled bool,
	) (*notifier.Alert, error)
}

type config interface {
	DefaultPair() (from, to string)
	Amount() float64
	NotifyByDefault() bool
	Threshold() float64
	PDFTitle() string
}

// Session is what the user has currently selected.
type Session struct {
	Pair      currency.Pair
	Amount    float64
	Notify    bool
	Threshold float64
}

type handler func(ctx context.Context, args []string) Result

// Shell runs one command at a time against the converter, the history and the notifier.
// It is not safe for concurrent use.
type Shell struct {
	converter rateConverter
	storage   historyStorage
	notifier  alertNotifier
	validate  *validator.Validate

	session     Session
	alerts      *notifier.State
	rows        [][]string
	series      *chart.Series
	exportTitle string

	handlers map[Kind]handler
	now      func() time.Time
}

// New builds a shell and loads the stored history into its table and chart.
func New(
	ctx context.Context,
	cfg config,
	conv rateConverter,
	storage historyStorage,
	notif alertNotifier,
) (*Shell, error) {
	from, to := cfg.DefaultPair()
	s := &Shell{
		converter: conv,
		storage:   storage,
		notifier:  notif,
		validate:  validator.New(),
		session: Session{
			Pair:      currency.NewPair(from, to),
			Amount:    cfg.Amount(),
			Notify:    cfg.NotifyByDefault(),
			Threshold: cfg.Threshold(),
		},
		alerts:      notifier.NewState(),
		series:      chart.NewSeries(),
		exportTitle: cfg.PDFTitle(),
		now:         time.Now,
	}
	s.handlers = newHandlerMap(s)

	if err := s.loadHistory(ctx); err != nil {
		return nil, errors.Wrap(err, "load history")
	}
	return s, nil
}

func (s *Shell) loadHistory(ctx context.Context) error {
	s.rows = nil
	s.series.Clear()
	return s.storage.FetchAll(ctx, func(rec conversion.Record) error {
		s.appendView(rec)
		return nil
	})
}

func (s *Shell) appendView(rec conversion.Record) {
	s.rows = append(s.rows, reports.Row(rec))
	if err := s.series.Add(rec.Timestamp, rec.Rate); err != nil {
		logger.Warn("skipping chart point", zap.String("ts", rec.Timestamp), zap.Error(err))
	}
}

// Dispatch is the single entry point for every command.
func (s *Shell) Dispatch(ctx context.Context, cmd Command) Result {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dispatch")
	defer span.Finish()
	span.SetTag("command", cmd.Kind.String())

	start := time.Now()
	res := s.dispatch(ctx, cmd)
	observeResponse(time.Since(start), cmd.Kind, res.Outcome)

	if !res.OK() {
		ext.Error.Set(span, true)
		logger.Debug("command failed",
			zap.String("command", cmd.Kind.String()),
			zap.String("outcome", res.Outcome.String()),
			zap.Error(res.Err),
		)
	}
	return res
}

func (s *Shell) dispatch(ctx context.Context, cmd Command) Result {
	h, ok := s.handlers[cmd.Kind]
	if !ok {
		return fail(OutcomeInvalidInput, "unknown command", ErrUnknownCommand)
	}
	return h(ctx, cmd.Args)
}

func (s *Shell) Session() Session {
	return s.session
}

// Rows is the history table as currently displayed.
func (s *Shell) Rows() [][]string {
	res := make([][]string, len(s.rows))
	copy(res, s.rows)
	return res
}

func (s *Shell) Series() *chart.Series {
	return s.series
}

// AlertState exposes the per-pair memory of the notifier.
func (s *Shell) AlertState() *notifier.State {
	return s.alerts
}
