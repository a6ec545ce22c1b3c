package shell

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/currconv/internal/entity/conversion"
	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/chart"
	"max.ks1230/currconv/internal/model/rates"
	"max.ks1230/currconv/internal/model/reports"
)

const (
	maxAmount       = 1_000_000_000
	currenciesInRow = 12
	chartTitle      = "Conversion rates"
)

const (
	incorrectUsageMessage  = "That is an incorrect command usage, try: %s"
	incorrectAmountMessage = "The amount is incorrect: %s"
	cannotSaveMessage      = "Can't save the conversion, nothing was recorded"
	cannotReadMessage      = "Can't read the history"
	noHistoryMessage       = "No conversions yet"
	clearedMessage         = "History cleared"
	byeMessage             = "Bye!"
)

const helpMessage = `Commands:
  convert [AMOUNT [FROM [TO]]]  convert with the current or given selection
  amount N | from CODE | to CODE | swap
                                change the selection and convert again
  notify [on|off]               toggle threshold alerts
  threshold N                   alert when a rate reaches N
  history [day|week|month|year] show past conversions
  clear                         delete the whole history
  export FILE [PERIOD]          write the history to a PDF file
  chart FILE                    draw the rate chart to a PNG file
  currencies                    list supported currency codes
  status                        show the current selection
  quit`

var usages = map[Kind]string{
	KindConvert:   "convert [AMOUNT [FROM [TO]]]",
	KindAmount:    "amount N",
	KindFrom:      "from CODE",
	KindTo:        "to CODE",
	KindNotify:    "notify [on|off]",
	KindThreshold: "threshold N",
	KindHistory:   "history [day|week|month|year]",
	KindExport:    "export FILE [day|week|month|year]",
	KindChart:     "chart FILE",
}

var ErrInvalidInput = errors.New("invalid input")

type conversionRequest struct {
	Amount float64 `validate:"gte=0,lte=1000000000"`
	From   string  `validate:"required,len=3,alpha"`
	To     string  `validate:"required,len=3,alpha"`
}

func newHandlerMap(s *Shell) map[Kind]handler {
	return map[Kind]handler{
		KindConvert:    s.handleConvert,
		KindAmount:     s.handleAmount,
		KindFrom:       s.handleFrom,
		KindTo:         s.handleTo,
		KindSwap:       s.handleSwap,
		KindNotify:     s.handleNotify,
		KindThreshold:  s.handleThreshold,
		KindHistory:    s.handleHistory,
		KindClear:      s.handleClear,
		KindExport:     s.handleExport,
		KindChart:      s.handleChart,
		KindCurrencies: s.handleCurrencies,
		KindStatus:     s.handleStatus,
		KindHelp:       s.handleHelp,
		KindQuit:       s.handleQuit,
	}
}

func usage(kind Kind) Result {
	return fail(OutcomeInvalidInput, fmt.Sprintf(incorrectUsageMessage, usages[kind]), ErrInvalidInput)
}

func parseNumber(arg string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(arg, ",", "."), 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidInput, arg)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrap(ErrInvalidInput, arg)
	}
	return v, nil
}

func (s *Shell) handleConvert(ctx context.Context, args []string) Result {
	if len(args) > 3 {
		return usage(KindConvert)
	}
	next := s.session
	if len(args) > 0 {
		amount, err := parseNumber(args[0])
		if err != nil {
			return fail(OutcomeInvalidInput, fmt.Sprintf(incorrectAmountMessage, args[0]), err)
		}
		next.Amount = amount
	}
	if len(args) > 1 {
		next.Pair.From = currency.Normalize(args[1])
	}
	if len(args) > 2 {
		next.Pair.To = currency.Normalize(args[2])
	}
	return s.convert(ctx, next)
}

func (s *Shell) handleAmount(ctx context.Context, args []string) Result {
	if len(args) != 1 {
		return usage(KindAmount)
	}
	return s.handleConvert(ctx, args)
}

func (s *Shell) handleFrom(ctx context.Context, args []string) Result {
	if len(args) != 1 {
		return usage(KindFrom)
	}
	next := s.session
	next.Pair.From = currency.Normalize(args[0])
	return s.convert(ctx, next)
}

func (s *Shell) handleTo(ctx context.Context, args []string) Result {
	if len(args) != 1 {
		return usage(KindTo)
	}
	next := s.session
	next.Pair.To = currency.Normalize(args[0])
	return s.convert(ctx, next)
}

func (s *Shell) handleSwap(ctx context.Context, _ []string) Result {
	next := s.session
	next.Pair = next.Pair.Swap()
	return s.convert(ctx, next)
}

// convert runs the conversion pipeline for the next selection. The selection
// is kept once the input is known to be valid, even if saving fails.
// Nothing reaches the table, the chart or the notifier unless the record was stored.
func (s *Shell) convert(ctx context.Context, next Session) Result {
	req := conversionRequest{Amount: next.Amount, From: next.Pair.From, To: next.Pair.To}
	if err := s.validate.Struct(req); err != nil {
		return fail(OutcomeInvalidInput, describeValidation(err), errors.Wrap(ErrInvalidInput, err.Error()))
	}

	result, rate, err := s.converter.Convert(next.Amount, next.Pair.From, next.Pair.To)
	if errors.Is(err, rates.ErrUnknownCurrency) {
		return fail(OutcomeUnknownCurrency, "Unknown currency in "+next.Pair.From+"→"+next.Pair.To, err)
	}
	if err != nil {
		return fail(OutcomeFailure, "Conversion failed", err)
	}
	s.session = next

	rec := conversion.NewRecord(s.now(), next.Pair.From, next.Pair.To, next.Amount, result)
	rec.Rate = rate
	if err = s.storage.Insert(ctx, rec); err != nil {
		logger.Error("cannot save conversion", zap.Error(err))
		return fail(OutcomeStorageFailure, cannotSaveMessage, err)
	}
	s.appendView(rec)

	alert, err := s.notifier.Observe(ctx, s.alerts, next.Pair, rate, next.Threshold, next.Notify)
	if err != nil {
		logger.Warn("alert delivery failed", zap.Error(err))
	}

	return Result{
		Outcome: OutcomeOK,
		Message: formatConversion(rec),
		Record:  &rec,
		Alert:   alert,
	}
}

func formatConversion(rec conversion.Record) string {
	return fmt.Sprintf("%s %s = %s %s (1 %s = %s %s)",
		decimal.NewFromFloat(rec.Amount).StringFixed(2), rec.From,
		decimal.NewFromFloat(rec.Result).StringFixed(4), rec.To,
		rec.From, reports.FormatRate(rec.Rate), rec.To,
	)
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Amount":
			parts = append(parts, fmt.Sprintf("amount must be between 0 and %d", maxAmount))
		default:
			parts = append(parts, fmt.Sprintf("%s currency must be a 3-letter code", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(parts, "; ")
}

func (s *Shell) handleNotify(_ context.Context, args []string) Result {
	switch {
	case len(args) == 0:
		s.session.Notify = !s.session.Notify
	case len(args) == 1 && isOn(args[0]):
		s.session.Notify = true
	case len(args) == 1 && isOff(args[0]):
		s.session.Notify = false
	default:
		return usage(KindNotify)
	}
	return ok(describeNotify(s.session))
}

func isOn(arg string) bool {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

func isOff(arg string) bool {
	switch strings.ToLower(arg) {
	case "off", "false", "no", "0":
		return true
	}
	return false
}

func describeNotify(session Session) string {
	state := "off"
	if session.Notify {
		state = "on"
	}
	return fmt.Sprintf("Notifications %s, threshold %s", state, reports.FormatRate(session.Threshold))
}

func (s *Shell) handleThreshold(_ context.Context, args []string) Result {
	if len(args) != 1 {
		return usage(KindThreshold)
	}
	v, err := parseNumber(args[0])
	if err != nil || v < 0 {
		return fail(OutcomeInvalidInput, "The threshold must be a non-negative number", ErrInvalidInput)
	}
	s.session.Threshold = v
	return ok(describeNotify(s.session))
}

func (s *Shell) records(ctx context.Context, period string) ([]conversion.Record, Result) {
	since, err := reports.PeriodStart(period, s.now())
	if err != nil {
		msg := fmt.Sprintf("Unknown period %q, use one of %s", period, strings.Join(reports.Periods(), ", "))
		return nil, fail(OutcomeInvalidInput, msg, err)
	}

	recs := make([]conversion.Record, 0)
	err = s.storage.FetchAll(ctx, func(rec conversion.Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		return nil, fail(OutcomeStorageFailure, cannotReadMessage, err)
	}
	return reports.FilterSince(recs, since), ok("")
}

func (s *Shell) handleHistory(ctx context.Context, args []string) Result {
	if len(args) > 1 {
		return usage(KindHistory)
	}
	period := ""
	if len(args) == 1 {
		period = strings.ToLower(args[0])
	}

	recs, res := s.records(ctx, period)
	if !res.OK() {
		return res
	}
	if len(recs) == 0 {
		return ok(noHistoryMessage)
	}
	return ok(formatTable(reports.Headers, reports.Rows(recs)))
}

func formatTable(headers []string, rows [][]string) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, strings.Join(headers, "\t")+"\t")
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func (s *Shell) handleClear(ctx context.Context, _ []string) Result {
	if err := s.storage.Clear(ctx); err != nil {
		return fail(OutcomeStorageFailure, "Can't clear the history", err)
	}
	s.rows = nil
	s.series.Clear()
	return ok(clearedMessage)
}

func (s *Shell) handleExport(ctx context.Context, args []string) Result {
	if len(args) < 1 || len(args) > 2 {
		return usage(KindExport)
	}
	period := ""
	if len(args) == 2 {
		period = strings.ToLower(args[1])
	}

	recs, res := s.records(ctx, period)
	if !res.OK() {
		return res
	}
	if err := reports.ExportPDF(args[0], s.exportTitle, reports.Headers, reports.Rows(recs)); err != nil {
		return fail(OutcomeExportFailure, "Can't export to "+args[0], err)
	}
	return ok(fmt.Sprintf("Exported %d conversions to %s", len(recs), args[0]))
}

func (s *Shell) handleChart(_ context.Context, args []string) Result {
	if len(args) != 1 {
		return usage(KindChart)
	}
	if s.series.Len() < 2 {
		return fail(OutcomeExportFailure, "The chart needs at least two conversions", chart.ErrNotEnoughPoints)
	}

	path := args[0]
	f, err := os.Create(path)
	if err != nil {
		return fail(OutcomeExportFailure, "Can't write "+path, err)
	}
	err = s.series.RenderPNG(f, chartTitle)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fail(OutcomeExportFailure, "Can't draw the chart", err)
	}
	return ok(fmt.Sprintf("Chart of %d points written to %s", s.series.Len(), path))
}

func (s *Shell) handleCurrencies(_ context.Context, _ []string) Result {
	codes := s.converter.ListCurrencies()
	lines := make([]string, 0, len(codes)/currenciesInRow+1)
	for i := 0; i < len(codes); i += currenciesInRow {
		end := i + currenciesInRow
		if end > len(codes) {
			end = len(codes)
		}
		lines = append(lines, strings.Join(codes[i:end], " "))
	}
	return ok(strings.Join(lines, "\n"))
}

func (s *Shell) handleStatus(_ context.Context, _ []string) Result {
	return ok(fmt.Sprintf("%s→%s, amount %s. %s. %d conversions in history",
		s.session.Pair.From, s.session.Pair.To,
		decimal.NewFromFloat(s.session.Amount).StringFixed(2),
		describeNotify(s.session),
		len(s.rows),
	))
}

func (s *Shell) handleHelp(_ context.Context, _ []string) Result {
	return ok(helpMessage)
}

func (s *Shell) handleQuit(_ context.Context, _ []string) Result {
	return Result{Outcome: OutcomeQuit, Message: byeMessage}
}
