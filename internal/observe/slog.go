package observe

import (
	"context"
	"log/slog"
)

// Slog logs every notification at debug level. The operation tag becomes the
// log message and its operands become attributes.
type Slog struct {
	logger *slog.Logger
	attrs  []slog.Attr
}

// NewSlog creates a Slog observer. attrs are attached to every record,
// typically the run id and algorithm key.
func NewSlog(logger *slog.Logger, attrs ...slog.Attr) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger, attrs: attrs}
}

func (o *Slog) Compare(i, j int) {
	o.log("COMPARE", slog.Int("i", i), slog.Int("j", j))
}

func (o *Slog) Swap(i, j int) {
	o.log("SWAP", slog.Int("i", i), slog.Int("j", j))
}

func (o *Slog) Set(index, value int) {
	o.log("SET", slog.Int("index", index), slog.Int("value", value))
}

func (o *Slog) log(msg string, operands ...slog.Attr) {
	ctx := context.Background()
	if !o.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := make([]slog.Attr, 0, len(o.attrs)+len(operands))
	attrs = append(attrs, o.attrs...)
	attrs = append(attrs, operands...)
	o.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
