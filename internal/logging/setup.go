package logging

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	sloglogrus "github.com/samber/slog-logrus/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/sirupsen/logrus"
)

// Setup routes slog through logrus, fanning out to a raw text handler as
// well when verbose. Every line carries a run id so logs of overlapping
// runs can be told apart.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
		logrus.StandardLogger().SetLevel(logrus.DebugLevel)
	}

	handlers := []slog.Handler{
		sloglogrus.Option{Level: level, Logger: logrus.StandardLogger()}.NewLogrusHandler(),
	}
	if verbose {
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger := slog.New(slogmulti.Fanout(handlers...)).With("run", uuid.NewString())
	slog.SetDefault(logger)
}
