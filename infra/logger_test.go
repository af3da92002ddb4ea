package infra

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
)

type loggerSuite struct{}

var _ = gc.Suite(&loggerSuite{})

func (s *loggerSuite) TestFanoutWritesToEveryHandler(c *gc.C) {
	var infoBuf, debugBuf bytes.Buffer
	handler := fanoutHandler{
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}
	logger := NewLoggerClient(slog.New(handler))
	ctx := context.Background()

	logger.DebugWithContextf(ctx, "[Template] compiling %s", "t1")
	logger.ErrorWithContextf(ctx, errors.New("boom"), "[Template] upload failed")

	c.Check(infoBuf.String(), gc.Not(jc.Contains), "compiling t1")
	c.Check(infoBuf.String(), jc.Contains, "upload failed")
	c.Check(infoBuf.String(), jc.Contains, "error=boom")
	c.Check(debugBuf.String(), jc.Contains, "compiling t1")
}

func (s *loggerSuite) TestDiscardLoggerAndShutdown(c *gc.C) {
	logger := NewDiscardLogger()
	logger.InfoWithContextf(context.Background(), "nothing to see")
	c.Check(logger.Shutdown(context.Background()), jc.ErrorIsNil)
}
