package infra

import (
	"context"
	"errors"
	"time"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"
)

type recordingCloser struct {
	closed      int
	hadDeadline bool
	err         error
}

func (r *recordingCloser) Close(ctx context.Context) error {
	r.closed++
	_, r.hadDeadline = ctx.Deadline()
	return r.err
}

type mainSuite struct{}

var _ = gc.Suite(&mainSuite{})

func (s *mainSuite) TestRunAndCloseClosesAfterSuccess(c *gc.C) {
	closer := &recordingCloser{}
	ran := false

	err := RunAndClose(closer, time.Second, func() error {
		c.Check(closer.closed, gc.Equals, 0)
		ran = true
		return nil
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ran, jc.IsTrue)
	c.Check(closer.closed, gc.Equals, 1)
	c.Check(closer.hadDeadline, jc.IsTrue)
}

func (s *mainSuite) TestRunAndCloseClosesAfterFailure(c *gc.C) {
	closer := &recordingCloser{}
	migrateErr := errors.New("migration failed")

	err := RunAndClose(closer, time.Second, func() error { return migrateErr })
	c.Assert(err, jc.ErrorIs, migrateErr)
	c.Check(closer.closed, gc.Equals, 1)
}

func (s *mainSuite) TestRunAndCloseReportsCloseFailure(c *gc.C) {
	flushErr := errors.New("exporter unreachable")
	closer := &recordingCloser{err: flushErr}
	runErr := errors.New("server stopped")

	err := RunAndClose(closer, time.Second, func() error { return runErr })
	c.Check(err, jc.ErrorIs, runErr)
	c.Check(err, jc.ErrorIs, flushErr)
	c.Check(err, gc.ErrorMatches, "(?s)server stopped\nfailed to close infra: exporter unreachable")
}
