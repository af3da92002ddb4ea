package template

import (
	"context"
	"errors"
	"time"

	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"

	"github.com/tnqbao/gau-hackathon-service/infra"
	"github.com/tnqbao/gau-hackathon-service/service"
)

type publisherSuite struct {
	store *MockBlobStore
}

var _ = gc.Suite(&publisherSuite{})

func (s *publisherSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.store = NewMockBlobStore(ctrl)
	return ctrl
}

func (s *publisherSuite) newPublisher() *Publisher {
	p := NewPublisher(s.store, "templates", infra.NewDiscardLogger())
	p.now = func() time.Time { return time.Date(2015, 6, 1, 8, 30, 5, 0, time.UTC) }
	p.newID = func() string { return "0123456789abcdef" }
	return p
}

func (s *publisherSuite) TestRemoteName(c *gc.C) {
	at := time.Date(2015, 12, 31, 23, 59, 58, 0, time.UTC)
	c.Check(RemoteName("hack-2015", "a1b2c3d4-e5f6-11e5-9ce9-5e5517507c66", at), gc.Equals, "hack-2015/a1b2c3d4-20151231235958.js")
	c.Check(RemoteName("h", "short", at), gc.Equals, "h/short20151231235958.js")
	c.Check(RemoteName("", "short", at), gc.Equals, "shared/short20151231235958.js")
}

func (s *publisherSuite) TestPublish(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.store.EXPECT().EnsureContainer(gomock.Any(), "templates").Return(nil),
		s.store.EXPECT().UploadFile(gomock.Any(), "templates", "hack-2015/01234567820150601083005.js", "/tmp/t.js").
			Return("http://storage.local/templates/hack-2015/01234567820150601083005.js", nil),
	)

	url, err := s.newPublisher().Publish(context.Background(), "hack-2015", "/tmp/t.js")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(url, gc.Equals, "http://storage.local/templates/hack-2015/01234567820150601083005.js")
}

func (s *publisherSuite) TestPublishWithoutHackathon(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.store.EXPECT().EnsureContainer(gomock.Any(), "templates").Return(nil),
		s.store.EXPECT().UploadFile(gomock.Any(), "templates", "shared/01234567820150601083005.js", "/tmp/t.js").
			Return("http://storage.local/templates/shared/01234567820150601083005.js", nil),
	)

	url, err := s.newPublisher().Publish(context.Background(), "", "/tmp/t.js")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(url, gc.Equals, "http://storage.local/templates/shared/01234567820150601083005.js")
}

func (s *publisherSuite) TestPublishContainerFailure(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.store.EXPECT().EnsureContainer(gomock.Any(), "templates").Return(errors.New("access denied"))

	url, err := s.newPublisher().Publish(context.Background(), "hack-2015", "/tmp/t.js")
	c.Assert(err, jc.ErrorIs, ErrPublish)
	c.Check(err, jc.ErrorIs, service.ErrProvider)
	c.Check(url, gc.Equals, "")
}

func (s *publisherSuite) TestPublishUploadFailure(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.store.EXPECT().EnsureContainer(gomock.Any(), "templates").Return(nil)
	s.store.EXPECT().UploadFile(gomock.Any(), "templates", gomock.Any(), "/tmp/t.js").Return("", errors.New("timeout"))

	url, err := s.newPublisher().Publish(context.Background(), "hack-2015", "/tmp/t.js")
	c.Assert(err, jc.ErrorIs, ErrPublish)
	c.Check(url, gc.Equals, "")
}
