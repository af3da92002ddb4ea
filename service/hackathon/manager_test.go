package hackathon

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/tnqbao/gau-hackathon-service/entity"
	"github.com/tnqbao/gau-hackathon-service/repository"
	"github.com/tnqbao/gau-hackathon-service/service"
)

type managerSuite struct {
	baseSuite
}

var _ = gc.Suite(&managerSuite{})

func strPtr(s string) *string {
	return &s
}

func (s *managerSuite) TestCreate(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	c.Check(h.Status, gc.Equals, entity.HackathonStatusInit)
	c.Check(h.Type, gc.Equals, entity.HackathonTypeHackathon)
	c.Check(h.CreatorID, gc.Equals, s.creator)

	isAdmin, err := s.repo.AdminHackathonRelRepo.IsAdmin(s.creator, h.ID)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(isAdmin, jc.IsTrue)

	exists, err := s.manager.IsNameExisted(context.Background(), "hack-2015")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(exists, jc.IsTrue)
}

func (s *managerSuite) TestCreateDuplicateName(c *gc.C) {
	s.createHackathon(c, "hack-2015")

	_, err := s.manager.Create(context.Background(), service.NewScope(s.creator, nil), CreateArgs{
		Name:        "hack-2015",
		DisplayName: "again",
	})
	c.Assert(err, jc.ErrorIs, service.ErrConflict)
}

func (s *managerSuite) TestCreateValidation(c *gc.C) {
	_, err := s.manager.Create(context.Background(), service.NewScope(s.creator, nil), CreateArgs{
		Name:        " ",
		DisplayName: "blank",
	})
	c.Assert(err, jc.ErrorIs, service.ErrValidation)

	_, err = s.manager.Create(context.Background(), service.NewScope(s.creator, nil), CreateArgs{
		Name:        "hack",
		DisplayName: "bad type",
		Type:        "MEETUP",
	})
	c.Assert(err, jc.ErrorIs, service.ErrValidation)
}

func (s *managerSuite) TestGetNotFound(c *gc.C) {
	_, err := s.manager.GetByName(context.Background(), "missing")
	c.Check(err, jc.ErrorIs, service.ErrNotFound)

	_, err = s.manager.GetByID(context.Background(), uuid.New())
	c.Check(err, jc.ErrorIs, service.ErrNotFound)
}

func (s *managerSuite) TestUpdateWritesChangedFields(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")

	updated, err := s.manager.Update(context.Background(), h, UpdateArgs{
		Name:        strPtr("hack-2015"),
		Description: strPtr("a new description"),
		Status:      strPtr(entity.HackathonStatusOnline),
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(updated.Name, gc.Equals, "hack-2015")
	c.Check(updated.Description, gc.Equals, "a new description")
	c.Check(updated.Status, gc.Equals, entity.HackathonStatusOnline)
	c.Check(updated.CreatorID, gc.Equals, s.creator)
	c.Check(updated.DisplayName, gc.Equals, "Display hack-2015")
}

func (s *managerSuite) TestDiffSkipsUnchangedFields(c *gc.C) {
	h := &entity.Hackathon{Name: "hack", Description: "same", Status: entity.HackathonStatusInit}

	fields := diffHackathon(h, UpdateArgs{
		Description: strPtr("same"),
		Status:      strPtr(entity.HackathonStatusOnline),
	})
	c.Check(fields, jc.DeepEquals, map[string]interface{}{"status": entity.HackathonStatusOnline})
}

func (s *managerSuite) TestUpdateRenameConflict(c *gc.C) {
	s.createHackathon(c, "taken")
	h := s.createHackathon(c, "hack-2015")

	_, err := s.manager.Update(context.Background(), h, UpdateArgs{Name: strPtr("taken")})
	c.Assert(err, jc.ErrorIs, service.ErrConflict)
}

func (s *managerSuite) TestUpdateInvalidStatus(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")

	_, err := s.manager.Update(context.Background(), h, UpdateArgs{Status: strPtr("ARCHIVED")})
	c.Assert(err, jc.ErrorIs, service.ErrValidation)
}

func (s *managerSuite) TestList(c *gc.C) {
	for _, name := range []string{"alpha", "beta", "gamma"} {
		s.createHackathon(c, name)
	}

	result, err := s.manager.List(context.Background(), repository.HackathonFilter{PerPage: 2}, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(result.Total, gc.Equals, int64(3))
	c.Check(result.Page, gc.Equals, 1)
	c.Check(result.Items, gc.HasLen, 2)
	c.Check(result.Items[0].Stat, gc.NotNil)
	c.Check(result.Items[0].Like, gc.IsNil)

	result, err = s.manager.List(context.Background(), repository.HackathonFilter{Name: "ET"}, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(result.Items, gc.HasLen, 1)
	c.Check(result.Items[0].Hackathon.Name, gc.Equals, "beta")
}

func (s *managerSuite) TestStatIsCached(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	s.register(c, h, true, entity.RegistrationStatusAuditPassed)
	s.register(c, h, true, entity.RegistrationStatusAutoPassed)
	s.register(c, h, false, entity.RegistrationStatusAuditPassed)
	s.register(c, h, true, entity.RegistrationStatusUnaudit)

	stat, err := s.manager.GetStat(context.Background(), h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stat.HackathonID, gc.Equals, h.ID)
	c.Check(stat.Online, gc.Equals, int64(2))
	c.Check(stat.Offline, gc.Equals, int64(1))

	// A new registration is not visible until the cached stat is dropped.
	s.register(c, h, false, entity.RegistrationStatusAutoPassed)
	stat, err = s.manager.GetStat(context.Background(), h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stat.Offline, gc.Equals, int64(1))
	c.Check(s.cache.hits, gc.Equals, 1)

	c.Assert(s.manager.Like(context.Background(), uuid.New(), h), jc.ErrorIsNil)
	stat, err = s.manager.GetStat(context.Background(), h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stat.Offline, gc.Equals, int64(2))
	c.Check(stat.Counts[entity.HackathonStatTypeLike], gc.Equals, int64(1))
}

func (s *managerSuite) TestLikeAndUnlike(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	alice, bob := uuid.New(), uuid.New()

	c.Assert(s.manager.Like(context.Background(), alice, h), jc.ErrorIsNil)
	c.Assert(s.manager.Like(context.Background(), alice, h), jc.ErrorIsNil)
	c.Assert(s.manager.Like(context.Background(), bob, h), jc.ErrorIsNil)
	s.checkLikes(c, h, 2)

	c.Assert(s.manager.Unlike(context.Background(), alice, h), jc.ErrorIsNil)
	s.checkLikes(c, h, 1)

	c.Assert(s.manager.Unlike(context.Background(), alice, h), jc.ErrorIsNil)
	c.Assert(s.manager.Unlike(context.Background(), bob, h), jc.ErrorIsNil)
	s.checkLikes(c, h, 0)
}

func (s *managerSuite) TestLikeAfterConcurrentLikeDoesNotCountTwice(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	alice, bob := uuid.New(), uuid.New()

	c.Assert(s.manager.Like(context.Background(), alice, h), jc.ErrorIsNil)

	// a concurrent request for bob inserted the row and owns the increment
	created, err := s.repo.HackathonLikeRepo.CreateIfAbsent(&entity.HackathonLike{UserID: bob, HackathonID: h.ID})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(created, jc.IsTrue)

	c.Assert(s.manager.Like(context.Background(), bob, h), jc.ErrorIsNil)
	s.checkLikes(c, h, 1)
}

func (s *managerSuite) checkLikes(c *gc.C, h *entity.Hackathon, expected int64) {
	stat, err := s.repo.HackathonStatRepo.FindByType(h.ID, entity.HackathonStatTypeLike)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stat.Count, gc.Equals, expected)
}

func (s *managerSuite) TestProperties(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	ctx := context.Background()

	value, err := s.manager.GetBasicProperty(ctx, h, entity.ConfigRecycleMinutes, "60")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "60")

	c.Assert(s.manager.SetBasicProperty(ctx, h,
		Property{Key: entity.ConfigRecycleMinutes, Value: "30"},
		Property{Key: entity.ConfigAutoApprove, Value: "0"},
	), jc.ErrorIsNil)

	configs, err := s.manager.GetConfigs(ctx, h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(configs, jc.DeepEquals, map[string]string{
		entity.ConfigRecycleMinutes: "30",
		entity.ConfigAutoApprove:    "0",
	})
	_, cached := s.cache.values[configCacheKey(h)]
	c.Check(cached, jc.IsTrue)

	c.Assert(s.manager.SetBasicProperty(ctx, h, Property{Key: entity.ConfigRecycleMinutes, Value: "45"}), jc.ErrorIsNil)
	_, cached = s.cache.values[configCacheKey(h)]
	c.Check(cached, jc.IsFalse)

	value, err = s.manager.GetBasicProperty(ctx, h, entity.ConfigRecycleMinutes, "60")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(value, gc.Equals, "45")

	all, err := s.manager.GetAllProperties(ctx, h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(all, gc.HasLen, 2)

	c.Assert(s.manager.DeleteProperty(ctx, h, entity.ConfigAutoApprove), jc.ErrorIsNil)
	configs, err = s.manager.GetConfigs(ctx, h)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(configs, jc.DeepEquals, map[string]string{entity.ConfigRecycleMinutes: "45"})
}

func (s *managerSuite) TestTags(c *gc.C) {
	h1 := s.createHackathon(c, "hack-2015")
	h2 := s.createHackathon(c, "hack-2016")
	ctx := context.Background()

	c.Assert(s.manager.SetTags(ctx, h1, []string{`"go"`, "'cloud'", "docker"}), jc.ErrorIsNil)
	c.Assert(s.manager.SetTags(ctx, h2, []string{"go", "ai"}), jc.ErrorIsNil)

	tags, err := s.manager.GetTags(ctx, h1)
	c.Assert(err, jc.ErrorIsNil)
	parts := strings.Split(tags, ",")
	sort.Strings(parts)
	c.Check(parts, jc.DeepEquals, []string{"cloud", "docker", "go"})

	c.Assert(s.manager.SetTags(ctx, h1, []string{"azure"}), jc.ErrorIsNil)
	tags, err = s.manager.GetTags(ctx, h1)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(tags, gc.Equals, "azure")

	distinct, err := s.manager.GetDistinctTags(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(distinct, jc.DeepEquals, []string{"ai", "azure", "go"})
}

func (s *managerSuite) TestOrganizers(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	other := s.createHackathon(c, "hack-2016")
	ctx := context.Background()

	_, err := s.manager.CreateOrganizer(ctx, h, OrganizerArgs{})
	c.Assert(err, jc.ErrorIs, service.ErrValidation)

	organizer, err := s.manager.CreateOrganizer(ctx, h, OrganizerArgs{Name: "kaiyuanshe", Homepage: "http://kaiyuanshe.cn"})
	c.Assert(err, jc.ErrorIsNil)

	updated, err := s.manager.UpdateOrganizer(ctx, h, OrganizerUpdate{ID: organizer.ID, Logo: strPtr("logo.png")})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(updated.Name, gc.Equals, "kaiyuanshe")
	c.Check(updated.Logo, gc.Equals, "logo.png")

	_, err = s.manager.UpdateOrganizer(ctx, other, OrganizerUpdate{ID: organizer.ID, Name: strPtr("stolen")})
	c.Assert(err, jc.ErrorIs, service.ErrForbidden)

	_, err = s.manager.UpdateOrganizer(ctx, h, OrganizerUpdate{ID: uuid.New()})
	c.Assert(err, jc.ErrorIs, service.ErrNotFound)

	// Deleting through another hackathon leaves the organizer in place.
	c.Assert(s.manager.DeleteOrganizer(ctx, other, organizer.ID), jc.ErrorIsNil)
	stored, err := s.manager.GetOrganizer(ctx, organizer.ID)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(stored.Logo, gc.Equals, "logo.png")

	c.Assert(s.manager.DeleteOrganizer(ctx, h, organizer.ID), jc.ErrorIsNil)
	_, err = s.manager.GetOrganizer(ctx, organizer.ID)
	c.Assert(err, jc.ErrorIs, service.ErrNotFound)
}

func (s *managerSuite) TestGetDetail(c *gc.C) {
	h := s.createHackathon(c, "hack-2015")
	ctx := context.Background()
	userID := s.register(c, h, true, entity.RegistrationStatusAutoPassed)

	c.Assert(s.manager.SetBasicProperty(ctx, h, Property{Key: entity.ConfigFreedomTeam, Value: "1"}), jc.ErrorIsNil)
	c.Assert(s.manager.SetTags(ctx, h, []string{"go"}), jc.ErrorIsNil)
	_, err := s.manager.CreateOrganizer(ctx, h, OrganizerArgs{Name: "kaiyuanshe"})
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(s.manager.Like(ctx, userID, h), jc.ErrorIsNil)

	anonymous, err := s.manager.GetDetail(ctx, h, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(anonymous.Config, jc.DeepEquals, map[string]string{entity.ConfigFreedomTeam: "1"})
	c.Check(anonymous.Tag, gc.Equals, "go")
	c.Check(anonymous.Organizers, gc.HasLen, 1)
	c.Check(anonymous.Stat.Online, gc.Equals, int64(1))
	c.Check(anonymous.Like, gc.IsNil)
	c.Check(anonymous.Registration, gc.IsNil)

	detail, err := s.manager.GetDetail(ctx, h, &userID)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(detail.Like, gc.NotNil)
	c.Check(detail.Like.UserID, gc.Equals, userID)
	c.Assert(detail.Registration, gc.NotNil)
	c.Check(detail.Registration.Status, gc.Equals, entity.RegistrationStatusAutoPassed)
}

func (s *managerSuite) TestOnlineAndPreAllocate(c *gc.C) {
	ctx := context.Background()
	h1 := s.createHackathon(c, "default-policy")
	h2 := s.createHackathon(c, "no-pre-allocate")
	s.createHackathon(c, "still-init")

	for _, h := range []*entity.Hackathon{h1, h2} {
		_, err := s.manager.Update(ctx, h, UpdateArgs{Status: strPtr(entity.HackathonStatusOnline)})
		c.Assert(err, jc.ErrorIsNil)
	}
	c.Assert(s.manager.SetBasicProperty(ctx, h2, Property{Key: entity.ConfigPreAllocateEnabled, Value: "0"}), jc.ErrorIsNil)

	online, err := s.manager.GetOnlineHackathons(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(online, gc.HasLen, 2)

	ids, err := s.manager.GetPreAllocateEnabledHackathonIDs(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ids, jc.DeepEquals, []uuid.UUID{h1.ID})
}

func (s *managerSuite) TestRecyclable(c *gc.C) {
	ctx := context.Background()
	s.createHackathon(c, "default-policy")
	h := s.createHackathon(c, "recycling")
	c.Assert(s.manager.SetBasicProperty(ctx, h, Property{Key: entity.ConfigRecycleEnabled, Value: "true"}), jc.ErrorIsNil)

	recyclable, err := s.manager.GetRecyclableHackathons(ctx)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(recyclable, gc.HasLen, 1)
	c.Check(recyclable[0].ID, gc.Equals, h.ID)
}
