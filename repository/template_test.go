package repository

import (
	"time"

	"github.com/google/uuid"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

type templateSuite struct {
	baseSuite
}

var _ = gc.Suite(&templateSuite{})

func (s *templateSuite) TestCreateWithHackathon(c *gc.C) {
	hackathonID := uuid.New()
	now := time.Now()
	tpl := &entity.Template{
		Name:        "ubuntu-sshd",
		Provider:    entity.TemplateProviderDocker,
		Status:      entity.TemplateStatusOnline,
		HackathonID: &hackathonID,
		CreateTime:  now,
		UpdateTime:  now,
	}
	c.Assert(s.repo.TemplateRepo.CreateWithHackathon(tpl, hackathonID), jc.ErrorIsNil)
	c.Check(tpl.ID, gc.Not(gc.Equals), uuid.Nil)

	templates, err := s.repo.TemplateRepo.FindByHackathonID(hackathonID)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(templates, gc.HasLen, 1)
	c.Check(templates[0].Name, gc.Equals, "ubuntu-sshd")

	exists, err := s.repo.TemplateRepo.ExistsByName("ubuntu-sshd")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(exists, jc.IsTrue)
}

func (s *templateSuite) TestUpdateFields(c *gc.C) {
	tpl := &entity.Template{Name: "t1", Provider: entity.TemplateProviderDocker, Status: entity.TemplateStatusOnline, CreateTime: time.Now()}
	c.Assert(s.repo.TemplateRepo.Create(tpl), jc.ErrorIsNil)

	err := s.repo.TemplateRepo.UpdateFields(tpl.ID, map[string]interface{}{"status": entity.TemplateStatusOffline})
	c.Assert(err, jc.ErrorIsNil)

	found, err := s.repo.TemplateRepo.FindByName("t1")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(found.Status, gc.Equals, entity.TemplateStatusOffline)
	c.Check(found.Provider, gc.Equals, entity.TemplateProviderDocker)

	online, err := s.repo.TemplateRepo.FindByStatus(entity.TemplateStatusOnline)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(online, gc.HasLen, 0)
}
