package repository

import (
	"time"

	"github.com/google/uuid"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/tnqbao/gau-hackathon-service/entity"
)

type userResourceSuite struct {
	baseSuite
}

var _ = gc.Suite(&userResourceSuite{})

func (s *userResourceSuite) addResource(c *gc.C, resourceType, name string, parent *uuid.UUID) entity.UserResource {
	res := entity.UserResource{
		ID:             uuid.New(),
		Type:           resourceType,
		Name:           name,
		Status:         entity.ResourceStatusRunning,
		CloudServiceID: parent,
		CreateTime:     time.Now(),
	}
	c.Assert(s.repo.UserResourceRepo.Create(&res), jc.ErrorIsNil)
	return res
}

func (s *userResourceSuite) TestCountByTypeAndName(c *gc.C) {
	s.addResource(c, entity.ResourceTypeCloudService, "ohp-cs", nil)
	s.addResource(c, entity.ResourceTypeDeployment, "ohp-cs", nil)

	count, err := s.repo.UserResourceRepo.CountByTypeAndName(entity.ResourceTypeCloudService, "ohp-cs")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, int64(1))

	count, err = s.repo.UserResourceRepo.CountByTypeAndName(entity.ResourceTypeCloudService, "other")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, int64(0))
}

func (s *userResourceSuite) TestDeleteCloudServiceCascade(c *gc.C) {
	cs := s.addResource(c, entity.ResourceTypeCloudService, "ohp-cs", nil)
	s.addResource(c, entity.ResourceTypeDeployment, "ohp-deploy", &cs.ID)
	vm := s.addResource(c, entity.ResourceTypeVirtualMachine, "ohp-vm", &cs.ID)
	c.Assert(s.repo.VMEndpointRepo.Create(&entity.VMEndpoint{Name: "ssh", Protocol: "tcp", PublicPort: 10022, PrivatePort: 22, VirtualMachineID: vm.ID}), jc.ErrorIsNil)
	c.Assert(s.repo.VMConfigRepo.Create(&entity.VMConfig{DNS: "ohp-cs.cloudapp.net", VirtualMachineID: vm.ID}), jc.ErrorIsNil)

	other := s.addResource(c, entity.ResourceTypeCloudService, "keep-me", nil)
	otherVM := s.addResource(c, entity.ResourceTypeVirtualMachine, "keep-vm", &other.ID)

	err := s.repo.UserResourceRepo.DeleteCloudServiceCascade("ohp-cs")
	c.Assert(err, jc.ErrorIsNil)

	count, err := s.repo.UserResourceRepo.CountByTypeAndName(entity.ResourceTypeCloudService, "ohp-cs")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(count, gc.Equals, int64(0))

	children, err := s.repo.UserResourceRepo.FindByCloudServiceID(cs.ID)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(children, gc.HasLen, 0)

	endpoints, err := s.repo.VMEndpointRepo.FindByVirtualMachineID(vm.ID)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(endpoints, gc.HasLen, 0)

	_, err = s.repo.VMConfigRepo.FindByVirtualMachineID(vm.ID)
	c.Check(err, gc.NotNil)

	kept, err := s.repo.UserResourceRepo.FindByCloudServiceID(other.ID)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(kept, gc.HasLen, 1)
	c.Check(kept[0].ID, gc.Equals, otherVM.ID)
}

func (s *userResourceSuite) TestDeleteCloudServiceCascadeNoRows(c *gc.C) {
	err := s.repo.UserResourceRepo.DeleteCloudServiceCascade("missing")
	c.Assert(err, jc.ErrorIsNil)
}
