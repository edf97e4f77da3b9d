// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package profile

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/dao"
	"github.com/ecodeclub/portfolio/internal/profile/internal/service"
	"github.com/ecodeclub/portfolio/internal/profile/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var sectionSet = wire.NewSet(
	dao.NewExperienceDAO,
	dao.NewEducationDAO,
	dao.NewSkillDAO,
	dao.NewProjectDAO,
	dao.NewServiceDAO,
	dao.NewTestimonialDAO,
	repository.NewExperienceRepository,
	repository.NewEducationRepository,
	repository.NewSkillRepository,
	repository.NewProjectRepository,
	repository.NewServiceRepository,
	repository.NewTestimonialRepository,
	service.NewExperienceService,
	service.NewEducationService,
	service.NewSkillService,
	service.NewProjectService,
	service.NewServiceService,
	service.NewTestimonialService,
	web.NewExperienceHandler,
	web.NewEducationHandler,
	web.NewSkillHandler,
	web.NewProjectHandler,
	web.NewServiceHandler,
	web.NewTestimonialHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache, owner int64) *Module {
	wire.Build(
		sectionSet,
		InitPersonalInfoDAO,
		cache.NewProfileECache,
		repository.NewPersonalInfoRepository,
		repository.NewCachedProfileRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
