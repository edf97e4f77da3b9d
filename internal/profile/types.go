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

package profile

import (
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/service"
	"github.com/ecodeclub/portfolio/internal/profile/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler

type ProfileService = service.Service

type Profile = domain.Profile
type PersonalInfo = domain.PersonalInfo
type Experience = domain.Experience
type Education = domain.Education
type Skill = domain.Skill
type Project = domain.Project
type Service = domain.Service
type Testimonial = domain.Testimonial
type Stats = domain.Stats

type ProfileVO = web.Profile
type PersonalInfoVO = web.PersonalInfo
type ExperienceVO = web.Experience
type EducationVO = web.Education
type SkillVO = web.Skill
type ProjectVO = web.Project
type ServiceVO = web.Service
type TestimonialVO = web.Testimonial
type StatsVO = web.Stats

var ErrRecordNotFound = service.ErrRecordNotFound

func NewProfileVO(p Profile) ProfileVO {
	return web.NewProfile(p)
}

// LevelLabel 技能等级对应的描述
func LevelLabel(level int) string {
	return domain.LevelLabel(level)
}

type Module struct {
	Svc      ProfileService
	Hdl      *Handler
	AdminHdl *AdminHandler
}
