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

package web

import (
	"github.com/ecodeclub/portfolio/internal/profile"
)

// Aggregate 给前端自己生成 PDF 使用
type Aggregate struct {
	PersonalInfo *profile.PersonalInfoVO `json:"personalInfo"`
	Experiences  []profile.ExperienceVO  `json:"experiences"`
	Education    []profile.EducationVO   `json:"education"`
	Skills       []profile.SkillVO       `json:"skills"`
	Projects     []profile.ProjectVO     `json:"projects"`
}

func newAggregate(p profile.Profile) Aggregate {
	vo := profile.NewProfileVO(p)
	return Aggregate{
		PersonalInfo: vo.PersonalInfo,
		Experiences:  vo.Experiences,
		Education:    vo.Education,
		Skills:       vo.Skills,
		Projects:     vo.Projects,
	}
}

type ErrorResp struct {
	Error string `json:"error"`
}
