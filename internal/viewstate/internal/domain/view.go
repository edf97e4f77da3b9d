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

package domain

import "github.com/ecodeclub/portfolio/internal/profile"

// TimelineEntry 故事模式下合并工作经历和教育经历
type TimelineEntry struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Years       string `json:"years"`
	Description string `json:"description,omitempty"`
	StartYear   int    `json:"-"`
}

type ProfileView struct {
	Mode         string                  `json:"mode"`
	PersonalInfo *profile.PersonalInfoVO `json:"personalInfo"`
	Bio          string                  `json:"bio,omitempty"`
	Stats        *profile.StatsVO        `json:"stats,omitempty"`
	Experiences  []profile.ExperienceVO  `json:"experiences,omitempty"`
	Education    []profile.EducationVO   `json:"education,omitempty"`
	Skills       []profile.SkillVO       `json:"skills,omitempty"`
	Projects     []profile.ProjectVO     `json:"projects,omitempty"`
	Services     []profile.ServiceVO     `json:"services,omitempty"`
	Testimonials []profile.TestimonialVO `json:"testimonials,omitempty"`
	Timeline     []TimelineEntry         `json:"timeline,omitempty"`
}
