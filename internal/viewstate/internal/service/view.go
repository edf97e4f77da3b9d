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

package service

import (
	"slices"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
)

const (
	maxFeaturedProjects = 3
	maxFeaturedTechs    = 3
)

// Project 按照展示模式裁剪公开页面的数据
func Project(p profile.ProfileVO, mode domain.Mode) domain.ProfileView {
	view := domain.ProfileView{
		Mode:         mode.String(),
		PersonalInfo: p.PersonalInfo,
	}
	switch mode {
	case domain.ModeStory:
		if p.PersonalInfo != nil {
			view.Bio = p.PersonalInfo.Bio
		}
		view.Timeline = timeline(p)
	case domain.ModeClient:
		stats := p.Stats
		view.Stats = &stats
		view.Services = p.Services
		view.Testimonials = p.Testimonials
		view.Skills = p.Skills
		view.Projects = featured(p.Projects)
	default:
		view.Experiences = p.Experiences
		view.Skills = p.Skills
		view.Projects = p.Projects
		view.Education = p.Education
	}
	return view
}

func featured(projects []profile.ProjectVO) []profile.ProjectVO {
	res := make([]profile.ProjectVO, 0, maxFeaturedProjects)
	for _, p := range projects {
		if !p.IsFeatured {
			continue
		}
		if len(p.Technologies) > maxFeaturedTechs {
			p.Technologies = p.Technologies[:maxFeaturedTechs]
		}
		res = append(res, p)
		if len(res) == maxFeaturedProjects {
			break
		}
	}
	return res
}

func timeline(p profile.ProfileVO) []domain.TimelineEntry {
	entries := slice.Map(p.Experiences, func(idx int, src profile.ExperienceVO) domain.TimelineEntry {
		return domain.TimelineEntry{
			Kind:        "experience",
			Title:       src.Title,
			Subtitle:    src.Company,
			Years:       years(src.Start, src.End, src.IsCurrent),
			Description: src.Description,
			StartYear:   year(src.Start),
		}
	})
	entries = append(entries, slice.Map(p.Education, func(idx int, src profile.EducationVO) domain.TimelineEntry {
		return domain.TimelineEntry{
			Kind:        "education",
			Title:       src.Degree,
			Subtitle:    src.School,
			Years:       years(src.Start, src.End, src.IsCurrent),
			Description: src.Description,
			StartYear:   year(src.Start),
		}
	})...)
	// 新的在前面，同一年保持原来的顺序
	slices.SortStableFunc(entries, func(a, b domain.TimelineEntry) int {
		return b.StartYear - a.StartYear
	})
	return entries
}

func years(start, end int64, current bool) string {
	res := strconv.Itoa(year(start)) + " - "
	if current || end == 0 {
		return res + "Present"
	}
	return res + strconv.Itoa(year(end))
}

func year(ms int64) int {
	return time.UnixMilli(ms).UTC().Year()
}
