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
	"testing"
	"time"

	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(year int) int64 {
	return time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func testProfile() profile.ProfileVO {
	return profile.ProfileVO{
		PersonalInfo: &profile.PersonalInfoVO{Id: 1, FullName: "Jane Doe", Bio: "I build things"},
		Experiences: []profile.ExperienceVO{
			{Id: 1, Title: "Senior Engineer", Company: "ACME", Start: ms(2021), IsCurrent: true, End: ms(2023)},
			{Id: 2, Title: "Engineer", Company: "Initech", Start: ms(2018), End: ms(2021)},
		},
		Education: []profile.EducationVO{
			{Id: 1, Degree: "BSc", School: "State University", Start: ms(2014), End: ms(2018)},
			{Id: 2, Degree: "MSc", School: "Night School", Start: ms(2021)},
		},
		Skills: []profile.SkillVO{{Id: 1, Name: "Go", Level: 9}},
		Projects: []profile.ProjectVO{
			{Id: 1, Title: "a", IsFeatured: true, Technologies: []string{"Go", "Redis", "MySQL", "Kafka"}},
			{Id: 2, Title: "b"},
			{Id: 3, Title: "c", IsFeatured: true},
			{Id: 4, Title: "d", IsFeatured: true},
			{Id: 5, Title: "e", IsFeatured: true},
		},
		Services:     []profile.ServiceVO{{Id: 1, Title: "Consulting"}},
		Testimonials: []profile.TestimonialVO{{Id: 1, Name: "Bob", Content: "great", Rating: 5}},
		Stats:        profile.StatsVO{ProjectsCompleted: "5+"},
	}
}

func TestProject_Client(t *testing.T) {
	view := Project(testProfile(), domain.ModeClient)
	assert.Equal(t, "client", view.Mode)
	require.NotNil(t, view.Stats)
	assert.Equal(t, "5+", view.Stats.ProjectsCompleted)
	assert.Len(t, view.Services, 1)
	assert.Len(t, view.Testimonials, 1)
	assert.Len(t, view.Skills, 1)
	assert.Nil(t, view.Experiences)
	// 只展示精选项目，最多三个，每个最多三个技术
	require.Len(t, view.Projects, 3)
	assert.Equal(t, []string{"a", "c", "d"}, []string{view.Projects[0].Title, view.Projects[1].Title, view.Projects[2].Title})
	assert.Equal(t, []string{"Go", "Redis", "MySQL"}, view.Projects[0].Technologies)
}

func TestProject_Story(t *testing.T) {
	p := testProfile()
	view := Project(p, domain.ModeStory)
	assert.Equal(t, "I build things", view.Bio)
	assert.Nil(t, view.Projects)
	assert.Equal(t, []domain.TimelineEntry{
		{Kind: "experience", Title: "Senior Engineer", Subtitle: "ACME", Years: "2021 - Present", StartYear: 2021},
		{Kind: "education", Title: "MSc", Subtitle: "Night School", Years: "2021 - Present", StartYear: 2021},
		{Kind: "experience", Title: "Engineer", Subtitle: "Initech", Years: "2018 - 2021", StartYear: 2018},
		{Kind: "education", Title: "BSc", Subtitle: "State University", Years: "2014 - 2018", StartYear: 2014},
	}, view.Timeline)
	// 不影响原始数据
	assert.Len(t, p.Projects[0].Technologies, 4)
}

func TestProject_Recruiter(t *testing.T) {
	for _, mode := range []domain.Mode{domain.ModeNormal, domain.ModeRecruiter} {
		view := Project(testProfile(), mode)
		assert.Equal(t, mode.String(), view.Mode)
		assert.Len(t, view.Experiences, 2)
		assert.Len(t, view.Education, 2)
		assert.Len(t, view.Projects, 5)
		assert.Nil(t, view.Stats)
		assert.Nil(t, view.Timeline)
	}
}
