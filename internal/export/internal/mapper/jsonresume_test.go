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

package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testProfile() profile.Profile {
	return profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			Id:          1,
			Uid:         1,
			FullName:    "Jane  Doe",
			Title:       "Backend Engineer",
			Email:       "jane@example.com",
			Phone:       "+1 555 0100",
			Location:    "Berlin",
			Bio:         "Builds services & tools.",
			GithubURL:   "https://github.com/jane",
			WebsiteURL:  "https://jane.dev",
			LinkedinURL: "",
		},
		Experiences: []profile.Experience{
			{
				Title:   "Senior Engineer",
				Company: "Acme",
				Start:   date(2021, time.March, 1),
				// 在职的时候忽略存储的结束时间
				End:          date(2022, time.January, 1),
				IsCurrent:    true,
				Description:  "Owns the billing platform.",
				Achievements: []string{"Cut latency by 40%", "Led migration"},
				Technologies: []string{"Go", "MySQL"},
			},
			{
				Title:   "Engineer",
				Company: "Initech",
				Start:   date(2018, time.July, 15),
				End:     date(2021, time.February, 28),
			},
		},
		Education: []profile.Education{
			{
				Degree: "BSc Computer Science",
				School: "TU Berlin",
				Start:  date(2014, time.October, 1),
				End:    date(2018, time.June, 30),
				GPA:    "3.8",
			},
		},
		Skills: []profile.Skill{
			{Name: "Go", Category: "Languages", Level: 9},
			{Name: "Kafka", Category: "Infra", Level: 7},
			{Name: "Rust", Category: "Languages", Level: 4},
			{Name: "Juggling", Level: 2},
		},
		Projects: []profile.Project{
			{
				Title:        "ego-lint",
				Description:  "Static checks",
				Technologies: []string{"Go"},
				Highlights:   []string{"Used in CI", "Zero config"},
				GithubURL:    "https://github.com/jane/ego-lint",
			},
			{
				Title:     "site",
				URL:       "https://demo.jane.dev",
				GithubURL: "https://github.com/jane/site",
			},
		},
	}
}

func TestToJSONResume(t *testing.T) {
	p := testProfile()
	res := ToJSONResume(p)

	assert.Equal(t, len(p.Experiences), len(res.Work))
	assert.Equal(t, len(p.Education), len(res.Education))
	assert.Equal(t, len(p.Skills), len(res.Skills))
	assert.Equal(t, len(p.Projects), len(res.Projects))

	assert.Equal(t, Basics{
		Name:     "Jane  Doe",
		Label:    "Backend Engineer",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		URL:      "https://jane.dev",
		Summary:  "Builds services & tools.",
		Location: &Location{Address: "Berlin"},
		Profiles: []SocialProfile{{Network: "GitHub", URL: "https://github.com/jane"}},
	}, res.Basics)

	assert.Equal(t, Work{
		Name:       "Acme",
		Position:   "Senior Engineer",
		StartDate:  "2021-03-01",
		Summary:    "Owns the billing platform.",
		Highlights: []string{"Cut latency by 40%", "Led migration"},
	}, res.Work[0])
	assert.Equal(t, "2021-02-28", res.Work[1].EndDate)

	assert.Equal(t, Education{
		Institution: "TU Berlin",
		Area:        "BSc Computer Science",
		StudyType:   "Bachelor",
		StartDate:   "2014-10-01",
		EndDate:     "2018-06-30",
		Score:       "3.8",
	}, res.Education[0])

	assert.Equal(t, Skill{Name: "Go", Level: "Expert", Keywords: []string{"Languages"}}, res.Skills[0])
	assert.Equal(t, Project{
		Name:        "ego-lint",
		Description: "Static checks",
		Highlights:  []string{"Used in CI", "Zero config"},
		Keywords:    []string{"Go"},
		URL:         "https://github.com/jane/ego-lint",
	}, res.Projects[0])
	assert.Equal(t, "https://demo.jane.dev", res.Projects[1].URL)
	assert.Empty(t, res.Projects[1].Highlights)
}

func TestToJSONResume_SkillLevel(t *testing.T) {
	testCases := []struct {
		level int
		want  string
	}{
		{level: 10, want: "Expert"},
		{level: 9, want: "Expert"},
		{level: 8, want: "Advanced"},
		{level: 7, want: "Advanced"},
		{level: 6, want: "Intermediate"},
		{level: 5, want: "Intermediate"},
		{level: 4, want: "Beginner"},
		{level: 3, want: "Beginner"},
		{level: 2, want: "Novice"},
		{level: 1, want: "Novice"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			res := ToJSONResume(profile.Profile{
				Skills: []profile.Skill{{Name: "Go", Level: tc.level}},
			})
			require.Len(t, res.Skills, 1)
			assert.Equal(t, tc.want, res.Skills[0].Level)
		})
	}
}

func TestEncodeJSONResume(t *testing.T) {
	testCases := []struct {
		name    string
		profile profile.Profile
		assert  func(t *testing.T, out string, fields map[string]any)
	}{
		{
			name:    "只有个人信息",
			profile: profile.Profile{PersonalInfo: profile.PersonalInfo{FullName: "Jane", Email: "jane@example.com"}},
			assert: func(t *testing.T, out string, fields map[string]any) {
				assert.NotContains(t, out, "null")
				assert.Len(t, fields, 1)
				basics := fields["basics"].(map[string]any)
				assert.NotContains(t, basics, "profiles")
				assert.NotContains(t, basics, "location")
			},
		},
		{
			name:    "完整数据",
			profile: testProfile(),
			assert: func(t *testing.T, out string, fields map[string]any) {
				assert.NotContains(t, out, "null")
				assert.Contains(t, out, "\n  \"basics\": {\n    \"name\": \"Jane  Doe\",")
				// 不转义 HTML 字符
				assert.Contains(t, out, "Builds services & tools.")
				work := fields["work"].([]any)
				require.Len(t, work, 2)
				assert.NotContains(t, work[0].(map[string]any), "endDate")
				assert.Equal(t, "2021-02-28", work[1].(map[string]any)["endDate"])
				projects := fields["projects"].([]any)
				require.Len(t, projects, 2)
				assert.Equal(t, []any{"Used in CI", "Zero config"}, projects[0].(map[string]any)["highlights"])
				assert.NotContains(t, projects[1].(map[string]any), "highlights")
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeJSONResume(ToJSONResume(tc.profile))
			require.NoError(t, err)
			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))
			tc.assert(t, string(data), fields)
		})
	}
}
