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
	"bytes"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile"
)

const dateLayout = "2006-01-02"

// Resume 字段顺序就是输出的顺序
type Resume struct {
	Basics    Basics      `json:"basics"`
	Work      []Work      `json:"work,omitempty"`
	Education []Education `json:"education,omitempty"`
	Skills    []Skill     `json:"skills,omitempty"`
	Projects  []Project   `json:"projects,omitempty"`
}

type Basics struct {
	Name     string          `json:"name"`
	Label    string          `json:"label"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone,omitempty"`
	URL      string          `json:"url,omitempty"`
	Summary  string          `json:"summary,omitempty"`
	Location *Location       `json:"location,omitempty"`
	Profiles []SocialProfile `json:"profiles,omitempty"`
}

type Location struct {
	Address string `json:"address"`
}

type SocialProfile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area"`
	StudyType   string `json:"studyType"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Score       string `json:"score,omitempty"`
}

type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords,omitempty"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
}

func ToJSONResume(p profile.Profile) Resume {
	info := p.PersonalInfo
	res := Resume{
		Basics: Basics{
			Name:     info.FullName,
			Label:    info.Title,
			Email:    info.Email,
			Phone:    info.Phone,
			URL:      info.WebsiteURL,
			Summary:  info.Bio,
			Profiles: socialProfiles(info),
		},
		Work: slice.Map(p.Experiences, func(idx int, src profile.Experience) Work {
			end, _ := src.EndDate()
			return Work{
				Name:       src.Company,
				Position:   src.Title,
				StartDate:  formatDate(src.Start),
				EndDate:    formatDate(end),
				Summary:    src.Description,
				Highlights: src.Achievements,
			}
		}),
		Education: slice.Map(p.Education, func(idx int, src profile.Education) Education {
			end, _ := src.EndDate()
			return Education{
				Institution: src.School,
				Area:        src.Degree,
				StudyType:   "Bachelor",
				StartDate:   formatDate(src.Start),
				EndDate:     formatDate(end),
				Score:       src.GPA,
			}
		}),
		Skills: slice.Map(p.Skills, func(idx int, src profile.Skill) Skill {
			return Skill{
				Name:     src.Name,
				Level:    profile.LevelLabel(src.Level),
				Keywords: []string{src.Category},
			}
		}),
		Projects: slice.Map(p.Projects, func(idx int, src profile.Project) Project {
			return Project{
				Name:        src.Title,
				Description: src.Description,
				Highlights:  src.Highlights,
				Keywords:    src.Technologies,
				URL:         src.Link(),
				StartDate:   formatDate(src.Start),
				EndDate:     formatDate(src.End),
			}
		}),
	}
	if info.Location != "" {
		res.Basics.Location = &Location{Address: info.Location}
	}
	return res
}

// EncodeJSONResume 两个空格缩进，不转义 HTML 字符
func EncodeJSONResume(r Resume) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func socialProfiles(info profile.PersonalInfo) []SocialProfile {
	var res []SocialProfile
	if info.LinkedinURL != "" {
		res = append(res, SocialProfile{Network: "LinkedIn", URL: info.LinkedinURL})
	}
	if info.GithubURL != "" {
		res = append(res, SocialProfile{Network: "GitHub", URL: info.GithubURL})
	}
	return res
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
