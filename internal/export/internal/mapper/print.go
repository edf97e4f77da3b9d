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
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile"
)

const (
	defaultTheme    = "minimal"
	printDateLayout = "Jan 2006"
)

//go:embed templates/page.html templates/themes/*.css
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "templates/page.html"))

type contact struct {
	Text string
	Href string
}

type printItem struct {
	Title       string
	Subtitle    string
	Dates       string
	Description string
	Bullets     []string
	Tags        []string
}

type printSkillGroup struct {
	Category string
	Names    []string
}

type printProject struct {
	Title       string
	Link        string
	Description string
	Tags        []string
}

// PrintPage 是公开页面的模型，打印的时候直接复用
type PrintPage struct {
	Theme       string
	CSS         template.CSS
	Name        string
	Title       string
	Bio         string
	Contacts    []contact
	Experiences []printItem
	Education   []printItem
	SkillGroups []printSkillGroup
	Projects    []printProject
}

// ThemeCSS 不认识的主题使用 minimal
func ThemeCSS(theme string) (string, string) {
	if theme != "" && !strings.ContainsAny(theme, "/.*") {
		if data, err := assets.ReadFile("templates/themes/" + theme + ".css"); err == nil {
			return theme, string(data)
		}
	}
	data, _ := assets.ReadFile("templates/themes/" + defaultTheme + ".css")
	return defaultTheme, string(data)
}

func ToPrintPage(p profile.Profile, theme string) PrintPage {
	info := p.PersonalInfo
	theme, css := ThemeCSS(theme)
	return PrintPage{
		Theme:    theme,
		CSS:      template.CSS(css),
		Name:     info.FullName,
		Title:    info.Title,
		Bio:      info.Bio,
		Contacts: contacts(info),
		Experiences: slice.Map(p.Experiences, func(idx int, src profile.Experience) printItem {
			end, ok := src.EndDate()
			subtitle := src.Company
			if src.Location != "" {
				subtitle += " - " + src.Location
			}
			return printItem{
				Title:       src.Title,
				Subtitle:    subtitle,
				Dates:       printDates(src.Start, end, ok),
				Description: src.Description,
				Bullets:     src.Achievements,
				Tags:        src.Technologies,
			}
		}),
		Education: slice.Map(p.Education, func(idx int, src profile.Education) printItem {
			end, ok := src.EndDate()
			subtitle := src.School
			if src.GPA != "" {
				subtitle += " - GPA: " + src.GPA
			}
			return printItem{
				Title:       src.Degree,
				Subtitle:    subtitle,
				Dates:       printDates(src.Start, end, ok),
				Description: src.Description,
			}
		}),
		SkillGroups: slice.Map(groupSkills(p.Skills), func(idx int, src skillGroup) printSkillGroup {
			return printSkillGroup{Category: src.category, Names: src.names}
		}),
		Projects: slice.Map(p.Projects, func(idx int, src profile.Project) printProject {
			return printProject{
				Title:       src.Title,
				Link:        src.Link(),
				Description: src.Description,
				Tags:        src.Technologies,
			}
		}),
	}
}

// RenderPage 渲染完整的公开页面
func RenderPage(page PrintPage) (string, error) {
	var buf bytes.Buffer
	err := pageTemplate.ExecuteTemplate(&buf, "page", page)
	return buf.String(), err
}

func contacts(info profile.PersonalInfo) []contact {
	res := make([]contact, 0, 6)
	if info.Email != "" {
		res = append(res, contact{Text: info.Email, Href: "mailto:" + info.Email})
	}
	if info.Phone != "" {
		res = append(res, contact{Text: info.Phone})
	}
	if info.Location != "" {
		res = append(res, contact{Text: info.Location})
	}
	if info.WebsiteURL != "" {
		res = append(res, contact{Text: "Website", Href: info.WebsiteURL})
	}
	if info.LinkedinURL != "" {
		res = append(res, contact{Text: "LinkedIn", Href: info.LinkedinURL})
	}
	if info.GithubURL != "" {
		res = append(res, contact{Text: "GitHub", Href: info.GithubURL})
	}
	return res
}

func printDates(start, end time.Time, hasEnd bool) string {
	if start.IsZero() {
		return ""
	}
	return dateRange(start, end, hasEnd, printDateLayout)
}
