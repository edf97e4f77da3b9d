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
	"strings"
	"time"

	"github.com/ecodeclub/portfolio/internal/profile"
)

// ToMarkdown 用户输入原样输出，不做 Markdown 转义
func ToMarkdown(p profile.Profile, dateLayout string) string {
	info := p.PersonalInfo
	var sb strings.Builder
	sb.WriteString("# " + info.FullName + "\n")
	sb.WriteString("## " + info.Title + "\n\n")
	if line := contactLine(info); line != "" {
		sb.WriteString(line + "\n\n")
	}
	if info.Bio != "" {
		sb.WriteString(info.Bio + "\n\n")
	}

	sb.WriteString("## Experience\n\n")
	for _, exp := range p.Experiences {
		sb.WriteString("### " + exp.Title + " at " + exp.Company + "\n")
		end, ok := exp.EndDate()
		sb.WriteString("*" + dateRange(exp.Start, end, ok, dateLayout) + "*\n\n")
		paragraph(&sb, exp.Description)
		if len(exp.Achievements) > 0 {
			sb.WriteString("**Achievements:**\n")
			for _, ach := range exp.Achievements {
				sb.WriteString("- " + ach + "\n")
			}
			sb.WriteString("\n")
		}
		technologies(&sb, exp.Technologies)
	}

	sb.WriteString("## Education\n\n")
	for _, edu := range p.Education {
		sb.WriteString("### " + edu.Degree + ", " + edu.School + "\n")
		end, ok := edu.EndDate()
		sb.WriteString("*" + dateRange(edu.Start, end, ok, dateLayout) + "*\n\n")
	}

	sb.WriteString("## Skills\n\n")
	for _, group := range groupSkills(p.Skills) {
		sb.WriteString("### " + group.category + "\n")
		sb.WriteString(strings.Join(group.names, ", ") + "\n\n")
	}

	sb.WriteString("## Projects\n\n")
	for _, proj := range p.Projects {
		if link := proj.RepoLink(); link != "" {
			sb.WriteString("### [" + proj.Title + "](" + link + ")\n")
		} else {
			sb.WriteString("### " + proj.Title + "\n")
		}
		paragraph(&sb, proj.Description)
		technologies(&sb, proj.Technologies)
	}
	return sb.String()
}

func contactLine(info profile.PersonalInfo) string {
	links := make([]string, 0, 4)
	if info.Email != "" {
		links = append(links, "[Email](mailto:"+info.Email+")")
	}
	if info.LinkedinURL != "" {
		links = append(links, "[LinkedIn]("+info.LinkedinURL+")")
	}
	if info.GithubURL != "" {
		links = append(links, "[GitHub]("+info.GithubURL+")")
	}
	if info.WebsiteURL != "" {
		links = append(links, "[Website]("+info.WebsiteURL+")")
	}
	return strings.Join(links, " | ")
}

func dateRange(start, end time.Time, hasEnd bool, layout string) string {
	res := start.UTC().Format(layout) + " - "
	if !hasEnd {
		return res + "Present"
	}
	return res + end.UTC().Format(layout)
}

func paragraph(sb *strings.Builder, text string) {
	if text != "" {
		sb.WriteString(text + "\n\n")
	}
}

func technologies(sb *strings.Builder, techs []string) {
	if len(techs) > 0 {
		sb.WriteString("**Technologies:** " + strings.Join(techs, ", ") + "\n\n")
	}
}

type skillGroup struct {
	category string
	names    []string
}

// groupSkills 分类按照第一次出现的顺序
func groupSkills(skills []profile.Skill) []skillGroup {
	var groups []skillGroup
	index := make(map[string]int, len(skills))
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		idx, ok := index[category]
		if !ok {
			idx = len(groups)
			index[category] = idx
			groups = append(groups, skillGroup{category: category})
		}
		groups[idx].names = append(groups[idx].names, s.Name)
	}
	return groups
}
