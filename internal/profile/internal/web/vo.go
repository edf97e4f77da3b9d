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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type PersonalInfo struct {
	Id                 int64  `json:"id"`
	FullName           string `json:"fullName"`
	Title              string `json:"title"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	Location           string `json:"location,omitempty"`
	Bio                string `json:"bio,omitempty"`
	WebsiteURL         string `json:"websiteUrl,omitempty"`
	LinkedinURL        string `json:"linkedinUrl,omitempty"`
	GithubURL          string `json:"githubUrl,omitempty"`
	AvatarURL          string `json:"avatarUrl,omitempty"`
	PDFDownloadURL     string `json:"pdfDownloadUrl,omitempty"`
	ClientSatisfaction string `json:"clientSatisfaction,omitempty"`
	AvgResponseTime    string `json:"avgResponseTime,omitempty"`
	StartingRate       string `json:"startingRate,omitempty"`
}

func (p PersonalInfo) toDomain(uid int64) domain.PersonalInfo {
	return domain.PersonalInfo{
		Uid:                uid,
		FullName:           p.FullName,
		Title:              p.Title,
		Email:              p.Email,
		Phone:              p.Phone,
		Location:           p.Location,
		Bio:                p.Bio,
		WebsiteURL:         p.WebsiteURL,
		LinkedinURL:        p.LinkedinURL,
		GithubURL:          p.GithubURL,
		AvatarURL:          p.AvatarURL,
		PDFDownloadURL:     p.PDFDownloadURL,
		ClientSatisfaction: p.ClientSatisfaction,
		AvgResponseTime:    p.AvgResponseTime,
		StartingRate:       p.StartingRate,
	}
}

func newPersonalInfo(p domain.PersonalInfo) PersonalInfo {
	return PersonalInfo{
		Id:                 p.Id,
		FullName:           p.FullName,
		Title:              p.Title,
		Email:              p.Email,
		Phone:              p.Phone,
		Location:           p.Location,
		Bio:                p.Bio,
		WebsiteURL:         p.WebsiteURL,
		LinkedinURL:        p.LinkedinURL,
		GithubURL:          p.GithubURL,
		AvatarURL:          p.AvatarURL,
		PDFDownloadURL:     p.PDFDownloadURL,
		ClientSatisfaction: p.ClientSatisfaction,
		AvgResponseTime:    p.AvgResponseTime,
		StartingRate:       p.StartingRate,
	}
}

// 时间都是毫秒，0 代表没有
type Experience struct {
	Id           int64    `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Start        int64    `json:"start"`
	End          int64    `json:"end,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	DisplayOrder int      `json:"displayOrder"`
}

func (e Experience) toDomain(uid int64) domain.Experience {
	return domain.Experience{
		Id:           e.Id,
		Uid:          uid,
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Start:        fromMilli(e.Start),
		End:          fromMilli(e.End),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		Achievements: e.Achievements,
		Technologies: e.Technologies,
		DisplayOrder: e.DisplayOrder,
	}
}

func newExperience(e domain.Experience) Experience {
	return Experience{
		Id:           e.Id,
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Start:        toMilli(e.Start),
		End:          toMilli(e.End),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		Achievements: e.Achievements,
		Technologies: e.Technologies,
		DisplayOrder: e.DisplayOrder,
	}
}

type Education struct {
	Id           int64    `json:"id"`
	Degree       string   `json:"degree"`
	School       string   `json:"school"`
	Location     string   `json:"location,omitempty"`
	Start        int64    `json:"start"`
	End          int64    `json:"end,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	GPA          string   `json:"gpa,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	DisplayOrder int      `json:"displayOrder"`
}

func (e Education) toDomain(uid int64) domain.Education {
	return domain.Education{
		Id:           e.Id,
		Uid:          uid,
		Degree:       e.Degree,
		School:       e.School,
		Location:     e.Location,
		Start:        fromMilli(e.Start),
		End:          fromMilli(e.End),
		IsCurrent:    e.IsCurrent,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: e.Achievements,
		DisplayOrder: e.DisplayOrder,
	}
}

func newEducation(e domain.Education) Education {
	return Education{
		Id:           e.Id,
		Degree:       e.Degree,
		School:       e.School,
		Location:     e.Location,
		Start:        toMilli(e.Start),
		End:          toMilli(e.End),
		IsCurrent:    e.IsCurrent,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: e.Achievements,
		DisplayOrder: e.DisplayOrder,
	}
}

type Skill struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Level        int    `json:"level"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s Skill) toDomain(uid int64) domain.Skill {
	return domain.Skill{
		Id:           s.Id,
		Uid:          uid,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
	}
}

func newSkill(s domain.Skill) Skill {
	return Skill{
		Id:           s.Id,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
	}
}

type Project struct {
	Id              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	LongDescription string   `json:"longDescription,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Highlights      []string `json:"highlights,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	URL             string   `json:"url,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	IsFeatured      bool     `json:"isFeatured"`
	Start           int64    `json:"start,omitempty"`
	End             int64    `json:"end,omitempty"`
	DisplayOrder    int      `json:"displayOrder"`
}

func (p Project) toDomain(uid int64) domain.Project {
	return domain.Project{
		Id:              p.Id,
		Uid:             uid,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    p.Technologies,
		Highlights:      p.Highlights,
		ImageURL:        p.ImageURL,
		URL:             p.URL,
		GithubURL:       p.GithubURL,
		IsFeatured:      p.IsFeatured,
		Start:           fromMilli(p.Start),
		End:             fromMilli(p.End),
		DisplayOrder:    p.DisplayOrder,
	}
}

func newProject(p domain.Project) Project {
	return Project{
		Id:              p.Id,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    p.Technologies,
		Highlights:      p.Highlights,
		ImageURL:        p.ImageURL,
		URL:             p.URL,
		GithubURL:       p.GithubURL,
		IsFeatured:      p.IsFeatured,
		Start:           toMilli(p.Start),
		End:             toMilli(p.End),
		DisplayOrder:    p.DisplayOrder,
	}
}

type Service struct {
	Id           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	DisplayOrder int      `json:"displayOrder"`
}

func (s Service) toDomain(uid int64) domain.Service {
	return domain.Service{
		Id:           s.Id,
		Uid:          uid,
		Title:        s.Title,
		Description:  s.Description,
		Deliverables: s.Deliverables,
		Icon:         s.Icon,
		DisplayOrder: s.DisplayOrder,
	}
}

func newService(s domain.Service) Service {
	return Service{
		Id:           s.Id,
		Title:        s.Title,
		Description:  s.Description,
		Deliverables: s.Deliverables,
		Icon:         s.Icon,
		DisplayOrder: s.DisplayOrder,
	}
}

type Testimonial struct {
	Id           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Company      string `json:"company,omitempty"`
	Content      string `json:"content"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	Rating       int    `json:"rating"`
	DisplayOrder int    `json:"displayOrder"`
}

func (t Testimonial) toDomain(uid int64) domain.Testimonial {
	return domain.Testimonial{
		Id:           t.Id,
		Uid:          uid,
		Name:         t.Name,
		Role:         t.Role,
		Company:      t.Company,
		Content:      t.Content,
		AvatarURL:    t.AvatarURL,
		Rating:       t.Rating,
		DisplayOrder: t.DisplayOrder,
	}
}

func newTestimonial(t domain.Testimonial) Testimonial {
	return Testimonial{
		Id:           t.Id,
		Name:         t.Name,
		Role:         t.Role,
		Company:      t.Company,
		Content:      t.Content,
		AvatarURL:    t.AvatarURL,
		Rating:       t.Rating,
		DisplayOrder: t.DisplayOrder,
	}
}

type Stats struct {
	ProjectsCompleted  string `json:"projectsCompleted"`
	ClientSatisfaction string `json:"clientSatisfaction"`
	AvgResponseTime    string `json:"avgResponseTime"`
	StartingRate       string `json:"startingRate"`
}

type Profile struct {
	// 还没有填写个人信息的时候是 nil
	PersonalInfo *PersonalInfo `json:"personalInfo"`
	Experiences  []Experience  `json:"experiences"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Services     []Service     `json:"services"`
	Testimonials []Testimonial `json:"testimonials"`
	Stats        Stats         `json:"stats"`
}

func NewProfile(p domain.Profile) Profile {
	res := Profile{
		Experiences: slice.Map(p.Experiences, func(idx int, src domain.Experience) Experience {
			return newExperience(src)
		}),
		Education: slice.Map(p.Education, func(idx int, src domain.Education) Education {
			return newEducation(src)
		}),
		Skills: slice.Map(p.Skills, func(idx int, src domain.Skill) Skill {
			return newSkill(src)
		}),
		Projects: slice.Map(p.Projects, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
		Services: slice.Map(p.Services, func(idx int, src domain.Service) Service {
			return newService(src)
		}),
		Testimonials: slice.Map(p.Testimonials, func(idx int, src domain.Testimonial) Testimonial {
			return newTestimonial(src)
		}),
	}
	if p.HasPersonalInfo() {
		info := newPersonalInfo(p.PersonalInfo)
		res.PersonalInfo = &info
	}
	stats := p.Stats()
	res.Stats = Stats{
		ProjectsCompleted:  stats.ProjectsCompleted,
		ClientSatisfaction: stats.ClientSatisfaction,
		AvgResponseTime:    stats.AvgResponseTime,
		StartingRate:       stats.StartingRate,
	}
	return res
}

func toMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
