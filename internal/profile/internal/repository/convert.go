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

package repository

import (
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/dao"
)

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

func toJsonColumn(vals []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{
		Val:   vals,
		Valid: len(vals) > 0,
	}
}

func fromJsonColumn(col sqlx.JsonColumn[[]string]) []string {
	if !col.Valid {
		return nil
	}
	return col.Val
}

func meta(id, uid int64, order int) dao.Meta {
	return dao.Meta{Id: id, Uid: uid, DisplayOrder: order}
}

func personalToDomain(p dao.PersonalInfo) domain.PersonalInfo {
	return domain.PersonalInfo{
		Id:                 p.Id,
		Uid:                p.Uid,
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
		Ctime:              time.UnixMilli(p.Ctime),
		Utime:              time.UnixMilli(p.Utime),
	}
}

func personalToEntity(p domain.PersonalInfo) dao.PersonalInfo {
	return dao.PersonalInfo{
		Id:                 p.Id,
		Uid:                p.Uid,
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

func experienceToDomain(e dao.Experience) domain.Experience {
	return domain.Experience{
		Id:           e.Id,
		Uid:          e.Uid,
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		Start:        fromMilli(e.StartTime),
		End:          fromMilli(e.EndTime),
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		Achievements: fromJsonColumn(e.Achievements),
		Technologies: fromJsonColumn(e.Technologies),
		DisplayOrder: e.DisplayOrder,
		Ctime:        time.UnixMilli(e.Ctime),
		Utime:        time.UnixMilli(e.Utime),
	}
}

func experienceToEntity(e domain.Experience) dao.Experience {
	end := toMilli(e.End)
	// 在职的时候不保存结束时间
	if e.IsCurrent {
		end = 0
	}
	return dao.Experience{
		Meta:         meta(e.Id, e.Uid, e.DisplayOrder),
		Title:        e.Title,
		Company:      e.Company,
		Location:     e.Location,
		StartTime:    toMilli(e.Start),
		EndTime:      end,
		IsCurrent:    e.IsCurrent,
		Description:  e.Description,
		Achievements: toJsonColumn(e.Achievements),
		Technologies: toJsonColumn(e.Technologies),
	}
}

func educationToDomain(e dao.Education) domain.Education {
	return domain.Education{
		Id:           e.Id,
		Uid:          e.Uid,
		Degree:       e.Degree,
		School:       e.School,
		Location:     e.Location,
		Start:        fromMilli(e.StartTime),
		End:          fromMilli(e.EndTime),
		IsCurrent:    e.IsCurrent,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: fromJsonColumn(e.Achievements),
		DisplayOrder: e.DisplayOrder,
		Ctime:        time.UnixMilli(e.Ctime),
		Utime:        time.UnixMilli(e.Utime),
	}
}

func educationToEntity(e domain.Education) dao.Education {
	end := toMilli(e.End)
	if e.IsCurrent {
		end = 0
	}
	return dao.Education{
		Meta:         meta(e.Id, e.Uid, e.DisplayOrder),
		Degree:       e.Degree,
		School:       e.School,
		Location:     e.Location,
		StartTime:    toMilli(e.Start),
		EndTime:      end,
		IsCurrent:    e.IsCurrent,
		GPA:          e.GPA,
		Description:  e.Description,
		Achievements: toJsonColumn(e.Achievements),
	}
}

func skillToDomain(s dao.Skill) domain.Skill {
	return domain.Skill{
		Id:           s.Id,
		Uid:          s.Uid,
		Name:         s.Name,
		Category:     s.Category,
		Level:        s.Level,
		DisplayOrder: s.DisplayOrder,
		Ctime:        time.UnixMilli(s.Ctime),
		Utime:        time.UnixMilli(s.Utime),
	}
}

func skillToEntity(s domain.Skill) dao.Skill {
	return dao.Skill{
		Meta:     meta(s.Id, s.Uid, s.DisplayOrder),
		Name:     s.Name,
		Category: s.Category,
		Level:    s.Level,
	}
}

func projectToDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:              p.Id,
		Uid:             p.Uid,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    fromJsonColumn(p.Technologies),
		Highlights:      fromJsonColumn(p.Highlights),
		ImageURL:        p.ImageURL,
		URL:             p.URL,
		GithubURL:       p.GithubURL,
		IsFeatured:      p.IsFeatured,
		Start:           fromMilli(p.StartTime),
		End:             fromMilli(p.EndTime),
		DisplayOrder:    p.DisplayOrder,
		Ctime:           time.UnixMilli(p.Ctime),
		Utime:           time.UnixMilli(p.Utime),
	}
}

func projectToEntity(p domain.Project) dao.Project {
	return dao.Project{
		Meta:            meta(p.Id, p.Uid, p.DisplayOrder),
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    toJsonColumn(p.Technologies),
		Highlights:      toJsonColumn(p.Highlights),
		ImageURL:        p.ImageURL,
		URL:             p.URL,
		GithubURL:       p.GithubURL,
		IsFeatured:      p.IsFeatured,
		StartTime:       toMilli(p.Start),
		EndTime:         toMilli(p.End),
	}
}

func serviceToDomain(s dao.Service) domain.Service {
	return domain.Service{
		Id:           s.Id,
		Uid:          s.Uid,
		Title:        s.Title,
		Description:  s.Description,
		Deliverables: fromJsonColumn(s.Deliverables),
		Icon:         s.Icon,
		DisplayOrder: s.DisplayOrder,
		Ctime:        time.UnixMilli(s.Ctime),
		Utime:        time.UnixMilli(s.Utime),
	}
}

func serviceToEntity(s domain.Service) dao.Service {
	return dao.Service{
		Meta:         meta(s.Id, s.Uid, s.DisplayOrder),
		Title:        s.Title,
		Description:  s.Description,
		Deliverables: toJsonColumn(s.Deliverables),
		Icon:         s.Icon,
	}
}

func testimonialToDomain(t dao.Testimonial) domain.Testimonial {
	return domain.Testimonial{
		Id:           t.Id,
		Uid:          t.Uid,
		Name:         t.Name,
		Role:         t.Role,
		Company:      t.Company,
		Content:      t.Content,
		AvatarURL:    t.AvatarURL,
		Rating:       t.Rating,
		DisplayOrder: t.DisplayOrder,
		Ctime:        time.UnixMilli(t.Ctime),
		Utime:        time.UnixMilli(t.Utime),
	}
}

func testimonialToEntity(t domain.Testimonial) dao.Testimonial {
	return dao.Testimonial{
		Meta:      meta(t.Id, t.Uid, t.DisplayOrder),
		Name:      t.Name,
		Role:      t.Role,
		Company:   t.Company,
		Content:   t.Content,
		AvatarURL: t.AvatarURL,
		Rating:    t.Rating,
	}
}
