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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelLabel(t *testing.T) {
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
		assert.Equal(t, tc.want, LevelLabel(tc.level), "level %d", tc.level)
	}
}

func TestSection_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		section Section
		wantErr error
	}{
		{
			name:    "个人信息没有邮箱",
			section: PersonalInfo{FullName: "Jane"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "个人信息",
			section: PersonalInfo{Email: "jane@example.com"},
		},
		{
			name:    "教育经历没有开始时间",
			section: Education{Degree: "BSc", School: "MIT"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "教育经历",
			section: Education{Degree: "BSc", School: "MIT", Start: time.UnixMilli(1)},
		},
		{
			name:    "技能没有分类",
			section: Skill{Name: "Go", Level: 5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "技能等级太低",
			section: Skill{Name: "Go", Category: "Languages", Level: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "技能等级太高",
			section: Skill{Name: "Go", Category: "Languages", Level: 11},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "技能等级边界",
			section: Skill{Name: "Go", Category: "Languages", Level: 10},
		},
		{
			name:    "推荐没有职位",
			section: Testimonial{Name: "Bob", Content: "great", Rating: 5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "评分太高",
			section: Testimonial{Name: "Bob", Role: "CTO", Content: "great", Rating: 6},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "评分",
			section: Testimonial{Name: "Bob", Role: "CTO", Content: "great", Rating: 1},
		},
		{
			name:    "工作经历缺少公司",
			section: Experience{Title: "Engineer", Start: time.UnixMilli(1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "工作经历没有开始时间",
			section: Experience{Title: "Engineer", Company: "Acme", IsCurrent: true},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "工作经历",
			section: Experience{Title: "Engineer", Company: "Acme", IsCurrent: true, Start: time.UnixMilli(1)},
		},
		{
			name:    "项目没有描述",
			section: Project{Title: "portfolio"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "项目",
			section: Project{Title: "portfolio", Description: "personal site"},
		},
		{
			name:    "服务缺少标题",
			section: Service{Description: "APIs"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "服务没有描述",
			section: Service{Title: "Backend"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "服务",
			section: Service{Title: "Backend", Description: "APIs"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.section.Validate()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExperience_EndDate(t *testing.T) {
	end := time.UnixMilli(1700000000000)
	_, ok := Experience{IsCurrent: true, End: end}.EndDate()
	assert.False(t, ok)
	_, ok = Experience{}.EndDate()
	assert.False(t, ok)
	got, ok := Experience{End: end}.EndDate()
	assert.True(t, ok)
	assert.Equal(t, end, got)
}

func TestProfile_Stats(t *testing.T) {
	p := Profile{
		PersonalInfo: PersonalInfo{StartingRate: "$100/hr"},
		Projects:     []Project{{Title: "a"}, {Title: "b"}},
	}
	assert.Equal(t, Stats{
		ProjectsCompleted:  "2+",
		ClientSatisfaction: "4.9/5",
		AvgResponseTime:    "< 2hrs",
		StartingRate:       "$100/hr",
	}, p.Stats())
}
