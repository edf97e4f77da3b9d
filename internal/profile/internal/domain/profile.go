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

import "strconv"

// Profile 某个 owner 的全部数据
type Profile struct {
	PersonalInfo PersonalInfo
	Experiences  []Experience
	Education    []Education
	Skills       []Skill
	Projects     []Project
	Services     []Service
	Testimonials []Testimonial
}

func (p Profile) HasPersonalInfo() bool {
	return p.PersonalInfo.Id > 0
}

type Stats struct {
	ProjectsCompleted  string
	ClientSatisfaction string
	AvgResponseTime    string
	StartingRate       string
}

func (p Profile) Stats() Stats {
	return Stats{
		ProjectsCompleted:  strconv.Itoa(len(p.Projects)) + "+",
		ClientSatisfaction: orDefault(p.PersonalInfo.ClientSatisfaction, "4.9/5"),
		AvgResponseTime:    orDefault(p.PersonalInfo.AvgResponseTime, "< 2hrs"),
		StartingRate:       orDefault(p.PersonalInfo.StartingRate, "$75/hr"),
	}
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
